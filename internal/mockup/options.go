package mockup

import (
	"fmt"
	"strings"

	"mockup-catalog-backend/internal/dynamicmockups"
	"mockup-catalog-backend/internal/models"
)

const backgroundMarker = "Background"

// BuildOptions turns the provider's templates into selectable options, one
// per printable smart object, labelled "{smart object} - {mockup}".
func BuildOptions(mockups []dynamicmockups.Mockup) []models.MockupOption {
	var options []models.MockupOption
	seen := make(map[string]bool)
	add := func(opt models.MockupOption) {
		if seen[opt.Label] {
			return
		}
		seen[opt.Label] = true
		options = append(options, opt)
	}

	for _, m := range mockups {
		mockupName := m.Name
		if mockupName == "" {
			mockupName = "Unnamed Mockup"
		}

		printable := 0
		for _, so := range m.SmartObjects {
			if strings.Contains(so.Name, backgroundMarker) {
				continue
			}
			soName := so.Name
			if soName == "" {
				soName = "Unnamed"
			}
			printable++
			add(models.MockupOption{
				Label:         fmt.Sprintf("%s - %s", soName, mockupName),
				MockupID:      m.UUID,
				SmartObjectID: so.UUID,
			})
		}

		if printable == 0 && !strings.Contains(mockupName, backgroundMarker) {
			add(models.MockupOption{
				Label:    fmt.Sprintf("No printable objects - %s", mockupName),
				MockupID: m.UUID,
			})
		}
	}
	return options
}

// ResolveSelections maps option labels back to templates, in selection order.
func ResolveSelections(options []models.MockupOption, labels []string) ([]Template, error) {
	byLabel := make(map[string]models.MockupOption, len(options))
	for _, opt := range options {
		byLabel[opt.Label] = opt
	}

	templates := make([]Template, 0, len(labels))
	for _, label := range labels {
		opt, ok := byLabel[label]
		if !ok {
			return nil, fmt.Errorf("unknown mockup selection %q", label)
		}
		templates = append(templates, Template{MockupID: opt.MockupID, SmartObjectID: opt.SmartObjectID})
	}
	return templates, nil
}
