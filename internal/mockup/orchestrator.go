package mockup

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"mockup-catalog-backend/internal/dynamicmockups"
)

var (
	ErrNoImage     = errors.New("design image URL is required")
	ErrNoColors    = errors.New("at least one color is required")
	ErrNoTemplates = errors.New("no mockup templates selected")
)

// Renderer renders one design onto one template in one color.
type Renderer interface {
	Render(ctx context.Context, req dynamicmockups.RenderRequest) (string, error)
}

// Template is a mockup template paired with the smart object that receives
// the design. An empty SmartObjectID means the account default.
type Template struct {
	MockupID      string `json:"mockup_id"`
	SmartObjectID string `json:"smart_object_id"`
}

// PairTemplates zips template ids with smart object ids by position.
func PairTemplates(mockupIDs, smartObjectIDs []string) []Template {
	templates := make([]Template, len(mockupIDs))
	for i, id := range mockupIDs {
		templates[i] = Template{MockupID: id}
		if i < len(smartObjectIDs) {
			templates[i].SmartObjectID = smartObjectIDs[i]
		}
	}
	return templates
}

type ColorResult struct {
	Color       string `json:"color"`
	RenderedURL string `json:"rendered_image_url"`
}

type TemplateResult struct {
	MockupID      string        `json:"mockup_id"`
	SmartObjectID string        `json:"smart_object_uuid"`
	Results       []ColorResult `json:"results"`
}

// Lookup returns the result rendered for hex, matched exactly.
func (t *TemplateResult) Lookup(hex string) (ColorResult, bool) {
	for _, r := range t.Results {
		if r.Color == hex {
			return r, true
		}
	}
	return ColorResult{}, false
}

type Failure struct {
	MockupID string `json:"mockup_id"`
	Color    string `json:"color,omitempty"`
	Error    string `json:"error"`
}

type Progress struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

func (p Progress) Fraction() float64 {
	if p.Total == 0 {
		return 1
	}
	return float64(p.Completed) / float64(p.Total)
}

// Report is the outcome of one batch. Templates only holds templates with at
// least one rendered color; every failed call is listed in Failures.
type Report struct {
	Templates []TemplateResult `json:"templates"`
	Failures  []Failure        `json:"failures,omitempty"`
	Progress  Progress         `json:"progress"`
}

type Orchestrator struct {
	renderer             Renderer
	defaultSmartObjectID string
	logger               *zap.Logger
}

func NewOrchestrator(renderer Renderer, defaultSmartObjectID string, logger *zap.Logger) *Orchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orchestrator{
		renderer:             renderer,
		defaultSmartObjectID: defaultSmartObjectID,
		logger:               logger,
	}
}

// Generate renders imageURL on every template in every color, one call at a
// time. A failed call is recorded and the loop moves on. onProgress, when
// set, is called after each (template, color) pair and last reports
// Completed == Total.
func (o *Orchestrator) Generate(ctx context.Context, imageURL string, colors []string, templates []Template, onProgress func(Progress)) (Report, error) {
	if imageURL == "" {
		return Report{}, ErrNoImage
	}
	if len(colors) == 0 {
		return Report{}, ErrNoColors
	}
	if len(templates) == 0 {
		return Report{}, ErrNoTemplates
	}

	report := Report{Progress: Progress{Total: len(templates) * len(colors)}}
	advance := func(n int) {
		report.Progress.Completed += n
		if onProgress != nil {
			onProgress(report.Progress)
		}
	}

	for _, tmpl := range templates {
		if tmpl.MockupID == "" {
			report.Failures = append(report.Failures, Failure{Error: "template has no mockup id"})
			advance(len(colors))
			continue
		}

		smartObjectID := o.smartObjectFor(tmpl)
		result := TemplateResult{MockupID: tmpl.MockupID, SmartObjectID: smartObjectID}

		for _, color := range colors {
			url, err := o.renderer.Render(ctx, dynamicmockups.NewRenderRequest(tmpl.MockupID, smartObjectID, color, imageURL))
			if err != nil {
				o.logger.Warn("mockup render failed",
					zap.String("mockup_id", tmpl.MockupID),
					zap.String("color", color),
					zap.Error(err))
				report.Failures = append(report.Failures, Failure{MockupID: tmpl.MockupID, Color: color, Error: err.Error()})
			} else {
				result.Results = append(result.Results, ColorResult{Color: color, RenderedURL: url})
			}
			advance(1)
		}

		if len(result.Results) > 0 {
			report.Templates = append(report.Templates, result)
		}
	}

	o.logger.Info("mockup batch finished",
		zap.Int("templates", len(report.Templates)),
		zap.Int("failures", len(report.Failures)))

	return report, nil
}

// Regenerate renders a single color for one template of a run. A result
// already rendered for the same hex is returned without calling the API
// (cached is true). A new result replaces the entry at colorIndex when it is
// in range, otherwise it is appended.
func (o *Orchestrator) Regenerate(ctx context.Context, run *Run, templateIndex int, hex string, colorIndex int) (result ColorResult, cached bool, err error) {
	if templateIndex < 0 || templateIndex >= len(run.Templates) {
		return ColorResult{}, false, fmt.Errorf("template index %d out of range", templateIndex)
	}
	tmpl := run.Templates[templateIndex]
	if tmpl.MockupID == "" {
		return ColorResult{}, false, fmt.Errorf("template %d has no mockup id", templateIndex)
	}

	set := run.resultSet(tmpl, o.smartObjectFor(tmpl))
	if existing, ok := set.Lookup(hex); ok {
		return existing, true, nil
	}

	url, err := o.renderer.Render(ctx, dynamicmockups.NewRenderRequest(tmpl.MockupID, set.SmartObjectID, hex, run.DesignImageURL))
	if err != nil {
		return ColorResult{}, false, fmt.Errorf("failed to render %s on %s: %w", hex, tmpl.MockupID, err)
	}

	result = ColorResult{Color: hex, RenderedURL: url}
	if colorIndex >= 0 && colorIndex < len(set.Results) {
		set.Results[colorIndex] = result
	} else {
		set.Results = append(set.Results, result)
	}
	return result, false, nil
}

func (o *Orchestrator) smartObjectFor(tmpl Template) string {
	if tmpl.SmartObjectID != "" {
		return tmpl.SmartObjectID
	}
	return o.defaultSmartObjectID
}
