package mockup

import "time"

// Run is a batch of renders for one design, kept between requests so single
// colors can be regenerated and the chosen mockups saved later.
type Run struct {
	ID             string           `json:"id"`
	ProductID      int64            `json:"product_id"`
	ParentSKU      string           `json:"parent_sku"`
	DesignName     string           `json:"design_name"`
	Title          string           `json:"marketplace_title"`
	DesignImageURL string           `json:"design_image_url"`
	Colors         []string         `json:"colors"`
	Templates      []Template       `json:"templates"`
	Results        []TemplateResult `json:"results"`
	Failures       []Failure        `json:"failures,omitempty"`
	Progress       Progress         `json:"progress"`
	CreatedAt      time.Time        `json:"created_at"`
}

// Apply copies a batch report into the run.
func (r *Run) Apply(report Report) {
	r.Results = report.Templates
	r.Failures = report.Failures
	r.Progress = report.Progress
}

// resultSet returns the stored result set for tmpl, adding an empty one when
// the template had no successful render yet.
func (r *Run) resultSet(tmpl Template, smartObjectID string) *TemplateResult {
	for i := range r.Results {
		if r.Results[i].MockupID == tmpl.MockupID && r.Results[i].SmartObjectID == smartObjectID {
			return &r.Results[i]
		}
	}
	r.Results = append(r.Results, TemplateResult{MockupID: tmpl.MockupID, SmartObjectID: smartObjectID})
	return &r.Results[len(r.Results)-1]
}

// RenderedFor lists, per template, the results whose color is in hexes.
func (r *Run) RenderedFor(hexes []string) []TemplateResult {
	want := make(map[string]bool, len(hexes))
	for _, h := range hexes {
		want[h] = true
	}

	var out []TemplateResult
	for _, set := range r.Results {
		filtered := TemplateResult{MockupID: set.MockupID, SmartObjectID: set.SmartObjectID}
		for _, res := range set.Results {
			if want[res.Color] {
				filtered.Results = append(filtered.Results, res)
			}
		}
		if len(filtered.Results) > 0 {
			out = append(out, filtered)
		}
	}
	return out
}
