package report

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/carp/pkg/types"
)

type planDocument struct {
	Type        string              `json:"type"`
	CurrentRoot string              `json:"current_root"`
	NewRoot     string              `json:"new_root"`
	HasEffect   bool                `json:"has_effect"`
	Groups      map[string][]string `json:"groups"`
}

type summaryDocument struct {
	Type    string         `json:"type"`
	Results []types.Result `json:"results"`
	Counts  map[string]int `json:"counts"`
	Aborted bool           `json:"aborted"`
}

type jsonRenderer struct {
	encoder *json.Encoder
}

func newJSONRenderer(out io.Writer) *jsonRenderer {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return &jsonRenderer{encoder: encoder}
}

func (r *jsonRenderer) RenderPlan(p Plan) error {
	doc := planDocument{
		Type:        "plan",
		CurrentRoot: p.Root.CurrentRoot,
		NewRoot:     p.Root.NewRoot,
		HasEffect:   p.HasEffect(),
		Groups:      make(map[string][]string, len(types.Verbs)),
	}
	for _, verb := range types.Verbs {
		paths := p.Groups.Paths(verb)
		if paths == nil {
			paths = []string{}
		}
		doc.Groups[string(verb)] = paths
	}
	return r.encoder.Encode(doc)
}

func (r *jsonRenderer) RenderSummary(s types.Summary) error {
	doc := summaryDocument{
		Type:    "summary",
		Results: s.Results,
		Counts:  make(map[string]int, len(types.Outcomes)),
		Aborted: s.Aborted(),
	}
	if doc.Results == nil {
		doc.Results = []types.Result{}
	}
	for _, o := range types.Outcomes {
		doc.Counts[string(o)] = s.Count(o)
	}
	return r.encoder.Encode(doc)
}
