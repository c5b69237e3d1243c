package batch

import (
	"github.com/kjourdan1/hashenc/internal/codec"
)

// Options controls a batch run.
type Options struct {
	// FailFast stops at the first invalid entry.
	FailFast bool
}

// Report is the outcome of a batch run.
type Report struct {
	Name    string         `json:"name,omitempty" yaml:"name,omitempty"`
	Total   int            `json:"total" yaml:"total"`
	Valid   int            `json:"valid" yaml:"valid"`
	Invalid int            `json:"invalid" yaml:"invalid"`
	Stopped bool           `json:"stopped,omitempty" yaml:"stopped,omitempty"`
	Results []codec.Result `json:"results" yaml:"results"`
}

// Run encodes every entry of m in order.
func Run(m *Manifest, opts Options) *Report {
	r := &Report{
		Name:    m.Metadata.Name,
		Total:   len(m.Inputs),
		Results: make([]codec.Result, 0, len(m.Inputs)),
	}
	for _, e := range m.Inputs {
		res := codec.Evaluate(e.Value)
		res.Name = e.Name
		r.Results = append(r.Results, res)
		if res.Valid {
			r.Valid++
			continue
		}
		r.Invalid++
		if opts.FailFast {
			r.Stopped = len(r.Results) < r.Total
			break
		}
	}
	return r
}

// Failed reports whether any processed entry was invalid.
func (r *Report) Failed() bool {
	return r.Invalid > 0
}
