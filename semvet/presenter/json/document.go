package json

import (
	"github.com/wharflab/semvet/internal"
	"github.com/wharflab/semvet/internal/version"
	"github.com/wharflab/semvet/semvet/result"
)

// Document represents the JSON document to be presented
type Document struct {
	Items      []Item     `json:"items"`
	Summary    Summary    `json:"summary"`
	Descriptor Descriptor `json:"descriptor"`
}

// Item is a single evaluation outcome reported in the JSON array
type Item struct {
	Version    string `json:"version"`
	Constraint string `json:"constraint"`
	Satisfied  bool   `json:"satisfied"`
}

// Summary aggregates the outcomes across the whole report
type Summary struct {
	Constraints []string `json:"constraints"`
	Total       int      `json:"total"`
	Satisfied   int      `json:"satisfied"`
	Unsatisfied int      `json:"unsatisfied"`
}

// NewDocument creates and populates a new Document struct, representing the populated JSON document.
func NewDocument(evaluations result.Evaluations) Document {
	// we must preallocate the items to ensure the JSON document does not show "null" when there are no evaluations
	items := make([]Item, 0)
	for e := range evaluations.Enumerate() {
		items = append(items, Item{
			Version:    e.Version.String(),
			Constraint: e.Constraint.String(),
			Satisfied:  e.Satisfied,
		})
	}

	return Document{
		Items: items,
		Summary: Summary{
			Constraints: evaluations.ConstraintStrings(),
			Total:       evaluations.Count(),
			Satisfied:   evaluations.SatisfiedCount(),
			Unsatisfied: evaluations.UnsatisfiedCount(),
		},
		Descriptor: Descriptor{
			Name:    internal.ApplicationName,
			Version: version.FromBuild().Version,
		},
	}
}
