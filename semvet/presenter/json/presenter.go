package json

import (
	"encoding/json"
	"io"

	"github.com/wharflab/semvet/semvet/result"
)

// Presenter is a generic struct for holding fields needed for reporting
type Presenter struct{}

// NewPresenter creates a new JSON presenter
func NewPresenter() *Presenter {
	return &Presenter{}
}

// Present creates a JSON-based report of the given evaluations
func (pres *Presenter) Present(output io.Writer, evaluations result.Evaluations) error {
	doc := NewDocument(evaluations)

	enc := json.NewEncoder(output)
	// prevent > and < from being escaped in the payload
	enc.SetEscapeHTML(false)
	enc.SetIndent("", " ")
	return enc.Encode(&doc)
}
