package presenter

import (
	"io"

	"github.com/wharflab/semvet/semvet/presenter/json"
	"github.com/wharflab/semvet/semvet/presenter/table"
	"github.com/wharflab/semvet/semvet/result"
)

// Presenter is the main interface other Presenters need to implement
type Presenter interface {
	Present(io.Writer, result.Evaluations) error
}

// GetPresenter retrieves a Presenter that matches a CLI option
func GetPresenter(option Option, withColor bool) Presenter {
	switch option {
	case JSONPresenter:
		return json.NewPresenter()
	case TablePresenter:
		return table.NewPresenter(withColor)
	default:
		return nil
	}
}
