package table

import (
	"io"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"

	"github.com/wharflab/semvet/semvet/result"
)

// Presenter is a generic struct for holding fields needed for reporting
type Presenter struct {
	withColor bool
}

// NewPresenter is a *Presenter constructor
func NewPresenter(withColor bool) *Presenter {
	return &Presenter{
		withColor: withColor,
	}
}

// Present creates a human readable table of the given evaluations, ordered by version precedence
func (pres *Presenter) Present(output io.Writer, evaluations result.Evaluations) error {
	rows := make([][]string, 0)
	for _, e := range evaluations.Sorted() {
		rows = append(rows, []string{e.Version.String(), e.Constraint.String(), pres.renderSatisfied(e.Satisfied)})
	}

	if len(rows) == 0 {
		_, err := io.WriteString(output, "No versions evaluated\n")
		return err
	}

	table := tablewriter.NewWriter(output)
	table.SetHeader([]string{"Version", "Requirement", "Satisfied"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetAutoFormatHeaders(true)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	table.AppendBulk(rows)
	table.Render()

	return nil
}

func (pres *Presenter) renderSatisfied(satisfied bool) string {
	if satisfied {
		if pres.withColor {
			return color.Green.Sprint("yes")
		}
		return "yes"
	}
	if pres.withColor {
		return color.Red.Sprint("no")
	}
	return "no"
}
