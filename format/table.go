package format

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/dhamidi/textparse/row"
)

// TableEncoder writes a row document as a bordered table. With a header,
// the first row is rendered as the table header.
type TableEncoder struct {
	w      io.Writer
	header bool
}

func NewTableEncoder(w io.Writer, header bool) *TableEncoder {
	return &TableEncoder{w: w, header: header}
}

func (e *TableEncoder) EncodeDocument(doc row.Document) error {
	_, err := io.WriteString(e.w, e.render(doc)+"\n")
	return err
}

func (e *TableEncoder) render(doc row.Document) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Faint(true))

	rows := doc
	if e.header && len(rows) > 0 {
		t = t.Headers(rows[0]...).
			StyleFunc(func(r, c int) lipgloss.Style {
				if r == table.HeaderRow {
					return lipgloss.NewStyle().Bold(true)
				}
				return lipgloss.NewStyle()
			})
		rows = rows[1:]
	}

	for _, r := range rows {
		t = t.Row(r...)
	}
	return t.String()
}
