package htmlgrid

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"strings"

	"github.com/domonda/go-datatable"
)

var (
	_ RawFormatter = RawFormatterFunc(nil)
	_ RawFormatter = Raw("")
	_ RawFormatter = JSONFormatter("")
	_ RawFormatter = SpanClassFormatter("")

	_ HTMLValue = Badge{}
)

// RawFormatter formats a cell as raw HTML.
// Returning errors.ErrUnsupported continues
// with the default formatting of the cell.
type RawFormatter interface {
	RawHTML(ctx context.Context, cell *datatable.Cell) (template.HTML, error)
}

type RawFormatterFunc func(ctx context.Context, cell *datatable.Cell) (template.HTML, error)

func (f RawFormatterFunc) RawHTML(ctx context.Context, cell *datatable.Cell) (template.HTML, error) {
	return f(ctx, cell)
}

// Raw is a RawFormatter that ignores the cell
// and returns the underlying string as HTML.
type Raw string

func (r Raw) RawHTML(ctx context.Context, cell *datatable.Cell) (template.HTML, error) {
	return template.HTML(r), nil //#nosec G203
}

// HTMLValue is implemented by cell values
// that render themselves as HTML.
type HTMLValue interface {
	HTML() template.HTML
}

var (
	// RawTextFormatter returns the cell text without escaping.
	RawTextFormatter RawFormatterFunc = func(ctx context.Context, cell *datatable.Cell) (template.HTML, error) {
		return template.HTML(cell.Text), nil //#nosec G203
	}

	PreFormatter RawFormatterFunc = func(ctx context.Context, cell *datatable.Cell) (template.HTML, error) {
		return template.HTML("<pre>" + template.HTMLEscapeString(cell.Text) + "</pre>"), nil //#nosec G203
	}

	CodeFormatter RawFormatterFunc = func(ctx context.Context, cell *datatable.Cell) (template.HTML, error) {
		return template.HTML("<code>" + template.HTMLEscapeString(cell.Text) + "</code>"), nil //#nosec G203
	}

	// TextAsAnchorFormatter returns an HTML anchor element
	// with the escaped cell text as id and inner text.
	TextAsAnchorFormatter RawFormatterFunc = func(ctx context.Context, cell *datatable.Cell) (template.HTML, error) {
		text := template.HTMLEscapeString(cell.Text)
		return template.HTML(fmt.Sprintf("<a id='%[1]s'>%[1]s</a>", text)), nil //#nosec G203
	}
)

// JSONFormatter formats the cell text as indented JSON
// within a pre element using the underlying string as indent.
type JSONFormatter string

func (indent JSONFormatter) RawHTML(ctx context.Context, cell *datatable.Cell) (template.HTML, error) {
	var buf bytes.Buffer
	err := json.Indent(&buf, []byte(cell.Text), "", string(indent))
	if err != nil {
		return "", err
	}
	return template.HTML("<pre>" + template.HTMLEscapeString(buf.String()) + "</pre>"), nil //#nosec G203
}

// SpanClassFormatter formats the cell text within an HTML span element
// with the class of the underlying string value.
type SpanClassFormatter string

func (class SpanClassFormatter) RawHTML(ctx context.Context, cell *datatable.Cell) (template.HTML, error) {
	text := template.HTMLEscapeString(cell.Text)
	return template.HTML(fmt.Sprintf("<span class='%s'>%s</span>", template.HTMLEscapeString(string(class)), text)), nil //#nosec G203
}

// Badge is a cell value displayed as a labeled badge.
// Other writers use its Label as cell text.
type Badge struct {
	Label string
	Class string
}

func (b Badge) String() string { return b.Label }

func (b Badge) HTML() template.HTML {
	label := template.HTMLEscapeString(b.Label)
	if b.Class == "" {
		return template.HTML("<span>" + label + "</span>") //#nosec G203
	}
	return template.HTML(fmt.Sprintf("<span class='%s'>%s</span>", template.HTMLEscapeString(b.Class), label)) //#nosec G203
}

// ActionsHTML returns the actions as button elements
// identified by a data-action attribute.
func ActionsHTML(actions datatable.Actions) template.HTML {
	var b strings.Builder
	for i, a := range actions {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString("<button type='button' data-action='")
		b.WriteString(template.HTMLEscapeString(a.Name))
		b.WriteByte('\'')
		if a.Class != "" {
			b.WriteString(" class='")
			b.WriteString(template.HTMLEscapeString(a.Class))
			b.WriteByte('\'')
		}
		b.WriteByte('>')
		b.WriteString(template.HTMLEscapeString(a.Label))
		b.WriteString("</button>")
	}
	return template.HTML(b.String()) //#nosec G203
}
