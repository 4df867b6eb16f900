package htmlgrid

import "html/template"

var (
	HeaderTemplate = template.Must(template.New("header").Parse("" +
		"<table{{if .TableClass}} class='{{.TableClass}}'{{end}}>\n" +
		"{{if .Caption}}  <caption>{{.Caption}}</caption>\n{{end}}" +
		"{{if .Headers}}" +
		"  <thead>\n" +
		"    <tr>{{range .Headers}}<th{{if .Class}} class='{{.Class}}'{{end}}>{{.Title}}</th>{{end}}</tr>\n" +
		"  </thead>\n" +
		"{{end}}" +
		"  <tbody>\n",
	))

	RowTemplate = template.Must(template.New("row").Parse("" +
		"    <tr data-key='{{.Key}}'{{if .RowClass}} class='{{.RowClass}}'{{end}}>" +
		"{{range .Cells}}<td{{if .Class}} class='{{.Class}}'{{end}}>{{.HTML}}</td>{{end}}" +
		"</tr>\n",
	))

	// EmptyRowTemplate is used for empty grids with headers
	EmptyRowTemplate = template.Must(template.New("emptyRow").Parse("" +
		"    <tr><td colspan='{{len .Headers}}'{{if .EmptyClass}} class='{{.EmptyClass}}'{{end}}>{{.Message}}</td></tr>\n",
	))

	FooterTemplate = template.Must(template.New("footer").Parse("" +
		"  </tbody>\n" +
		"</table>",
	))

	// EmptyTemplate is used instead of a table
	// for empty grids without headers
	EmptyTemplate = template.Must(template.New("empty").Parse("" +
		"<div{{if .EmptyClass}} class='{{.EmptyClass}}'{{end}}>{{.Message}}</div>",
	))
)

type TemplateContext struct {
	TableClass string
	EmptyClass string
	Caption    string
	Headers    []HeaderTemplateContext
	// Message of the empty state, only set for empty grids
	Message string
}

type HeaderTemplateContext struct {
	Key   string
	Title string
	Class string
}

type RowTemplateContext struct {
	TemplateContext

	Key      string
	RowIndex int
	RowClass string
	Cells    []CellTemplateContext
}

type CellTemplateContext struct {
	Key   string
	Class string
	HTML  template.HTML
}
