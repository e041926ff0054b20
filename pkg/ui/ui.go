package ui

import (
	"embed"
	"html/template"
	"io"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

type templateBase struct {
	template *template.Template
}

type (
	indexTemplates templateBase
	pasteTemplates templateBase
)

var Index = indexTemplates{
	template: template.Must(
		template.New("index").
			ParseFS(templateFS, "templates/layout.gohtml", "templates/index.gohtml")),
}

func (t indexTemplates) ExecutePage(w io.Writer) error {
	return t.template.ExecuteTemplate(w, "index/page.html", nil)
}

var Paste = pasteTemplates{
	template: template.Must(
		template.New("paste").
			ParseFS(templateFS, "templates/layout.gohtml", "templates/paste.gohtml")),
}

func (t pasteTemplates) ExecutePage(w io.Writer, data PagePaste) error {
	return t.template.ExecuteTemplate(w, "paste/page.html", data)
}

func (t pasteTemplates) ExecuteError(w io.Writer, data PageError) error {
	return t.template.ExecuteTemplate(w, "paste/error.html", data)
}
