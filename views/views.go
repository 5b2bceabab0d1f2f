package views

import (
	"embed"
	"html/template"
	"io"
	"net/http"
	"net/url"

	"github.com/cppla/miniblog/models"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.New("").Funcs(template.FuncMap{
	"pathEscape": url.PathEscape,
}).ParseFS(templateFS, "templates/*.html"))

// Page is one of ListPage, FormPage or ErrorPage.
type Page interface {
	templateName() string
}

// ListPage shows every post as a card, newest first.
type ListPage struct {
	Posts []models.Post
}

// FormPage is the create or edit form. Action is the URL the form posts to.
type FormPage struct {
	Editing bool
	Post    models.Post
	Action  string
	Error   string
}

// ErrorPage is the generic failure page.
type ErrorPage struct {
	Status  int
	Message string
}

func (ListPage) templateName() string  { return "list" }
func (FormPage) templateName() string  { return "form" }
func (ErrorPage) templateName() string { return "error" }

// StatusText is the reason phrase shown in the error heading.
func (e ErrorPage) StatusText() string {
	return http.StatusText(e.Status)
}

// Render writes the markup for p.
func Render(w io.Writer, p Page) error {
	return pages.ExecuteTemplate(w, p.templateName(), p)
}

var htmlContentType = []string{"text/html; charset=utf-8"}

// HTML adapts a Page to gin's render.Render.
type HTML struct {
	Page Page
}

func (r HTML) Render(w http.ResponseWriter) error {
	r.WriteContentType(w)
	return Render(w, r.Page)
}

func (r HTML) WriteContentType(w http.ResponseWriter) {
	header := w.Header()
	if val := header["Content-Type"]; len(val) == 0 {
		header["Content-Type"] = htmlContentType
	}
}
