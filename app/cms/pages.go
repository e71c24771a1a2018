package cms

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/dmitrymomot/doccms/core/handler"
	"github.com/dmitrymomot/doccms/core/response"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed assets
var assetFS embed.FS

var pageNames = []string{"index", "document", "edit", "new", "signin", "error"}

// pageData is the view model every page template receives.
type pageData struct {
	AppName  string
	Title    string
	Flash    string
	SignedIn bool
	Username string

	Files        []string
	Name         string
	Content      string
	HTML         template.HTML
	FormUsername string

	Status  int
	Message string
}

// parsePages builds one template set per page: the layout plus the page's
// "content" block.
func parsePages() (map[string]*template.Template, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s page: %w", name, err)
		}
		pages[name] = tmpl
	}
	return pages, nil
}

// page renders a full HTML page. The pending flash is consumed here; an
// inline message in data.Flash takes its place.
func (a *App) page(ctx *Context, name string, data pageData, status int) handler.Response {
	flash := ctx.TakeFlash()
	if data.Flash == "" {
		data.Flash = flash
	}
	data.AppName = a.config.AppName
	data.SignedIn = ctx.IsSignedIn()
	data.Username = ctx.Username()

	if status == 0 {
		status = http.StatusOK
	}
	return response.TemplateWithStatus(a.pages[name], data, status)
}
