// Package views embeds the html templates resolved by view name.
package views

import (
	"embed"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed *.html layouts/*.html
var FS embed.FS

// NewEngine returns an html engine over the embedded templates.
// With reload set, templates are parsed again on every render.
func NewEngine(reload bool) *html.Engine {
	engine := html.NewFileSystem(http.FS(FS), ".html")
	engine.Reload(reload)
	return engine
}
