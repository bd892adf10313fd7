// internal/app/features/promos/views/views.go
package promos

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "promos",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
