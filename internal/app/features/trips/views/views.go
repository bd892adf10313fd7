// internal/app/features/trips/views/views.go
package trips

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "trips",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
