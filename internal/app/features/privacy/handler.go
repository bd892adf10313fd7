package privacy

import (
	"net/http"

	"github.com/towdeskhq/towdesk/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
)

type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

// GET /privacy
func (h *Handler) ServePrivacy(w http.ResponseWriter, r *http.Request) {
	data := struct {
		viewdata.BaseVM
	}{
		BaseVM: viewdata.NewBaseVM(r, "Privacy Policy", "/"),
	}

	templates.Render(w, r, "privacy", data)
}
