package terms

import (
	"net/http"

	"github.com/towdeskhq/towdesk/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
)

type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

// GET /terms
func (h *Handler) ServeTerms(w http.ResponseWriter, r *http.Request) {
	data := struct {
		viewdata.BaseVM
	}{
		BaseVM: viewdata.NewBaseVM(r, "Terms of Service", "/"),
	}

	templates.Render(w, r, "terms", data)
}
