package apilogin

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.MethodNotAllowed(h.MethodNotAllowed)
	r.Post("/", h.HandleLogin)
	return r
}
