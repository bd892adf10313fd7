package apicontact

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.MethodNotAllowed(h.MethodNotAllowed)
	r.Post("/", h.HandleSubmit)
	r.Options("/", h.HandlePreflight)
	return r
}
