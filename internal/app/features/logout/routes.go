package logout

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.HandleLogout)
	r.Post("/", h.HandleLogout)
	return r
}
