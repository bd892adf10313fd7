package support

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeInbox)
	r.Get("/thread", h.ServeThread)
	r.Post("/thread", h.HandleReply)
	return r
}
