package activity

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeActivity)
	r.Get("/ws", h.Feed.ServeWS)
	return r
}
