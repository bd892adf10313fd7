package promos

import (
	"context"
	"errors"
	"net/http"

	uierrors "github.com/towdeskhq/towdesk/internal/app/features/errors"
	promostore "github.com/towdeskhq/towdesk/internal/app/store/promos"
	"github.com/towdeskhq/towdesk/internal/app/system/timeouts"
	"github.com/towdeskhq/towdesk/internal/app/system/viewdata"
	"github.com/towdeskhq/towdesk/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler manages promo codes. Discount rules are validated in the store so
// no write path can bypass them; this handler translates form input and
// re-renders with the store's message on rejection.
type Handler struct {
	Promos *promostore.Store
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger
}

func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Promos: promostore.New(db),
		Log:    logger,
		ErrLog: errLog,
	}
}

type listData struct {
	viewdata.BaseVM
	Promos []models.PromoCode
}

type formData struct {
	viewdata.BaseVM
	Error  string
	Form   promoForm
	EditID string // empty for the create form
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /promos                                                                 |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	promos, err := h.Promos.List(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error listing promo codes", err,
			"A database error occurred.", "/dashboard")
		return
	}

	templates.Render(w, r, "promos_list", listData{
		BaseVM: viewdata.NewBaseVM(r, "Promo Codes", "/dashboard"),
		Promos: promos,
	})
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET/POST /promos/new                                                        |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, r, "promos_form", formData{
		BaseVM: viewdata.NewBaseVM(r, "New Promo Code", "/promos"),
		Form:   promoForm{Type: models.PromoPercent, Active: true},
	})
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/promos")
		return
	}
	form := formFromRequest(r)

	p, err := form.toModel()
	if err != nil {
		h.renderForm(w, r, "New Promo Code", err.Error(), form, "")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := h.Promos.Create(ctx, p)
	if err != nil {
		if errors.Is(err, promostore.ErrDuplicateCode) || promostore.IsValidationError(err) {
			h.renderForm(w, r, "New Promo Code", err.Error(), form, "")
			return
		}
		h.ErrLog.LogServerError(w, r, "database error creating promo code", err,
			"A database error occurred.", "/promos")
		return
	}

	h.Log.Info("promo code created", zap.String("code", created.Code))
	http.Redirect(w, r, "/promos", http.StatusSeeOther)
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET/POST /promos/{id}/edit                                                  |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	p, err := h.Promos.GetByID(ctx, id)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error loading promo code", err,
			"A database error occurred.", "/promos")
		return
	}

	h.renderForm(w, r, "Edit "+p.Code, "", formFromModel(*p), id.Hex())
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/promos")
		return
	}
	form := formFromRequest(r)

	p, err := form.toModel()
	if err != nil {
		h.renderForm(w, r, "Edit Promo Code", err.Error(), form, id.Hex())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Promos.Update(ctx, id, p); err != nil {
		if errors.Is(err, promostore.ErrDuplicateCode) || promostore.IsValidationError(err) {
			h.renderForm(w, r, "Edit Promo Code", err.Error(), form, id.Hex())
			return
		}
		h.ErrLog.LogServerError(w, r, "database error updating promo code", err,
			"A database error occurred.", "/promos")
		return
	}

	http.Redirect(w, r, "/promos", http.StatusSeeOther)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /promos/{id}/delete                                                    |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if _, err := h.Promos.Delete(ctx, id); err != nil {
		h.ErrLog.LogServerError(w, r, "database error deleting promo code", err,
			"A database error occurred.", "/promos")
		return
	}

	http.Redirect(w, r, "/promos", http.StatusSeeOther)
}

func (h *Handler) renderForm(w http.ResponseWriter, r *http.Request, title, errMsg string, form promoForm, editID string) {
	templates.Render(w, r, "promos_form", formData{
		BaseVM: viewdata.NewBaseVM(r, title, "/promos"),
		Error:  errMsg,
		Form:   form,
		EditID: editID,
	})
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad promo id", err, "Invalid promo code ID.", "/promos")
		return primitive.NilObjectID, false
	}
	return id, true
}
