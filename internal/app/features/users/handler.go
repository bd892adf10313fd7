package users

import (
	"context"
	"net/http"

	uierrors "github.com/towdeskhq/towdesk/internal/app/features/errors"
	userstore "github.com/towdeskhq/towdesk/internal/app/store/users"
	"github.com/towdeskhq/towdesk/internal/app/system/timeouts"
	"github.com/towdeskhq/towdesk/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler manages customer accounts created by the mobile booking flow.
// The console edits and removes them; it never creates them.
type Handler struct {
	Users  *userstore.Store
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger
}

func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Users:  userstore.New(db),
		Log:    logger,
		ErrLog: errLog,
	}
}

type listData struct {
	viewdata.BaseVM
	Users []userRow
}

type detailData struct {
	viewdata.BaseVM
	User userRow
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /users                                                                  |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	users, err := h.Users.List(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error listing users", err,
			"A database error occurred.", "/dashboard")
		return
	}

	templates.Render(w, r, "users_list", listData{
		BaseVM: viewdata.NewBaseVM(r, "Users", "/dashboard"),
		Users:  userRows(users),
	})
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /users/{id}                                                             |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.Users.GetByID(ctx, id)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error loading user", err,
			"A database error occurred.", "/users")
		return
	}

	templates.Render(w, r, "users_detail", detailData{
		BaseVM: viewdata.NewBaseVM(r, u.FullName, "/users"),
		User:   userRow{}.from(*u),
	})
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /users/{id}/status                                                     |
*─────────────────────────────────────────────────────────────────────────────*/

// HandleSetStatus enables or disables an account. Last writer wins when two
// admins edit concurrently.
func (h *Handler) HandleSetStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/users")
		return
	}

	status := r.FormValue("status")
	if status != "active" && status != "disabled" {
		h.ErrLog.LogBadRequest(w, r, "bad status value", nil, "Invalid status.", "/users")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Users.SetStatus(ctx, id, status); err != nil {
		h.ErrLog.LogServerError(w, r, "database error updating user status", err,
			"A database error occurred.", "/users")
		return
	}

	h.Log.Info("user status changed",
		zap.String("user_id", id.Hex()),
		zap.String("status", status))

	http.Redirect(w, r, "/users/"+id.Hex(), http.StatusSeeOther)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /users/{id}/edit                                                       |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/users")
		return
	}

	fullName := r.FormValue("full_name")
	email := r.FormValue("email")
	phone := r.FormValue("phone")
	if fullName == "" || email == "" {
		h.ErrLog.LogBadRequest(w, r, "missing profile fields", nil,
			"Name and email are required.", "/users/"+id.Hex())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Users.UpdateProfile(ctx, id, fullName, email, phone); err != nil {
		h.ErrLog.LogServerError(w, r, "database error updating user profile", err,
			"A database error occurred.", "/users")
		return
	}

	http.Redirect(w, r, "/users/"+id.Hex(), http.StatusSeeOther)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /users/{id}/delete                                                     |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	n, err := h.Users.Delete(ctx, id)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error deleting user", err,
			"A database error occurred.", "/users")
		return
	}
	if n == 0 {
		h.Log.Warn("delete user matched nothing", zap.String("user_id", id.Hex()))
	} else {
		h.Log.Info("user deleted", zap.String("user_id", id.Hex()))
	}

	http.Redirect(w, r, "/users", http.StatusSeeOther)
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(pathParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad user id", err, "Invalid user ID.", "/users")
		return primitive.NilObjectID, false
	}
	return id, true
}
