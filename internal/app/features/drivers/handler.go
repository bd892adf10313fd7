package drivers

import (
	"context"
	"errors"
	"net/http"

	uierrors "github.com/towdeskhq/towdesk/internal/app/features/errors"
	driverstore "github.com/towdeskhq/towdesk/internal/app/store/drivers"
	"github.com/towdeskhq/towdesk/internal/app/system/inputval"
	"github.com/towdeskhq/towdesk/internal/app/system/timeouts"
	"github.com/towdeskhq/towdesk/internal/app/system/viewdata"
	"github.com/towdeskhq/towdesk/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler manages tow-truck operator accounts. Admins create them with a
// temporary password; the driver app takes over from there.
type Handler struct {
	Drivers *driverstore.Store
	Log     *zap.Logger
	ErrLog  *uierrors.ErrorLogger
}

func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Drivers: driverstore.New(db),
		Log:     logger,
		ErrLog:  errLog,
	}
}

type listData struct {
	viewdata.BaseVM
	Drivers []driverRow
}

type detailData struct {
	viewdata.BaseVM
	Driver driverRow
}

// newForm carries the create form's values and validation state.
type newForm struct {
	FullName      string `validate:"required,max=120" label:"Name"`
	Email         string `validate:"required,email,max=320" label:"Email"`
	Phone         string `validate:"max=50" label:"Phone"`
	LicenseNumber string `validate:"max=80" label:"License number"`
	TruckMake     string `validate:"max=80" label:"Truck make"`
	TruckModel    string `validate:"max=80" label:"Truck model"`
	LicensePlate  string `validate:"max=20" label:"License plate"`
	TempPassword  string `validate:"required,max=128" label:"Temporary password"`
}

type newFormData struct {
	viewdata.BaseVM
	Error string
	Form  newForm
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /drivers                                                                |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	drivers, err := h.Drivers.List(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error listing drivers", err,
			"A database error occurred.", "/dashboard")
		return
	}

	templates.Render(w, r, "drivers_list", listData{
		BaseVM:  viewdata.NewBaseVM(r, "Drivers", "/dashboard"),
		Drivers: driverRows(drivers),
	})
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /drivers/new + POST /drivers/new                                        |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, r, "drivers_new", newFormData{
		BaseVM: viewdata.NewBaseVM(r, "New Driver", "/drivers"),
	})
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/drivers")
		return
	}

	form := newForm{
		FullName:      r.FormValue("full_name"),
		Email:         r.FormValue("email"),
		Phone:         r.FormValue("phone"),
		LicenseNumber: r.FormValue("license_number"),
		TruckMake:     r.FormValue("truck_make"),
		TruckModel:    r.FormValue("truck_model"),
		LicensePlate:  r.FormValue("license_plate"),
		TempPassword:  r.FormValue("temp_password"),
	}

	if res := inputval.Validate(form); res.HasErrors() {
		h.renderNewWithError(w, r, res.First(), form)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	d := models.Driver{
		FullName:      form.FullName,
		Email:         form.Email,
		Phone:         form.Phone,
		LicenseNumber: form.LicenseNumber,
		TruckMake:     form.TruckMake,
		TruckModel:    form.TruckModel,
		LicensePlate:  form.LicensePlate,
	}

	created, err := h.Drivers.Create(ctx, d, form.TempPassword)
	switch {
	case errors.Is(err, driverstore.ErrDuplicateEmail):
		h.renderNewWithError(w, r, "A driver with this email already exists.", form)
		return
	case err != nil:
		h.ErrLog.LogServerError(w, r, "database error creating driver", err,
			"A database error occurred.", "/drivers")
		return
	}

	h.Log.Info("driver created",
		zap.String("driver_id", created.ID.Hex()),
		zap.String("email", created.Email))

	http.Redirect(w, r, "/drivers/"+created.ID.Hex(), http.StatusSeeOther)
}

func (h *Handler) renderNewWithError(w http.ResponseWriter, r *http.Request, msg string, form newForm) {
	// Never echo the password back into the form.
	form.TempPassword = ""
	templates.Render(w, r, "drivers_new", newFormData{
		BaseVM: viewdata.NewBaseVM(r, "New Driver", "/drivers"),
		Error:  msg,
		Form:   form,
	})
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /drivers/{id}                                                           |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	d, err := h.Drivers.GetByID(ctx, id)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error loading driver", err,
			"A database error occurred.", "/drivers")
		return
	}

	templates.Render(w, r, "drivers_detail", detailData{
		BaseVM: viewdata.NewBaseVM(r, d.FullName, "/drivers"),
		Driver: driverRow{}.from(*d),
	})
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /drivers/{id}/status                                                   |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleSetStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/drivers")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	status := r.FormValue("status")
	if err := h.Drivers.SetStatus(ctx, id, status); err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad driver status", err, "Invalid status.", "/drivers/"+id.Hex())
		return
	}

	h.Log.Info("driver status changed",
		zap.String("driver_id", id.Hex()),
		zap.String("status", status))

	http.Redirect(w, r, "/drivers/"+id.Hex(), http.StatusSeeOther)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /drivers/{id}/delete                                                   |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if _, err := h.Drivers.Delete(ctx, id); err != nil {
		h.ErrLog.LogServerError(w, r, "database error deleting driver", err,
			"A database error occurred.", "/drivers")
		return
	}

	h.Log.Info("driver deleted", zap.String("driver_id", id.Hex()))
	http.Redirect(w, r, "/drivers", http.StatusSeeOther)
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(pathParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad driver id", err, "Invalid driver ID.", "/drivers")
		return primitive.NilObjectID, false
	}
	return id, true
}
