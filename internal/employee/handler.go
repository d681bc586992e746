package employee

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/frahmantamala/employee-directory/internal"
	"github.com/frahmantamala/employee-directory/internal/transport"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	GetEmployee(ctx context.Context, id int64) *internal.APIResponse
	GetEmployeeByEmail(ctx context.Context, email string) *internal.APIResponse
	GetAllEmployees(ctx context.Context) *internal.APIResponse
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) *internal.APIResponse
	UpdateEmployee(ctx context.Context, id int64, req UpdateEmployeeRequest) *internal.APIResponse
	DeleteEmployee(ctx context.Context, id int64) *internal.APIResponse
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := h.ParseID(w, r, "id")
	if !ok {
		return
	}
	h.WriteResponse(w, h.Service.GetEmployee(r.Context(), id))
}

// GetEmployeeByEmail serves the auth view with the password hash removed.
func (h *Handler) GetEmployeeByEmail(w http.ResponseWriter, r *http.Request) {
	email, err := url.PathUnescape(chi.URLParam(r, "email"))
	email = strings.TrimSpace(email)
	if err != nil || email == "" {
		h.WriteError(w, http.StatusBadRequest, "Invalid email, pass in correct data")
		return
	}

	resp := h.Service.GetEmployeeByEmail(r.Context(), email)
	if view, ok := resp.Data.(AuthView); ok {
		resp.Data = view.WithoutPassword()
	}
	h.WriteResponse(w, resp)
}

func (h *Handler) GetAllEmployees(w http.ResponseWriter, r *http.Request) {
	h.WriteResponse(w, h.Service.GetAllEmployees(r.Context()))
}

func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req CreateEmployeeRequest
	if !h.DecodeJSON(w, r, &req) {
		return
	}
	if errs := req.Validate(); errs != nil {
		h.WriteResponse(w, internal.ValidationFailed(errs))
		return
	}
	h.WriteCreated(w, h.Service.CreateEmployee(r.Context(), req))
}

func (h *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := h.ParseID(w, r, "id")
	if !ok {
		return
	}
	var req UpdateEmployeeRequest
	if !h.DecodeJSON(w, r, &req) {
		return
	}
	if errs := req.Validate(); errs != nil {
		h.WriteResponse(w, internal.ValidationFailed(errs))
		return
	}
	h.WriteResponse(w, h.Service.UpdateEmployee(r.Context(), id, req))
}

func (h *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := h.ParseID(w, r, "id")
	if !ok {
		return
	}
	h.WriteResponse(w, h.Service.DeleteEmployee(r.Context(), id))
}
