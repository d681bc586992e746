package department

import (
	"context"
	"net/http"

	"github.com/frahmantamala/employee-directory/internal"
	"github.com/frahmantamala/employee-directory/internal/transport"
)

type ServiceAPI interface {
	GetDepartment(ctx context.Context, id int64) *internal.APIResponse
	GetAllDepartments(ctx context.Context) *internal.APIResponse
	CreateDepartment(ctx context.Context, req CreateDepartmentRequest) *internal.APIResponse
	UpdateDepartment(ctx context.Context, id int64, req UpdateDepartmentRequest) *internal.APIResponse
	DeleteDepartment(ctx context.Context, id int64) *internal.APIResponse
	ViewEmployeesInDepartment(ctx context.Context, callerEmail string) *internal.APIResponse
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

func (h *Handler) GetDepartment(w http.ResponseWriter, r *http.Request) {
	id, ok := h.ParseID(w, r, "id")
	if !ok {
		return
	}
	h.WriteResponse(w, h.Service.GetDepartment(r.Context(), id))
}

func (h *Handler) GetAllDepartments(w http.ResponseWriter, r *http.Request) {
	h.WriteResponse(w, h.Service.GetAllDepartments(r.Context()))
}

func (h *Handler) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var req CreateDepartmentRequest
	if !h.DecodeJSON(w, r, &req) {
		return
	}
	if errs := req.Validate(); errs != nil {
		h.WriteResponse(w, internal.ValidationFailed(errs))
		return
	}
	h.WriteCreated(w, h.Service.CreateDepartment(r.Context(), req))
}

func (h *Handler) UpdateDepartment(w http.ResponseWriter, r *http.Request) {
	id, ok := h.ParseID(w, r, "id")
	if !ok {
		return
	}
	var req UpdateDepartmentRequest
	if !h.DecodeJSON(w, r, &req) {
		return
	}
	if errs := req.Validate(); errs != nil {
		h.WriteResponse(w, internal.ValidationFailed(errs))
		return
	}
	h.WriteResponse(w, h.Service.UpdateDepartment(r.Context(), id, req))
}

func (h *Handler) DeleteDepartment(w http.ResponseWriter, r *http.Request) {
	id, ok := h.ParseID(w, r, "id")
	if !ok {
		return
	}
	h.WriteResponse(w, h.Service.DeleteDepartment(r.Context(), id))
}

// ViewEmployeesInDepartment serves the roster for the authenticated caller.
func (h *Handler) ViewEmployeesInDepartment(w http.ResponseWriter, r *http.Request) {
	caller := internal.CallerFromContext(r.Context())
	if caller == "" {
		h.WriteError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	h.WriteResponse(w, h.Service.ViewEmployeesInDepartment(r.Context(), caller))
}
