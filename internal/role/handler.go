package role

import (
	"context"
	"net/http"

	"github.com/frahmantamala/employee-directory/internal"
	"github.com/frahmantamala/employee-directory/internal/transport"
)

type ServiceAPI interface {
	GetRole(ctx context.Context, id int64) *internal.APIResponse
	GetAllRoles(ctx context.Context) *internal.APIResponse
	CreateRole(ctx context.Context, req CreateRoleRequest) *internal.APIResponse
	UpdateRole(ctx context.Context, id int64, req UpdateRoleRequest) *internal.APIResponse
	DeleteRole(ctx context.Context, id int64) *internal.APIResponse
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

func (h *Handler) GetRole(w http.ResponseWriter, r *http.Request) {
	id, ok := h.ParseID(w, r, "id")
	if !ok {
		return
	}
	h.WriteResponse(w, h.Service.GetRole(r.Context(), id))
}

func (h *Handler) GetAllRoles(w http.ResponseWriter, r *http.Request) {
	h.WriteResponse(w, h.Service.GetAllRoles(r.Context()))
}

func (h *Handler) CreateRole(w http.ResponseWriter, r *http.Request) {
	var req CreateRoleRequest
	if !h.DecodeJSON(w, r, &req) {
		return
	}
	if errs := req.Validate(); errs != nil {
		h.WriteResponse(w, internal.ValidationFailed(errs))
		return
	}
	h.WriteCreated(w, h.Service.CreateRole(r.Context(), req))
}

func (h *Handler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	id, ok := h.ParseID(w, r, "id")
	if !ok {
		return
	}
	var req UpdateRoleRequest
	if !h.DecodeJSON(w, r, &req) {
		return
	}
	if errs := req.Validate(); errs != nil {
		h.WriteResponse(w, internal.ValidationFailed(errs))
		return
	}
	h.WriteResponse(w, h.Service.UpdateRole(r.Context(), id, req))
}

func (h *Handler) DeleteRole(w http.ResponseWriter, r *http.Request) {
	id, ok := h.ParseID(w, r, "id")
	if !ok {
		return
	}
	h.WriteResponse(w, h.Service.DeleteRole(r.Context(), id))
}
