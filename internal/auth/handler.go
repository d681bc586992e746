package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/frahmantamala/employee-directory/internal"
	"github.com/frahmantamala/employee-directory/internal/transport"
	"github.com/frahmantamala/employee-directory/pkg/logger"
)

type ServiceAPI interface {
	Authenticate(ctx context.Context, dto LoginDTO) (AuthTokens, error)
	ValidateAccessToken(tokenString string) (*Claims, error)
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

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var dto LoginDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}

	tokens, err := h.Service.Authenticate(r.Context(), dto)
	if err != nil {
		var fields internal.ValidationErrors
		switch {
		case errors.As(err, &fields):
			h.WriteResponse(w, internal.ValidationFailed(fields))
		case errors.Is(err, ErrInvalidCredentials):
			h.WriteError(w, http.StatusUnauthorized, "Invalid email or password")
		default:
			logger.From(r.Context()).Error("authentication failed", "error", err)
			h.WriteError(w, http.StatusInternalServerError, "Unable to login, try again later")
		}
		return
	}

	h.WriteResponse(w, internal.Success(tokens))
}

// AuthMiddleware verifies the bearer token and stores the caller's email on
// the request context.
func (h *Handler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := h.ExtractTokenFromHeader(r)
		if token == "" {
			h.WriteError(w, http.StatusUnauthorized, "missing authorization token")
			return
		}

		claims, err := h.Service.ValidateAccessToken(token)
		if err != nil {
			logger.From(r.Context()).Warn("token validation failed", "error", err)
			if errors.Is(err, ErrTokenExpired) {
				h.WriteError(w, http.StatusUnauthorized, "token expired")
				return
			}
			h.WriteError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		ctx := internal.ContextWithCaller(r.Context(), claims.Email)
		ctx = logger.With(ctx, "caller", claims.Email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
