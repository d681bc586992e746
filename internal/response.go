package internal

import "net/http"

type ResponseCode string

const (
	CodeSuccess  ResponseCode = "00"
	CodeNotFound ResponseCode = "90"
	CodeFailed   ResponseCode = "99"
)

const (
	MessageSuccess          = "Success"
	MessageValidationFailed = "Validation Failed"
)

// APIResponse is the outcome envelope returned by every directory operation.
type APIResponse struct {
	Code    ResponseCode `json:"code"`
	Message string       `json:"message"`
	Data    interface{}  `json:"data"`
}

func Success(data interface{}) *APIResponse {
	return &APIResponse{
		Code:    CodeSuccess,
		Message: MessageSuccess,
		Data:    data,
	}
}

func NotFound(message string) *APIResponse {
	return &APIResponse{
		Code:    CodeNotFound,
		Message: message,
	}
}

func Failed(message string) *APIResponse {
	return &APIResponse{
		Code:    CodeFailed,
		Message: message,
	}
}

// ValidationFailed reports request field errors. It shares the "90" code with
// not-found but carries the field map instead of an entity.
func ValidationFailed(fields ValidationErrors) *APIResponse {
	return &APIResponse{
		Code:    CodeNotFound,
		Message: MessageValidationFailed,
		Data:    fields,
	}
}

func (r *APIResponse) IsSuccess() bool {
	return r != nil && r.Code == CodeSuccess
}

func (r *APIResponse) IsValidationFailure() bool {
	if r == nil || r.Code != CodeNotFound {
		return false
	}
	_, ok := r.Data.(ValidationErrors)
	return ok
}

// HTTPStatus maps the envelope code onto a transport status.
func (r *APIResponse) HTTPStatus() int {
	switch {
	case r.IsSuccess():
		return http.StatusOK
	case r.IsValidationFailure():
		return http.StatusBadRequest
	case r != nil && r.Code == CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}
