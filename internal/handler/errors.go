package handler

import (
	"strings"

	"github.com/pkordes/kidmap/backend/internal/domain"
	"github.com/pkordes/kidmap/backend/internal/handler/gen"
)

// errorBody builds an ErrorResponse with a machine-readable code.
func errorBody(code, message string) gen.ErrorResponse {
	return gen.ErrorResponse{Message: message, Code: &code}
}

// notFoundBody returns an ErrorResponse for a missing resource.
// The caller supplies the human-readable message (e.g. "favorite not found")
// because the handler is the layer that knows what was being looked up.
func notFoundBody(message string) gen.ErrorResponse {
	return errorBody("not_found", message)
}

// validationBody returns an ErrorResponse for a domain validation failure.
// The message is extracted from the wrapped domain.ErrValidation error.
func validationBody(err error) gen.ErrorResponse {
	return errorBody("validation_error", unwrapMessage(err))
}

// requestBody returns an ErrorResponse for input rejected before reaching
// the service layer (e.g. a latitude that is not a number).
func requestBody(message string) gen.ErrorResponse {
	return errorBody("validation_error", message)
}

func unauthorizedBody() gen.ErrorResponse {
	return errorBody("unauthorized", "Unauthorized")
}

// upstreamBody reports that the place data service failed. The upstream
// detail is not echoed to clients.
func upstreamBody() gen.ErrorResponse {
	return errorBody("upstream_error", "Could not load places. Please try again.")
}

// unwrapMessage extracts the human-readable part from a wrapped validation error.
// e.g. "service.FavoriteService.Add: validation error: placeName is required" → "placeName is required"
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	prefix := domain.ErrValidation.Error() + ": "
	if i := strings.LastIndex(msg, prefix); i >= 0 && len(msg) > i+len(prefix) {
		return msg[i+len(prefix):]
	}
	return msg
}
