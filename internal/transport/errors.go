package transport

import (
	"context"
	"log"
	"net/http"

	goahttp "goa.design/goa/v3/http"
	"goa.design/goa/v3/middleware"

	apperrors "brightbooks/pkg/errors"
)

const msgBadRequestBody = "Invalid request body."

// ErrorBody is the JSON body of every non-form error response
type ErrorBody struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	RequestID string `json:"requestId,omitempty"`
}

// StatusFor maps an error code to its HTTP status
func StatusFor(code apperrors.ErrorCode) int {
	switch code {
	case "", apperrors.ErrCodeDuplicateSubscription:
		return http.StatusOK
	case apperrors.ErrCodeInvalidInput, apperrors.ErrCodeBotDetected, apperrors.ErrCodeBadRequest:
		return http.StatusBadRequest
	case apperrors.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	case apperrors.ErrCodeStorageUnavailable:
		return http.StatusServiceUnavailable
	case apperrors.ErrCodeNotFound:
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// writeJSON encodes v with the goa response encoder negotiated from the
// request context
func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v interface{}) {
	enc := goahttp.ResponseEncoder(ctx, w)
	w.WriteHeader(status)
	if err := enc.Encode(v); err != nil {
		log.Printf("[HTTP] Failed to encode response: %v", err)
	}
}

// writeError writes err as an ErrorBody. Only the AppError message reaches the
// client; the full error is logged for 5xx responses.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	code := apperrors.CodeOf(err)
	status := StatusFor(code)
	if status == http.StatusOK {
		status = http.StatusInternalServerError
	}
	if status >= http.StatusInternalServerError {
		log.Printf("[ERROR] %v", err)
	}

	writeJSON(ctx, w, status, &ErrorBody{
		Success:   false,
		Error:     apperrors.MessageOf(err, "Something went wrong. Please try again later."),
		RequestID: requestID(ctx),
	})
}

func requestID(ctx context.Context) string {
	if id, ok := ctx.Value(middleware.RequestIDKey).(string); ok {
		return id
	}
	return ""
}
