package services

import (
	"brightbooks/internal/leads"
	apperrors "brightbooks/pkg/errors"
)

// MessageResult is the response of the contact and newsletter operations
type MessageResult struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Code    apperrors.ErrorCode `json:"-"`
}

// FormResult is the response of the waitlist, service request and technical
// inquiry operations
type FormResult struct {
	Success bool                `json:"success"`
	Message string              `json:"message,omitempty"`
	Error   string              `json:"error,omitempty"`
	Data    interface{}         `json:"data,omitempty"`
	Code    apperrors.ErrorCode `json:"-"`
}

// messageResult leaves Code empty for accepted outcomes, including a
// duplicate subscription, so they are reported as success.
func messageResult(out leads.Outcome, success string) *MessageResult {
	if out.Accepted {
		if out.Message != "" {
			success = out.Message
		}
		return &MessageResult{Success: true, Message: success}
	}
	return &MessageResult{Success: false, Message: out.Message, Code: out.Code}
}

func formResult(out leads.Outcome, success string, data interface{}) *FormResult {
	if out.Accepted {
		return &FormResult{Success: true, Message: success, Data: data}
	}
	return &FormResult{Success: false, Error: out.Message, Code: out.Code}
}
