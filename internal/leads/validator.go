package leads

import (
	"regexp"
	"strings"

	"brightbooks/internal/domain"
	apperrors "brightbooks/pkg/errors"
)

// emailPattern: non-space/non-@ run, @, non-space/non-@ run, a dot, then at
// least one non-space character
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.\S+$`)

// ValidEmail reports whether email (after trimming) has a plausible shape
func ValidEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}

// Validator applies rules in order and keeps only the first failure.
// Later rules are skipped once one has failed.
type Validator struct {
	err error
}

// Required fails unless every value is non-empty after trimming
func (v *Validator) Required(values ...string) *Validator {
	if v.err != nil {
		return v
	}
	for _, value := range values {
		if strings.TrimSpace(value) == "" {
			v.err = apperrors.New(apperrors.ErrCodeInvalidInput, MsgRequiredFields)
			return v
		}
	}
	return v
}

// Email fails unless email matches emailPattern
func (v *Validator) Email(email string) *Validator {
	if v.err != nil {
		return v
	}
	if !ValidEmail(email) {
		v.err = apperrors.New(apperrors.ErrCodeInvalidInput, MsgInvalidEmail)
	}
	return v
}

// Consent fails with message unless consent was explicitly given
func (v *Validator) Consent(consent domain.Consent, message string) *Validator {
	if v.err != nil {
		return v
	}
	if !consent.Accepted() {
		v.err = apperrors.New(apperrors.ErrCodeInvalidInput, message)
	}
	return v
}

// Err returns the first failure, or nil
func (v *Validator) Err() error {
	return v.err
}
