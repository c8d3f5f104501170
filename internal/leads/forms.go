package leads

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"brightbooks/internal/domain"
	"brightbooks/internal/util"
)

// RequestMeta is the request context a caller threads into a submission
type RequestMeta struct {
	SourceIP  string
	UserAgent string
}

// Form is one concrete form payload. Each kind carries its own rule set and
// knows how to build the row it persists.
type Form interface {
	Kind() domain.FormKind
	// BotTrap returns the decoy field value
	BotTrap() string
	Validate() error
	// Record builds the normalized row to insert
	Record(meta RequestMeta, now time.Time) interface{}
}

// DefaultNewsletterSource is used when a newsletter payload names no source
const DefaultNewsletterSource = "footer"

// ContactForm is the payload of the contact page form
type ContactForm struct {
	FirstName      string         `json:"firstName"`
	LastName       string         `json:"lastName"`
	Email          string         `json:"email"`
	Company        string         `json:"company,omitempty"`
	Subject        string         `json:"subject,omitempty"`
	Message        string         `json:"message"`
	PrivacyConsent domain.Consent `json:"privacyConsent"`
	Honeypot       string         `json:"honeypot,omitempty"`
}

// Kind implements Form
func (f *ContactForm) Kind() domain.FormKind {
	return domain.FormContact
}

// BotTrap returns the honeypot field
func (f *ContactForm) BotTrap() string {
	return f.Honeypot
}

// Validate checks the contact fields and returns the first failure
func (f *ContactForm) Validate() error {
	v := &Validator{}
	return v.Required(f.FirstName, f.LastName, f.Email, f.Message).
		Email(f.Email).
		Consent(f.PrivacyConsent, MsgPrivacyConsent).
		Err()
}

// Record builds the contact row stored for this submission
func (f *ContactForm) Record(meta RequestMeta, now time.Time) interface{} {
	row := &domain.ContactSubmission{
		FullName:       util.JoinName(f.FirstName, f.LastName),
		FirstName:      strings.TrimSpace(f.FirstName),
		LastName:       strings.TrimSpace(f.LastName),
		Email:          util.NormalizeEmail(f.Email),
		Company:        util.NullableString(f.Company),
		Subject:        util.NullableString(f.Subject),
		Message:        strings.TrimSpace(f.Message),
		PrivacyConsent: f.PrivacyConsent.Accepted(),
	}
	row.Stamp(meta.SourceIP, meta.UserAgent, now)
	return row
}

// NewsletterForm is the payload of the newsletter sign-up
type NewsletterForm struct {
	Email    string `json:"email"`
	Source   string `json:"source,omitempty"`
	Honeypot string `json:"honeypot,omitempty"`
}

// Kind implements Form
func (f *NewsletterForm) Kind() domain.FormKind {
	return domain.FormNewsletter
}

// BotTrap returns the honeypot field
func (f *NewsletterForm) BotTrap() string {
	return f.Honeypot
}

// Validate checks the newsletter fields and returns the first failure
func (f *NewsletterForm) Validate() error {
	v := &Validator{}
	return v.Required(f.Email).Email(f.Email).Err()
}

// Record builds the newsletter row stored for this submission
func (f *NewsletterForm) Record(meta RequestMeta, now time.Time) interface{} {
	source := strings.TrimSpace(f.Source)
	if source == "" {
		source = DefaultNewsletterSource
	}
	row := &domain.NewsletterSubscription{
		Email:  util.NormalizeEmail(f.Email),
		Source: source,
	}
	row.Stamp(meta.SourceIP, meta.UserAgent, now)
	return row
}

// WaitlistForm is the payload of waitlist and template-lead forms. Source is
// set by the caller, never by the client.
type WaitlistForm struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Company   string `json:"company,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Message   string `json:"message,omitempty"`
	Honeypot  string `json:"honeypot,omitempty"`

	Source string `json:"-"`
}

// Kind implements Form
func (f *WaitlistForm) Kind() domain.FormKind {
	return domain.FormWaitlist
}

// BotTrap returns the honeypot field
func (f *WaitlistForm) BotTrap() string {
	return f.Honeypot
}

// Validate checks the waitlist fields and returns the first failure
func (f *WaitlistForm) Validate() error {
	v := &Validator{}
	return v.Required(f.FirstName, f.LastName, f.Email).Email(f.Email).Err()
}

// Record builds the waitlist row stored for this submission
func (f *WaitlistForm) Record(meta RequestMeta, now time.Time) interface{} {
	phone := util.NormalizePhone(f.Phone)
	message := strings.TrimSpace(f.Message)
	if message == "" {
		message = phonePlaceholder(phone)
	}
	row := &domain.WaitlistEntry{
		Name:    util.JoinName(f.FirstName, f.LastName),
		Email:   util.NormalizeEmail(f.Email),
		Company: util.NullableString(f.Company),
		Phone:   util.NullableString(phone),
		Message: message,
		Source:  f.Source,
	}
	row.Status = domain.StatusPending
	row.Stamp(meta.SourceIP, meta.UserAgent, now)
	return row
}

func phonePlaceholder(phone string) string {
	if phone == "" {
		return "Phone: not provided"
	}
	return fmt.Sprintf("Phone: %s", phone)
}

// ServiceRequestForm is the payload of the "request this service" form on a
// solution page
type ServiceRequestForm struct {
	SolutionID string `json:"solutionId"`
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Company    string `json:"company,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Message    string `json:"message,omitempty"`
	Honeypot   string `json:"honeypot,omitempty"`
}

// Kind implements Form
func (f *ServiceRequestForm) Kind() domain.FormKind {
	return domain.FormServiceRequest
}

// BotTrap returns the honeypot field
func (f *ServiceRequestForm) BotTrap() string {
	return f.Honeypot
}

// Validate checks the service request fields and returns the first failure
func (f *ServiceRequestForm) Validate() error {
	v := &Validator{}
	return v.Required(f.SolutionID, f.FullName, f.Email).Email(f.Email).Err()
}

// Record builds the service request row stored for this submission
func (f *ServiceRequestForm) Record(meta RequestMeta, now time.Time) interface{} {
	row := &domain.ServiceRequest{
		SolutionID: strings.TrimSpace(f.SolutionID),
		FullName:   strings.TrimSpace(f.FullName),
		Email:      util.NormalizeEmail(f.Email),
		Company:    util.NullableString(f.Company),
		Phone:      util.NullableString(util.NormalizePhone(f.Phone)),
		Message:    util.NullableString(f.Message),
	}
	row.Stamp(meta.SourceIP, meta.UserAgent, now)
	return row
}

// TechnicalInquiryForm is the payload of the technical inquiry form
type TechnicalInquiryForm struct {
	Title          string         `json:"title,omitempty"`
	FirstName      string         `json:"firstName"`
	LastName       string         `json:"lastName"`
	Email          string         `json:"email"`
	Phone          string         `json:"phone,omitempty"`
	Company        string         `json:"company,omitempty"`
	JobTitle       string         `json:"jobTitle,omitempty"`
	Subject        string         `json:"subject"`
	Subcategory    string         `json:"subcategory,omitempty"`
	Background     string         `json:"background"`
	Question       string         `json:"question,omitempty"`
	AdditionalInfo string         `json:"additionalInfo,omitempty"`
	PrivacyConsent domain.Consent `json:"privacyConsent"`
	TermsConsent   domain.Consent `json:"termsConsent"`
	Honeypot       string         `json:"honeypot,omitempty"`
}

// Kind implements Form
func (f *TechnicalInquiryForm) Kind() domain.FormKind {
	return domain.FormTechnicalInquiry
}

// BotTrap returns the honeypot field
func (f *TechnicalInquiryForm) BotTrap() string {
	return f.Honeypot
}

// Validate checks the technical inquiry fields and returns the first failure
func (f *TechnicalInquiryForm) Validate() error {
	v := &Validator{}
	return v.Required(f.FirstName, f.LastName, f.Email, f.Subject, f.Background).
		Email(f.Email).
		Consent(f.PrivacyConsent, MsgInquiryConsent).
		Consent(f.TermsConsent, MsgInquiryConsent).
		Err()
}

// Record builds the technical inquiry row stored for this submission
func (f *TechnicalInquiryForm) Record(meta RequestMeta, now time.Time) interface{} {
	row := &domain.TechnicalInquiry{
		ReferenceID:    uuid.NewString(),
		Title:          util.NullableString(f.Title),
		FullName:       util.JoinName(f.FirstName, f.LastName),
		Email:          util.NormalizeEmail(f.Email),
		Phone:          util.NullableString(util.NormalizePhone(f.Phone)),
		Company:        util.NullableString(f.Company),
		JobTitle:       util.NullableString(f.JobTitle),
		Subject:        strings.TrimSpace(f.Subject),
		Subcategory:    util.NullableString(f.Subcategory),
		Background:     strings.TrimSpace(f.Background),
		Question:       util.NullableString(f.Question),
		AdditionalInfo: util.NullableString(f.AdditionalInfo),
		PrivacyConsent: f.PrivacyConsent.Accepted(),
		TermsConsent:   f.TermsConsent.Accepted(),
	}
	row.Status = domain.StatusPending
	row.Stamp(meta.SourceIP, meta.UserAgent, now)
	return row
}
