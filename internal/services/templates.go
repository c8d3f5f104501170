package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"time"

	"brightbooks/internal/leads"
	"brightbooks/internal/util"
	apperrors "brightbooks/pkg/errors"
)

// Download link messages
const (
	MsgDownloadReady        = "Your download is ready."
	MsgDownloadLinkExpired  = "This download link has expired. Please request a new one."
	MsgDownloadLinkInvalid  = "This download link is invalid."
	msgTemplateNotAvailable = "Template not found"
)

// DownloadLink is returned by the information step of the template wizard
type DownloadLink struct {
	DownloadURL string    `json:"downloadUrl"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// TemplateDownloadService implements the template wizard: a lead is captured
// on the waitlist, then a signed link unlocks the file
type TemplateDownloadService struct {
	content  *ContentService
	waitlist *WaitlistService
	signer   *util.DownloadSigner
	baseURL  string
}

// NewTemplateDownloadService creates a new template download service.
// baseURL is the public origin of this API.
func NewTemplateDownloadService(content *ContentService, waitlist *WaitlistService, signer *util.DownloadSigner, baseURL string) *TemplateDownloadService {
	return &TemplateDownloadService{
		content:  content,
		waitlist: waitlist,
		signer:   signer,
		baseURL:  baseURL,
	}
}

// RequestDownload captures the lead for slug and returns a signed download
// link. An unknown template is reported as a NotFound error before any lead
// is recorded.
func (s *TemplateDownloadService) RequestDownload(ctx context.Context, slug string, form *leads.WaitlistForm, meta leads.RequestMeta) (*FormResult, error) {
	tpl, err := s.content.GetTemplate(ctx, slug)
	if err != nil {
		return nil, err
	}

	result := s.waitlist.Submit(ctx, form, TemplateSourcePrefix+tpl.Slug, meta)
	if !result.Success {
		return result, nil
	}

	token, err := s.signer.GenerateToken(tpl.Slug, util.NormalizeEmail(form.Email))
	if err != nil {
		// The lead is stored; only the link failed
		log.Printf("[TEMPLATES] Failed to sign download token for %s: %v", tpl.Slug, err)
		return &FormResult{Success: false, Error: leads.MsgGenericFailure, Code: apperrors.ErrCodeInternalError}, nil
	}

	log.Printf("[TEMPLATES] Download link issued: template=%s, email=%s", tpl.Slug, util.RedactEmail(util.NormalizeEmail(form.Email)))
	return &FormResult{
		Success: true,
		Message: MsgDownloadReady,
		Data: &DownloadLink{
			DownloadURL: s.downloadURL(tpl.Slug, token),
			ExpiresAt:   time.Now().UTC().Add(s.signer.TTL()).Truncate(time.Second),
		},
	}, nil
}

// ResolveDownload verifies token for slug and returns the file location
func (s *TemplateDownloadService) ResolveDownload(ctx context.Context, slug, token string) (string, error) {
	if _, err := s.signer.ValidateToken(token, slug); err != nil {
		if errors.Is(err, util.ErrExpiredToken) {
			return "", apperrors.Wrap(apperrors.ErrCodeBadRequest, MsgDownloadLinkExpired, err)
		}
		return "", apperrors.Wrap(apperrors.ErrCodeBadRequest, MsgDownloadLinkInvalid, err)
	}

	tpl, err := s.content.GetTemplate(ctx, slug)
	if err != nil {
		return "", err
	}
	if tpl.FileURL == "" {
		return "", apperrors.New(apperrors.ErrCodeNotFound, msgTemplateNotAvailable)
	}

	log.Printf("[TEMPLATES] Download: template=%s", tpl.Slug)
	return tpl.FileURL, nil
}

func (s *TemplateDownloadService) downloadURL(slug, token string) string {
	return fmt.Sprintf("%s/api/v1/templates/%s/download?token=%s", s.baseURL, url.PathEscape(slug), url.QueryEscape(token))
}
