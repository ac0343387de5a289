package contacts

import (
	"context"
	"strings"

	pkgerrors "github.com/tahir-sigmadevelopers/multanimango/pkg/errors"
	"github.com/tahir-sigmadevelopers/multanimango/pkg/logger"
	"github.com/tahir-sigmadevelopers/multanimango/pkg/mangoapi"
)

const minMessageLength = 10

type contactAPI interface {
	SaveContact(ctx context.Context, req mangoapi.ContactRequest) (string, error)
	ListContacts(ctx context.Context) ([]mangoapi.Contact, error)
	DeleteContact(ctx context.Context, id string) error
}

// Service handles the storefront contact form and the admin contact inbox.
type Service struct {
	api  contactAPI
	logg *logger.Logger
}

func NewService(api contactAPI, logg *logger.Logger) *Service {
	return &Service{api: api, logg: logg}
}

// Submit validates and forwards a contact-form message. The WhatsApp number
// is optional; everything else is checked in order, first failure wins.
func (s *Service) Submit(ctx context.Context, req mangoapi.ContactRequest) (string, error) {
	switch {
	case strings.TrimSpace(req.Name) == "":
		return "", pkgerrors.New(pkgerrors.CodeValidation, "Please enter your name")
	case strings.TrimSpace(req.Email) == "":
		return "", pkgerrors.New(pkgerrors.CodeValidation, "Please enter your email")
	case !strings.Contains(req.Email, "@"):
		return "", pkgerrors.New(pkgerrors.CodeValidation, "Please enter a valid email address")
	case strings.TrimSpace(req.Message) == "":
		return "", pkgerrors.New(pkgerrors.CodeValidation, "Please enter your message")
	case len(strings.TrimSpace(req.Message)) < minMessageLength:
		return "", pkgerrors.New(pkgerrors.CodeValidation, "Message should be at least 10 characters long")
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.WhatsappNo = strings.TrimSpace(req.WhatsappNo)
	req.Message = strings.TrimSpace(req.Message)

	message, err := s.api.SaveContact(ctx, req)
	if err != nil {
		s.logg.Error(ctx, "contact submission failed", err)
		return "", err
	}
	if message == "" {
		message = "Message sent successfully!"
	}
	return message, nil
}

// List returns every stored contact message for the admin inbox.
func (s *Service) List(ctx context.Context) ([]mangoapi.Contact, error) {
	contacts, err := s.api.ListContacts(ctx)
	if err != nil {
		return nil, err
	}
	if contacts == nil {
		contacts = []mangoapi.Contact{}
	}
	return contacts, nil
}

// Delete removes one contact message and returns the refreshed inbox, so a
// failed delete leaves the caller's previous list in place. The caller must
// confirm deletion explicitly.
func (s *Service) Delete(ctx context.Context, id string, confirmed bool) ([]mangoapi.Contact, string, error) {
	if strings.TrimSpace(id) == "" {
		return nil, "", pkgerrors.New(pkgerrors.CodeValidation, "contact id is required")
	}
	if !confirmed {
		return nil, "", pkgerrors.New(pkgerrors.CodeValidation, "Deletion requires confirmation")
	}
	if err := s.api.DeleteContact(ctx, id); err != nil {
		return nil, "", err
	}
	contacts, err := s.List(ctx)
	if err != nil {
		return nil, "", err
	}
	return contacts, "Contact deleted successfully", nil
}
