package service

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/folio/folio-go/internal/model"
)

// RecentMessageLimit caps the operator inbox listing.
const RecentMessageLimit = 100

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Notifier is told about every stored contact message.
type Notifier interface {
	MessageReceived(ctx context.Context, msg model.Message) error
}

// LogNotifier records new messages in the log instead of delivering them.
type LogNotifier struct {
	Logger *slog.Logger
}

func (n LogNotifier) MessageReceived(ctx context.Context, msg model.Message) error {
	logger := n.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.InfoContext(ctx, "contact message received",
		"id", msg.ID, "from", msg.Email, "subject", msg.Subject)
	return nil
}

// ContactService accepts anonymous contact-form submissions.
type ContactService struct {
	messages MessageStore
	notifier Notifier
	now      func() time.Time
}

// NewContactService creates a new ContactService. A nil notifier falls back
// to LogNotifier.
func NewContactService(messages MessageStore, notifier Notifier) *ContactService {
	if notifier == nil {
		notifier = LogNotifier{}
	}
	return &ContactService{messages: messages, notifier: notifier, now: time.Now}
}

// Submit validates and stores a message, returning its id. Nothing is stored
// when validation fails.
func (s *ContactService) Submit(ctx context.Context, req model.ContactRequest) (string, error) {
	msg := model.Message{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Subject: strings.TrimSpace(req.Subject),
		Message: strings.TrimSpace(req.Message),
	}
	if msg.Name == "" || msg.Email == "" || msg.Subject == "" || msg.Message == "" {
		return "", ErrMissingFields
	}
	if !emailPattern.MatchString(msg.Email) {
		return "", ErrInvalidEmail
	}

	msg.ID = uuid.NewString()
	msg.CreatedAt = s.now().UTC()

	if err := s.messages.Create(ctx, &msg); err != nil {
		return "", storageErr("create message", err)
	}

	if err := s.notifier.MessageReceived(ctx, msg); err != nil {
		slog.Warn("contact notification failed", "id", msg.ID, "error", err)
	}

	return msg.ID, nil
}

// ListRecent returns the newest messages, at most RecentMessageLimit.
func (s *ContactService) ListRecent(ctx context.Context) ([]model.Message, error) {
	messages, err := s.messages.ListRecent(ctx, RecentMessageLimit)
	if err != nil {
		return nil, storageErr("list messages", err)
	}
	return messages, nil
}
