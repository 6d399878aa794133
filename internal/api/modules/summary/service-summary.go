package summary_module

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/anshulsood/notes-summarizer/internal/mailer"
	summary_store "github.com/anshulsood/notes-summarizer/internal/stores/summary"
	"github.com/anshulsood/notes-summarizer/internal/summarizer"
	"github.com/google/uuid"
)

const (
	// Fixed subject line for shared summaries
	shareSubject = "Meeting Summary"

	// Timeout applied around provider and mail calls
	externalCallTimeout = 30 * time.Second
)

// ErrValidation is returned when a request is rejected before any external call
var ErrValidation = errors.New("invalid request")

// SummaryService orchestrates the summary lifecycle against the store, the
// summarization provider, and the mail transport. All dependencies are
// injected so the service can run against stubs in tests.
type SummaryService struct {
	store     summary_store.Store
	provider  summarizer.Provider
	transport mailer.Transport
	from      string
	timeout   time.Duration
}

// NewService creates a new summary service with the given dependencies
func NewService(store summary_store.Store, provider summarizer.Provider, transport mailer.Transport, from string) *SummaryService {
	return &SummaryService{
		store:     store,
		provider:  provider,
		transport: transport,
		from:      from,
		timeout:   externalCallTimeout,
	}
}

// Generate asks the provider for a summary of the transcript and persists the
// result. Nothing is persisted when the provider call fails.
func (s *SummaryService) Generate(ctx context.Context, transcript, prompt string) (*summary_store.SummaryModel, error) {
	if transcript == "" {
		return nil, fmt.Errorf("%w: transcript is required", ErrValidation)
	}
	if prompt == "" {
		return nil, fmt.Errorf("%w: prompt is required", ErrValidation)
	}

	// The instruction embeds the user's prompt verbatim
	instruction := fmt.Sprintf("You are a helpful assistant that summarizes meeting notes based on the following instruction: %s", prompt)

	cctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.provider.Complete(cctx, instruction, transcript)
	if err != nil {
		return nil, fmt.Errorf("provider call failed: %w", err)
	}

	model, err := s.store.Create(ctx, transcript, prompt, text)
	if err != nil {
		return nil, fmt.Errorf("failed to persist summary: %w", err)
	}

	return model, nil
}

// Edit overwrites only the summary text of an existing record
// Empty summary text is accepted
func (s *SummaryService) Edit(ctx context.Context, id uuid.UUID, summaryText string) (*summary_store.SummaryModel, error) {
	model, err := s.store.UpdateSummary(ctx, id, summaryText)
	if err != nil {
		return nil, err
	}

	return model, nil
}

// Share emails the record's current summary text to the given recipients in a
// single delivery attempt. The store is never modified.
func (s *SummaryService) Share(ctx context.Context, id uuid.UUID, recipients []string) error {
	if len(recipients) == 0 {
		return fmt.Errorf("%w: recipients are required", ErrValidation)
	}

	model, err := s.store.FindByID(ctx, id)
	if err != nil {
		return err
	}

	msg := &mailer.Message{
		From:    s.from,
		To:      recipients,
		Subject: shareSubject,
		Text:    model.Summary,
	}

	cctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.transport.Send(cctx, msg); err != nil {
		return fmt.Errorf("mail send failed: %w", err)
	}

	return nil
}

// List returns every persisted summary, newest first
func (s *SummaryService) List(ctx context.Context) ([]*summary_store.SummaryModel, error) {
	return s.store.FindAll(ctx)
}

// Remove permanently deletes the record matching id
func (s *SummaryService) Remove(ctx context.Context, id uuid.UUID) error {
	return s.store.DeleteByID(ctx, id)
}
