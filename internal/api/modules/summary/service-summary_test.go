package summary_module

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/anshulsood/notes-summarizer/internal/mailer"
	summary_store "github.com/anshulsood/notes-summarizer/internal/stores/summary"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubProvider records the last completion call and returns a canned result
type stubProvider struct {
	result string
	err    error

	calls          int
	gotInstruction string
	gotInput       string
}

func (p *stubProvider) Complete(ctx context.Context, instruction, input string) (string, error) {
	p.calls++
	p.gotInstruction = instruction
	p.gotInput = input
	return p.result, p.err
}

// stubTransport records sent messages
type stubTransport struct {
	err  error
	sent []*mailer.Message
}

func (t *stubTransport) Send(ctx context.Context, msg *mailer.Message) error {
	if t.err != nil {
		return t.err
	}
	t.sent = append(t.sent, msg)
	return nil
}

func newTestService() (*SummaryService, *summary_store.InMemoryStore, *stubProvider, *stubTransport) {
	store := summary_store.NewInMemoryStore()
	provider := &stubProvider{result: "generated summary"}
	transport := &stubTransport{}
	return NewService(store, provider, transport, "bot@example.com"), store, provider, transport
}

func TestGenerate(t *testing.T) {
	assert := assert.New(t)
	service, store, provider, _ := newTestService()
	ctx := context.Background()

	model, err := service.Generate(ctx, "Alice and Bob discussed Q3 budget.", "Summarize in one sentence.")
	require.NoError(t, err)
	require.NotNil(t, model)

	assert.NotEqual(uuid.Nil, model.ID)
	assert.Equal("generated summary", model.Summary)

	// The provider receives the prompt embedded verbatim in the instruction
	// and the raw transcript as input
	assert.Equal(1, provider.calls)
	assert.True(strings.Contains(provider.gotInstruction, "Summarize in one sentence."))
	assert.Equal("Alice and Bob discussed Q3 budget.", provider.gotInput)

	// The record is retrievable with the same values
	stored, err := store.FindByID(ctx, model.ID)
	require.NoError(t, err)
	assert.Equal("Alice and Bob discussed Q3 budget.", stored.Transcript)
	assert.Equal("Summarize in one sentence.", stored.Prompt)
	assert.Equal("generated summary", stored.Summary)
}

func TestGenerateValidation(t *testing.T) {
	service, store, provider, _ := newTestService()
	ctx := context.Background()

	t.Run("empty transcript", func(t *testing.T) {
		_, err := service.Generate(ctx, "", "prompt")
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("empty prompt", func(t *testing.T) {
		_, err := service.Generate(ctx, "transcript", "")
		assert.ErrorIs(t, err, ErrValidation)
	})

	// Rejected before the provider is called, nothing persisted
	assert.Equal(t, 0, provider.calls)
	models, err := store.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, models)
}

func TestGenerateProviderFailure(t *testing.T) {
	service, store, provider, _ := newTestService()
	provider.err = errors.New("provider unreachable")
	ctx := context.Background()

	_, err := service.Generate(ctx, "transcript", "prompt")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrValidation)

	// No partial record on provider failure
	models, err := store.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, models)
}

func TestEdit(t *testing.T) {
	assert := assert.New(t)
	service, _, _, _ := newTestService()
	ctx := context.Background()

	model, err := service.Generate(ctx, "transcript", "prompt")
	require.NoError(t, err)

	edited, err := service.Edit(ctx, model.ID, "Q3 budget reviewed.")
	require.NoError(t, err)
	assert.Equal("Q3 budget reviewed.", edited.Summary)

	// Editing is idempotent
	edited, err = service.Edit(ctx, model.ID, "Q3 budget reviewed.")
	require.NoError(t, err)
	assert.Equal("Q3 budget reviewed.", edited.Summary)

	// Only the summary field changes
	assert.Equal(model.Transcript, edited.Transcript)
	assert.Equal(model.Prompt, edited.Prompt)
	assert.Equal(model.CreatedAt, edited.CreatedAt)

	// Empty text is accepted
	edited, err = service.Edit(ctx, model.ID, "")
	require.NoError(t, err)
	assert.Empty(edited.Summary)
}

func TestEditMissing(t *testing.T) {
	service, _, _, _ := newTestService()

	_, err := service.Edit(context.Background(), uuid.New(), "text")
	assert.ErrorIs(t, err, summary_store.ErrNotFound)
}

func TestShare(t *testing.T) {
	assert := assert.New(t)
	service, _, _, transport := newTestService()
	ctx := context.Background()

	model, err := service.Generate(ctx, "transcript", "prompt")
	require.NoError(t, err)

	_, err = service.Edit(ctx, model.ID, "Q3 budget reviewed.")
	require.NoError(t, err)

	err = service.Share(ctx, model.ID, []string{"a@x.com", "b@x.com"})
	require.NoError(t, err)

	// Exactly one transport call carrying the current summary text
	require.Len(t, transport.sent, 1)
	msg := transport.sent[0]
	assert.Equal("bot@example.com", msg.From)
	assert.Equal("a@x.com,b@x.com", strings.Join(msg.To, ","))
	assert.Equal("Meeting Summary", msg.Subject)
	assert.Equal("Q3 budget reviewed.", msg.Text)
}

func TestShareValidation(t *testing.T) {
	service, _, _, transport := newTestService()
	ctx := context.Background()

	model, err := service.Generate(ctx, "transcript", "prompt")
	require.NoError(t, err)

	// Empty recipients rejected before any transport call
	err = service.Share(ctx, model.ID, nil)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, transport.sent)
}

func TestShareMissing(t *testing.T) {
	service, _, _, transport := newTestService()

	err := service.Share(context.Background(), uuid.New(), []string{"a@x.com"})
	assert.ErrorIs(t, err, summary_store.ErrNotFound)
	assert.Empty(t, transport.sent)
}

func TestShareTransportFailure(t *testing.T) {
	service, _, _, transport := newTestService()
	transport.err = errors.New("smtp down")
	ctx := context.Background()

	model, err := service.Generate(ctx, "transcript", "prompt")
	require.NoError(t, err)

	err = service.Share(ctx, model.ID, []string{"a@x.com"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrValidation)
	assert.NotErrorIs(t, err, summary_store.ErrNotFound)
}

func TestListOrdering(t *testing.T) {
	service, _, _, _ := newTestService()
	ctx := context.Background()

	for range 3 {
		_, err := service.Generate(ctx, "transcript", "prompt")
		require.NoError(t, err)
		time.Sleep(time.Millisecond)
	}

	models, err := service.List(ctx)
	require.NoError(t, err)
	require.Len(t, models, 3)

	// Strictly non-increasing creation times
	for i := 1; i < len(models); i++ {
		assert.False(t, models[i].CreatedAt.After(models[i-1].CreatedAt))
	}
}

func TestRemove(t *testing.T) {
	service, store, _, _ := newTestService()
	ctx := context.Background()

	model, err := service.Generate(ctx, "transcript", "prompt")
	require.NoError(t, err)

	require.NoError(t, service.Remove(ctx, model.ID))

	// Every later operation on the id reports absence
	assert.ErrorIs(t, service.Remove(ctx, model.ID), summary_store.ErrNotFound)
	_, err = service.Edit(ctx, model.ID, "text")
	assert.ErrorIs(t, err, summary_store.ErrNotFound)
	assert.ErrorIs(t, service.Share(ctx, model.ID, []string{"a@x.com"}), summary_store.ErrNotFound)
	_, err = store.FindByID(ctx, model.ID)
	assert.ErrorIs(t, err, summary_store.ErrNotFound)
}

// Full lifecycle: generate, edit, share, delete
func TestSummaryLifecycle(t *testing.T) {
	assert := assert.New(t)
	service, _, provider, transport := newTestService()
	provider.result = "Team discussed Q3 budget."
	ctx := context.Background()

	model, err := service.Generate(ctx, "Alice and Bob discussed Q3 budget.", "Summarize in one sentence.")
	require.NoError(t, err)
	assert.Equal("Team discussed Q3 budget.", model.Summary)

	edited, err := service.Edit(ctx, model.ID, "Q3 budget reviewed.")
	require.NoError(t, err)
	assert.Equal("Q3 budget reviewed.", edited.Summary)

	require.NoError(t, service.Share(ctx, model.ID, []string{"a@x.com", "b@x.com"}))
	require.Len(t, transport.sent, 1)
	assert.Equal("Q3 budget reviewed.", transport.sent[0].Text)

	require.NoError(t, service.Remove(ctx, model.ID))

	models, err := service.List(ctx)
	require.NoError(t, err)
	for _, m := range models {
		assert.NotEqual(model.ID, m.ID)
	}
}
