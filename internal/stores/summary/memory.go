package summary

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemoryStore provides an in-memory implementation of Store for testing
type InMemoryStore struct {
	summaries map[uuid.UUID]*SummaryModel
	mutex     sync.RWMutex
}

// NewInMemoryStore creates a new in-memory summary store
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		summaries: make(map[uuid.UUID]*SummaryModel),
	}
}

// Create persists a new summary record and assigns its ID
func (s *InMemoryStore) Create(ctx context.Context, transcript, prompt, summaryText string) (*SummaryModel, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	model := &SummaryModel{
		ID:         uuid.New(),
		CreatedAt:  time.Now(),
		Transcript: transcript,
		Prompt:     prompt,
		Summary:    summaryText,
	}
	s.summaries[model.ID] = model

	// Return a copy to avoid external mutations
	cp := *model
	return &cp, nil
}

// FindByID retrieves a summary by ID
func (s *InMemoryStore) FindByID(ctx context.Context, id uuid.UUID) (*SummaryModel, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	model, exists := s.summaries[id]
	if !exists {
		return nil, ErrNotFound
	}

	cp := *model
	return &cp, nil
}

// FindAll retrieves every summary ordered by creation time, newest first
func (s *InMemoryStore) FindAll(ctx context.Context) ([]*SummaryModel, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	models := make([]*SummaryModel, 0, len(s.summaries))
	for _, model := range s.summaries {
		cp := *model
		models = append(models, &cp)
	}

	sort.Slice(models, func(i, j int) bool {
		return models[i].CreatedAt.After(models[j].CreatedAt)
	})

	return models, nil
}

// UpdateSummary overwrites only the summary text of an existing record
func (s *InMemoryStore) UpdateSummary(ctx context.Context, id uuid.UUID, summaryText string) (*SummaryModel, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	model, exists := s.summaries[id]
	if !exists {
		return nil, ErrNotFound
	}

	model.Summary = summaryText

	cp := *model
	return &cp, nil
}

// DeleteByID permanently removes a summary record
func (s *InMemoryStore) DeleteByID(ctx context.Context, id uuid.UUID) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.summaries[id]; !exists {
		return ErrNotFound
	}

	delete(s.summaries, id)
	return nil
}
