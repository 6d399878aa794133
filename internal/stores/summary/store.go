package summary

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// ErrNotFound is returned when no summary with the requested ID exists
var ErrNotFound = errors.New("summary not found")

// Store interface defines methods for summary persistence
type Store interface {
	Create(ctx context.Context, transcript, prompt, summaryText string) (*SummaryModel, error)
	FindByID(ctx context.Context, id uuid.UUID) (*SummaryModel, error)
	FindAll(ctx context.Context) ([]*SummaryModel, error)
	UpdateSummary(ctx context.Context, id uuid.UUID, summaryText string) (*SummaryModel, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

// MySqlStore handles summary persistence using GORM
type MySqlStore struct {
	db *gorm.DB
}

// NewMySqlStore creates a new summary store with GORM connection
func NewMySqlStore(databaseURL string) (*MySqlStore, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &MySqlStore{db: db}

	// Auto-migrate tables
	if err := db.AutoMigrate(&SummaryModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate tables: %w", err)
	}

	return store, nil
}

// Create persists a new summary record and assigns its ID
func (s *MySqlStore) Create(ctx context.Context, transcript, prompt, summaryText string) (*SummaryModel, error) {
	model := &SummaryModel{
		ID:         uuid.New(),
		Transcript: transcript,
		Prompt:     prompt,
		Summary:    summaryText,
	}

	result := s.db.WithContext(ctx).Create(model)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to create summary: %w", result.Error)
	}

	return model, nil
}

// FindByID retrieves a summary by ID
func (s *MySqlStore) FindByID(ctx context.Context, id uuid.UUID) (*SummaryModel, error) {
	var model SummaryModel
	result := s.db.WithContext(ctx).First(&model, "id = ?", id)

	if result.Error != nil {
		// Handle not found error
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		// Handle generic errors
		return nil, fmt.Errorf("failed to get summary: %w", result.Error)
	}

	return &model, nil
}

// FindAll retrieves every summary ordered by creation time, newest first
func (s *MySqlStore) FindAll(ctx context.Context) ([]*SummaryModel, error) {
	var models []*SummaryModel
	result := s.db.WithContext(ctx).Order("created_at DESC").Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list summaries: %w", result.Error)
	}

	return models, nil
}

// UpdateSummary overwrites only the summary text of an existing record
func (s *MySqlStore) UpdateSummary(ctx context.Context, id uuid.UUID, summaryText string) (*SummaryModel, error) {
	model, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Column update keeps transcript, prompt and created_at untouched
	result := s.db.WithContext(ctx).Model(model).Update("summary", summaryText)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update summary: %w", result.Error)
	}

	model.Summary = summaryText
	return model, nil
}

// DeleteByID permanently removes a summary record
func (s *MySqlStore) DeleteByID(ctx context.Context, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Delete(&SummaryModel{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete summary: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// Close closes the database connection
func (s *MySqlStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB from gorm.DB: %w", err)
	}
	return sqlDB.Close()
}
