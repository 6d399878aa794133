package summary

import (
	"time"

	"github.com/google/uuid"
)

// SummaryModel represents the database model for a persisted meeting summary
type SummaryModel struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;index"`

	Transcript string `json:"transcript" gorm:"column:transcript;type:text;not null"`
	Prompt     string `json:"prompt" gorm:"column:prompt;type:text;not null"`
	Summary    string `json:"summary" gorm:"column:summary;type:text;not null"`
}

// TableName sets the table name for GORM
func (SummaryModel) TableName() string {
	return "summaries"
}
