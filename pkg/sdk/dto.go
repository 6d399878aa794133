package sdk

import "time"

// Summary is the wire representation of a persisted meeting summary
type Summary struct {
	ID         string    `json:"id"`
	Transcript string    `json:"transcript"`
	Prompt     string    `json:"prompt"`
	Summary    string    `json:"summary"`
	CreatedAt  time.Time `json:"created_at"`
}

// ErrorResponse is the body returned on any failed request
type ErrorResponse struct {
	Error string `json:"error"`
}

// LivenessResponse is returned by the root path
type LivenessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

/** Requests */

// GenerateSummaryRequest represents the request body for generating a new summary
type GenerateSummaryRequest struct {
	Transcript string `json:"transcript" binding:"required"`
	Prompt     string `json:"prompt" binding:"required"`
}

// EditSummaryRequest represents the request body for editing an existing summary
// An empty summary text is accepted
type EditSummaryRequest struct {
	Summary string `json:"summary"`
}

// ShareSummaryRequest represents the request body for emailing a summary
type ShareSummaryRequest struct {
	Recipients []string `json:"recipients" binding:"required"`
}

/** Responses */

// GenerateSummaryResponse represents the response body for a generated summary
type GenerateSummaryResponse struct {
	ID      string `json:"id"`
	Summary string `json:"summary"`
}

// EditSummaryResponse represents the response body for an edited summary
type EditSummaryResponse struct {
	Summary string `json:"summary"`
}

// MessageResponse represents a plain confirmation message
type MessageResponse struct {
	Message string `json:"message"`
}
