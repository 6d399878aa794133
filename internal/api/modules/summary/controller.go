package summary_module

import (
	"errors"
	"net/http"

	summary_store "github.com/anshulsood/notes-summarizer/internal/stores/summary"
	"github.com/anshulsood/notes-summarizer/pkg/sdk"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GenerateSummary handles POST requests to generate and persist a new summary
func GenerateSummary(c *gin.Context) {
	// Parse request body
	var req sdk.GenerateSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, sdk.ErrorResponse{Error: "transcript and prompt are required"})
		return
	}

	model, err := summaryService.Generate(c.Request.Context(), req.Transcript, req.Prompt)
	if err != nil {
		respondError(c, err, "Error generating summary")
		return
	}

	c.JSON(http.StatusOK, sdk.GenerateSummaryResponse{
		ID:      model.ID.String(),
		Summary: model.Summary,
	})
}

// EditSummary handles PUT requests to overwrite the summary text of a record
func EditSummary(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	// Parse request body; an empty summary text is accepted
	var req sdk.EditSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, sdk.ErrorResponse{Error: "Could not parse request body"})
		return
	}

	model, err := summaryService.Edit(c.Request.Context(), id, req.Summary)
	if err != nil {
		respondError(c, err, "Error editing summary")
		return
	}

	c.JSON(http.StatusOK, sdk.EditSummaryResponse{Summary: model.Summary})
}

// ShareSummary handles POST requests to email a summary to recipients
func ShareSummary(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	// Parse request body
	var req sdk.ShareSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, sdk.ErrorResponse{Error: "recipients are required"})
		return
	}

	if err := summaryService.Share(c.Request.Context(), id, req.Recipients); err != nil {
		respondError(c, err, "Error sending email")
		return
	}

	c.JSON(http.StatusOK, sdk.MessageResponse{Message: "Email sent successfully"})
}

// GetSummaries handles GET requests to list every summary, newest first
func GetSummaries(c *gin.Context) {
	models, err := summaryService.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Error fetching summaries")
		return
	}

	summaries := make([]sdk.Summary, 0, len(models))
	for _, model := range models {
		summaries = append(summaries, toSDKSummary(model))
	}

	c.JSON(http.StatusOK, summaries)
}

// DeleteSummaries handles DELETE requests to permanently remove a summary
func DeleteSummaries(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := summaryService.Remove(c.Request.Context(), id); err != nil {
		respondError(c, err, "Error deleting summary")
		return
	}

	c.JSON(http.StatusOK, sdk.MessageResponse{Message: "Summary deleted"})
}

// parseID reads the :id route parameter. A malformed ID identifies no record,
// so it is reported the same way as a missing one.
func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, sdk.ErrorResponse{Error: "Summary not found"})
		return uuid.Nil, false
	}
	return id, true
}

// respondError maps service errors to status codes. Anything outside the
// validation/not-found taxonomy is a 500 with a generic message.
func respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrValidation):
		c.JSON(http.StatusBadRequest, sdk.ErrorResponse{Error: err.Error()})
	case errors.Is(err, summary_store.ErrNotFound):
		c.JSON(http.StatusNotFound, sdk.ErrorResponse{Error: "Summary not found"})
	default:
		c.JSON(http.StatusInternalServerError, sdk.ErrorResponse{Error: fallback})
	}
}

// Helper method to convert a stored model to its sdk representation
func toSDKSummary(model *summary_store.SummaryModel) sdk.Summary {
	return sdk.Summary{
		ID:         model.ID.String(),
		Transcript: model.Transcript,
		Prompt:     model.Prompt,
		Summary:    model.Summary,
		CreatedAt:  model.CreatedAt,
	}
}
