package health

import (
	"net/http"

	"github.com/anshulsood/notes-summarizer/pkg/sdk"
	"github.com/gin-gonic/gin"
)

// Return status of the API
func getStatus(c *gin.Context) {
	c.JSON(http.StatusOK, sdk.LivenessResponse{
		Success: true,
		Message: "OK",
	})
}
