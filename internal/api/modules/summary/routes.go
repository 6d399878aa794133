package summary_module

import (
	"fmt"

	"github.com/anshulsood/notes-summarizer/internal/mailer"
	summary_store "github.com/anshulsood/notes-summarizer/internal/stores/summary"
	"github.com/anshulsood/notes-summarizer/internal/summarizer"
	"github.com/anshulsood/notes-summarizer/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/go-sql-driver/mysql"
)

var summaryService *SummaryService

// Register routes for the summary module
func RegisterRoutes(g *gin.RouterGroup) {
	// Create base group for summary routes
	group := g.Group("/summary")

	group.POST("/generate", GenerateSummary)              // Generate and persist a new summary
	group.PUT("/edit/:id", EditSummary)                   // Overwrite the summary text of a record
	group.POST("/share/:id", ShareSummary)                // Email a summary to recipients
	group.GET("/summaries", GetSummaries)                 // List every summary, newest first
	group.DELETE("/deleteSummaries/:id", DeleteSummaries) // Permanently remove a summary
}

/** ---- INIT ---- */

// Init wires the summary service with its production dependencies
func Init(cfg *utils.Config) error {
	// Create MySQL config
	dbConfig := mysql.Config{
		User:      cfg.Get("MYSQL_USER"),
		Passwd:    cfg.Get("MYSQL_PASSWORD"),
		Net:       "tcp",
		Addr:      fmt.Sprintf("%s:%s", cfg.Get("MYSQL_HOST"), cfg.GetWithDefault("MYSQL_PORT", "3306")),
		DBName:    cfg.Get("MYSQL_DATABASE"),
		ParseTime: true,
	}

	store, err := summary_store.NewMySqlStore(dbConfig.FormatDSN())
	if err != nil {
		return fmt.Errorf("failed to create summary store: %w", err)
	}

	// Summarization provider; base URL defaults to Groq's OpenAI-compatible API
	apiKey := cfg.Get("LLM_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("LLM_API_KEY not set in environment")
	}

	provider := summarizer.NewOpenAIProvider(
		apiKey,
		cfg.GetWithDefault("LLM_BASE_URL", "https://api.groq.com/openai/v1"),
		cfg.Get("LLM_MODEL"),
	)

	// Mail transport
	transport := mailer.NewSMTPTransport(
		cfg.Get("SMTP_HOST"),
		cfg.GetIntWithDefault("SMTP_PORT", 587),
		cfg.Get("SMTP_USERNAME"),
		cfg.Get("SMTP_PASSWORD"),
	)

	from := cfg.GetWithDefault("MAIL_FROM", cfg.Get("SMTP_USERNAME"))

	summaryService = NewService(store, provider, transport, from)
	return nil
}
