package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"go-pracuj-scraper/internal/config"
	"go-pracuj-scraper/internal/scraper"
)

// Runner executes one full scrape: browser session up, discover, extract,
// session down.
type Runner interface {
	Run(term string, headless bool, limit *int) ([]scraper.Record, []string, error)
}

// Notifier reports a finished scrape out of band.
type Notifier interface {
	SendSummary(term string, scraped, failed int)
}

// Server serves HTTP requests for the scraper.
type Server struct {
	cfg    *config.Config
	runner Runner
	notify Notifier
	router *gin.Engine
	log    zerolog.Logger
}

// NewServer creates a new HTTP server and sets up routing. notify may be
// nil when no Telegram reporter is configured.
func NewServer(cfg *config.Config, runner Runner, notify Notifier, log zerolog.Logger) *Server {
	server := &Server{
		cfg:    cfg,
		runner: runner,
		notify: notify,
		log:    log,
	}

	router := gin.Default()
	router.GET("/", server.health)
	router.GET("/scrape", server.scrape)
	server.router = router

	return server
}

// Start runs the HTTP server on the given address.
func (s *Server) Start(addr string) error {
	return s.router.Run(addr)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Pracuj.pl 24h Job Scraper API is running!",
		"status":  "healthy",
	})
}

func errorResponse(err error) gin.H {
	return gin.H{"error": err.Error()}
}
