package api

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"go-pracuj-scraper/internal/export"
	"go-pracuj-scraper/internal/scraper"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type scrapeRequest struct {
	Term     string `form:"term,default=Mechanik"`
	Excel    bool   `form:"excel,default=false"`
	Headless bool   `form:"headless,default=true"`
	Limit    *int   `form:"limit"`
}

type jobsResponse struct {
	Jobs []scraper.Record `json:"jobs"`
}

type urlsResponse struct {
	URLs []string `json:"urls"`
}

type scrapeResponse struct {
	FullJobs jobsResponse `json:"full_jobs"`
	URLsOnly urlsResponse `json:"urls_only"`
}

// scrape handles GET /scrape: run one discover+extract pass and answer with
// JSON, or with an xlsx attachment when excel=true.
func (s *Server) scrape(c *gin.Context) {
	var request scrapeRequest
	if err := c.ShouldBindQuery(&request); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	records, urls, err := s.runner.Run(request.Term, request.Headless, request.Limit)
	if err != nil {
		s.log.Error().Err(err).Msg("❌ Scrape run failed")
		c.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	if s.notify != nil {
		s.notify.SendSummary(request.Term, len(records), countFailed(records))
	}

	if request.Excel {
		filename := export.Filename(request.Term, time.Now())
		path := filepath.Join(s.cfg.ResultsDir, filename)
		if err := export.WriteWorkbook(records, path); err != nil {
			s.log.Error().Err(err).Str("path", path).Msg("❌ Failed to write workbook")
			c.JSON(http.StatusInternalServerError, errorResponse(err))
			return
		}
		s.log.Info().Str("path", path).Msg("📁 Workbook saved")
		c.Header("Content-Type", xlsxContentType)
		c.FileAttachment(path, filename)
		return
	}

	c.JSON(http.StatusOK, scrapeResponse{
		FullJobs: jobsResponse{Jobs: records},
		URLsOnly: urlsResponse{URLs: urls},
	})
}

func countFailed(records []scraper.Record) int {
	failed := 0
	for _, rec := range records {
		if _, ok := rec["Error"]; ok {
			failed++
		}
	}
	return failed
}

// EnsureResultsDir creates the directory workbooks are written to. Called
// once at startup.
func EnsureResultsDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
