package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-pracuj-scraper/internal/config"
	"go-pracuj-scraper/internal/scraper"
)

type stubRunner struct {
	gotTerm     string
	gotHeadless bool
	gotLimit    *int

	records []scraper.Record
	urls    []string
	err     error
}

func (r *stubRunner) Run(term string, headless bool, limit *int) ([]scraper.Record, []string, error) {
	r.gotTerm = term
	r.gotHeadless = headless
	r.gotLimit = limit
	return r.records, r.urls, r.err
}

func newTestServer(t *testing.T, runner Runner) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{ResultsDir: t.TempDir()}
	return NewServer(cfg, runner, nil, zerolog.Nop())
}

func TestScrapeDefaults(t *testing.T) {
	runner := &stubRunner{
		records: []scraper.Record{{"URL": "u1", "Job Title": "Mechanik"}},
		urls:    []string{"u1"},
	}
	server := newTestServer(t, runner)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/scrape", nil)
	server.router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Mechanik", runner.gotTerm)
	assert.True(t, runner.gotHeadless)
	assert.Nil(t, runner.gotLimit)

	var body struct {
		FullJobs struct {
			Jobs []map[string]string `json:"jobs"`
		} `json:"full_jobs"`
		URLsOnly struct {
			URLs []string `json:"urls"`
		} `json:"urls_only"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Len(t, body.FullJobs.Jobs, 1)
	assert.Equal(t, "Mechanik", body.FullJobs.Jobs[0]["Job Title"])
	assert.Equal(t, []string{"u1"}, body.URLsOnly.URLs)
}

func TestScrapeExplicitParams(t *testing.T) {
	runner := &stubRunner{records: []scraper.Record{}, urls: []string{}}
	server := newTestServer(t, runner)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/scrape?term=Java&limit=5&headless=false", nil)
	server.router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Java", runner.gotTerm)
	assert.False(t, runner.gotHeadless)
	require.NotNil(t, runner.gotLimit)
	assert.Equal(t, 5, *runner.gotLimit)
}

func TestScrapeInvalidQueryParam(t *testing.T) {
	server := newTestServer(t, &stubRunner{})

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/scrape?limit=abc", nil)
	server.router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestScrapeRunnerFailure(t *testing.T) {
	server := newTestServer(t, &stubRunner{err: errors.New("launching chromium: not found")})

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/scrape", nil)
	server.router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "error")
}

func TestScrapeExcelMode(t *testing.T) {
	runner := &stubRunner{
		records: []scraper.Record{{"URL": "u1", "Job Title": "Mechanik"}},
		urls:    []string{"u1"},
	}
	server := newTestServer(t, runner)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/scrape?excel=true", nil)
	server.router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, xlsxContentType, recorder.Header().Get("Content-Type"))
	assert.Contains(t, recorder.Header().Get("Content-Disposition"), "jobs_Mechanik_")
	assert.NotZero(t, recorder.Body.Len())
}

func TestHealthRoute(t *testing.T) {
	server := newTestServer(t, &stubRunner{})

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	server.router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "healthy")
}
