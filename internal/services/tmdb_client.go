package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"theatre-backend/internal/apperrors"
	"theatre-backend/internal/config"
	"theatre-backend/internal/models"
	"theatre-backend/internal/observability"

	"github.com/sirupsen/logrus"
)

// TMDBClient is the catalog client. Calls are single-shot: no retry, no
// backoff. A non-success answer becomes an UpstreamError carrying the remote
// status code.
type TMDBClient interface {
	FetchGenreMap(ctx context.Context) (map[int]string, error)
	FetchDiscoverPage(ctx context.Context, page int) ([]models.TMDBMovieResult, error)
}

type tmdbClient struct {
	cfg        config.TMDBConfig
	logger     *logrus.Logger
	httpClient *http.Client
}

func NewTMDBClient(cfg config.TMDBConfig, logger *logrus.Logger) TMDBClient {
	return &tmdbClient{
		cfg:    cfg,
		logger: logger,
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
	}
}

func (c *tmdbClient) FetchGenreMap(ctx context.Context) (map[int]string, error) {
	url := fmt.Sprintf("%s/genre/movie/list?api_key=%s", c.cfg.BaseURL, c.cfg.APIKey)

	var payload models.TMDBGenreListResponse
	if err := c.getJSON(ctx, url, "/genre/movie/list", &payload); err != nil {
		return nil, err
	}

	genreMap := make(map[int]string, len(payload.Genres))
	for _, g := range payload.Genres {
		genreMap[g.ID] = g.Name
	}
	return genreMap, nil
}

func (c *tmdbClient) FetchDiscoverPage(ctx context.Context, page int) ([]models.TMDBMovieResult, error) {
	url := fmt.Sprintf("%s/discover/movie?api_key=%s&page=%d", c.cfg.BaseURL, c.cfg.APIKey, page)

	var payload models.TMDBDiscoverResponse
	if err := c.getJSON(ctx, url, "/discover/movie", &payload); err != nil {
		return nil, err
	}
	return payload.Results, nil
}

func (c *tmdbClient) getJSON(ctx context.Context, url, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		observability.ObserveExternal("tmdb", endpoint, 0, time.Since(start))
		return fmt.Errorf("failed to fetch from TMDB: %w", err)
	}
	defer resp.Body.Close()

	observability.ObserveExternal("tmdb", endpoint, resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.WithFields(logrus.Fields{
			"endpoint": endpoint,
			"status":   resp.StatusCode,
		}).Warn("TMDB request failed")
		return apperrors.Upstream(resp.StatusCode, "TMDB API returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode TMDB response: %w", err)
	}
	return nil
}
