package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"theatre-backend/internal/apperrors"
	"theatre-backend/internal/config"
	"theatre-backend/internal/services"

	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func newTestClient(baseURL string) services.TMDBClient {
	return services.NewTMDBClient(config.TMDBConfig{
		APIKey:      "test-key",
		BaseURL:     baseURL,
		HTTPTimeout: 2 * time.Second,
	}, testLogger())
}

func TestFetchGenreMap(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/genre/movie/list" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("api_key"); got != "test-key" {
			t.Errorf("expected api_key query param, got %q", got)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"genres": []map[string]any{
				{"id": 28, "name": "Action"},
				{"id": 18, "name": "Drama"},
			},
		})
	}))
	defer ts.Close()

	genreMap, err := newTestClient(ts.URL).FetchGenreMap(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(genreMap) != 2 || genreMap[28] != "Action" || genreMap[18] != "Drama" {
		t.Fatalf("unexpected genre map: %+v", genreMap)
	}
}

func TestFetchDiscoverPage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/discover/movie" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("page"); got != "3" {
			t.Errorf("expected page=3, got %q", got)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"page": 3,
			"results": []map[string]any{
				{"id": 5, "title": "A", "poster_path": "/a.jpg", "genre_ids": []int{1}},
			},
		})
	}))
	defer ts.Close()

	results, err := newTestClient(ts.URL).FetchDiscoverPage(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(results) != 1 || results[0].ID != 5 || results[0].Title != "A" || results[0].PosterPath != "/a.jpg" {
		t.Fatalf("unexpected results: %+v", results)
	}
}

func TestFetchDiscoverPage_UpstreamStatusPropagates(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	_, err := newTestClient(ts.URL).FetchDiscoverPage(context.Background(), 1)
	if err == nil {
		t.Fatal("expected error for non-200 response")
	}
	var upstream *apperrors.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError, got %T: %v", err, err)
	}
	if upstream.Status != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", upstream.Status)
	}
}

func TestFetchGenreMap_UpstreamStatusPropagates(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	_, err := newTestClient(ts.URL).FetchGenreMap(context.Background())
	var upstream *apperrors.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError, got %T: %v", err, err)
	}
	if upstream.Status != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", upstream.Status)
	}
}
