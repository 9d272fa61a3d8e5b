package services_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"theatre-backend/internal/apperrors"
	"theatre-backend/internal/config"
	"theatre-backend/internal/models"
	"theatre-backend/internal/services"
)

// ---- fakes ----

type fakeMovieRepo struct {
	movies     map[string]models.Movie
	syncLogs   []models.SyncLog
	batchCalls int
}

func newFakeMovieRepo() *fakeMovieRepo {
	return &fakeMovieRepo{movies: map[string]models.Movie{}}
}

func (f *fakeMovieRepo) Create(ctx context.Context, movie *models.Movie) error {
	if _, ok := f.movies[movie.ID]; ok {
		return errors.New("duplicate key")
	}
	f.movies[movie.ID] = *movie
	return nil
}

func (f *fakeMovieRepo) CreateBatch(ctx context.Context, movies []models.Movie) error {
	if len(movies) == 0 {
		return nil
	}
	f.batchCalls++
	// all-or-nothing: validate before inserting anything
	for _, m := range movies {
		if _, ok := f.movies[m.ID]; ok {
			return errors.New("duplicate key")
		}
	}
	for _, m := range movies {
		f.movies[m.ID] = m
	}
	return nil
}

func (f *fakeMovieRepo) Update(ctx context.Context, movie *models.Movie) error {
	f.movies[movie.ID] = *movie
	return nil
}

func (f *fakeMovieRepo) Delete(ctx context.Context, id string) error {
	delete(f.movies, id)
	return nil
}

func (f *fakeMovieRepo) FindByID(ctx context.Context, id string) (*models.Movie, error) {
	m, ok := f.movies[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (f *fakeMovieRepo) FindAll(ctx context.Context) ([]models.Movie, error) {
	var out []models.Movie
	for _, m := range f.movies {
		out = append(out, m)
	}
	return out, nil
}

func (f *fakeMovieRepo) FindByTheatre(ctx context.Context, theatreID string) ([]models.Movie, error) {
	var out []models.Movie
	for _, m := range f.movies {
		if m.TheatreID != nil && *m.TheatreID == theatreID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMovieRepo) FindByName(ctx context.Context, name string) ([]models.Movie, error) {
	var out []models.Movie
	for _, m := range f.movies {
		if m.Name == name {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMovieRepo) CreateSyncLog(ctx context.Context, log *models.SyncLog) error {
	f.syncLogs = append(f.syncLogs, *log)
	return nil
}

func (f *fakeMovieRepo) GetLastSyncLog(ctx context.Context) (*models.SyncLog, error) {
	if len(f.syncLogs) == 0 {
		return nil, nil
	}
	last := f.syncLogs[len(f.syncLogs)-1]
	return &last, nil
}

type fakeTheatreRepo struct {
	ids map[string]bool
}

func (f *fakeTheatreRepo) FindByID(ctx context.Context, id string) (*models.Theatre, error) {
	if f.ids[id] {
		return &models.Theatre{ID: id, Name: "Theatre " + id}, nil
	}
	return nil, nil
}

type fakeTMDB struct {
	genres     map[int]string
	genreErr   error
	results    []models.TMDBMovieResult
	resultsErr error
}

func (f *fakeTMDB) FetchGenreMap(ctx context.Context) (map[int]string, error) {
	return f.genres, f.genreErr
}

func (f *fakeTMDB) FetchDiscoverPage(ctx context.Context, page int) ([]models.TMDBMovieResult, error) {
	return f.results, f.resultsErr
}

func newMovieService(repo *fakeMovieRepo, theatres *fakeTheatreRepo, tmdb *fakeTMDB) services.MovieService {
	if theatres == nil {
		theatres = &fakeTheatreRepo{}
	}
	if tmdb == nil {
		tmdb = &fakeTMDB{}
	}
	cfg := config.TMDBConfig{ImageBaseURL: "https://img/w500"}
	return services.NewMovieService(repo, theatres, tmdb, cfg, testLogger(), nil)
}

func strptr(s string) *string { return &s }

// ---- ingestion ----

func TestSyncPage_InsertsNewMovies(t *testing.T) {
	repo := newFakeMovieRepo()
	tmdb := &fakeTMDB{
		genres: map[int]string{1: "Action"},
		results: []models.TMDBMovieResult{
			{ID: 5, Title: "A", PosterPath: "/a.jpg", GenreIDs: []int{1}},
		},
	}
	svc := newMovieService(repo, nil, tmdb)

	syncLog, err := svc.SyncPage(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if syncLog.Status != "success" || syncLog.MoviesAdded != 1 || syncLog.MoviesSkipped != 0 {
		t.Fatalf("unexpected sync log: %+v", syncLog)
	}

	got, ok := repo.movies["5"]
	if !ok {
		t.Fatal("expected row with id 5")
	}
	if got.Name != "A" || got.Img != "https://img/w500/a.jpg" || got.Genre != "Action" {
		t.Fatalf("unexpected row: %+v", got)
	}
	if got.TheatreID != nil {
		t.Fatalf("expected unset theatre_id, got %v", *got.TheatreID)
	}
}

func TestSyncPage_Idempotent(t *testing.T) {
	repo := newFakeMovieRepo()
	tmdb := &fakeTMDB{
		genres: map[int]string{1: "Action"},
		results: []models.TMDBMovieResult{
			{ID: 5, Title: "A", PosterPath: "/a.jpg", GenreIDs: []int{1}},
			{ID: 6, Title: "B", PosterPath: "/b.jpg", GenreIDs: []int{1}},
		},
	}
	svc := newMovieService(repo, nil, tmdb)

	if _, err := svc.SyncPage(context.Background(), 1); err != nil {
		t.Fatalf("first sync: %v", err)
	}
	if len(repo.movies) != 2 {
		t.Fatalf("expected 2 rows after first run, got %d", len(repo.movies))
	}

	syncLog, err := svc.SyncPage(context.Background(), 1)
	if err != nil {
		t.Fatalf("second sync: %v", err)
	}
	if len(repo.movies) != 2 {
		t.Fatalf("expected 2 rows after second run, got %d", len(repo.movies))
	}
	if syncLog.MoviesAdded != 0 || syncLog.MoviesSkipped != 2 {
		t.Fatalf("unexpected second-run log: %+v", syncLog)
	}
	if repo.batchCalls != 1 {
		t.Fatalf("expected a single batch insert, got %d", repo.batchCalls)
	}
}

func TestSyncPage_NeverUpdatesExistingRows(t *testing.T) {
	repo := newFakeMovieRepo()
	repo.movies["5"] = models.Movie{ID: "5", Name: "Old Name", Genre: "Old Genre"}
	tmdb := &fakeTMDB{
		genres: map[int]string{1: "Action"},
		results: []models.TMDBMovieResult{
			{ID: 5, Title: "New Name", PosterPath: "/new.jpg", GenreIDs: []int{1}},
		},
	}
	svc := newMovieService(repo, nil, tmdb)

	if _, err := svc.SyncPage(context.Background(), 1); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got := repo.movies["5"]; got.Name != "Old Name" || got.Genre != "Old Genre" {
		t.Fatalf("existing row was modified: %+v", got)
	}
}

func TestSyncPage_DropsUnmappedGenreIDs(t *testing.T) {
	repo := newFakeMovieRepo()
	tmdb := &fakeTMDB{
		genres: map[int]string{1: "Action", 2: "Drama"},
		results: []models.TMDBMovieResult{
			{ID: 7, Title: "C", PosterPath: "/c.jpg", GenreIDs: []int{1, 99, 2}},
		},
	}
	svc := newMovieService(repo, nil, tmdb)

	if _, err := svc.SyncPage(context.Background(), 1); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got := repo.movies["7"]; got.Genre != "Action, Drama" {
		t.Fatalf("expected unmapped id dropped, got genre %q", got.Genre)
	}
}

func TestSyncPage_GenreFetchFailureAborts(t *testing.T) {
	repo := newFakeMovieRepo()
	tmdb := &fakeTMDB{
		genreErr: apperrors.Upstream(http.StatusBadGateway, "TMDB API returned status 502"),
		results: []models.TMDBMovieResult{
			{ID: 5, Title: "A"},
		},
	}
	svc := newMovieService(repo, nil, tmdb)

	_, err := svc.SyncPage(context.Background(), 1)
	var upstream *apperrors.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if len(repo.movies) != 0 {
		t.Fatalf("expected no rows on upstream failure, got %d", len(repo.movies))
	}
	if len(repo.syncLogs) != 1 || repo.syncLogs[0].Status != "failed" {
		t.Fatalf("expected a failed sync log, got %+v", repo.syncLogs)
	}
}

func TestSyncPage_RecordsSuccessLog(t *testing.T) {
	repo := newFakeMovieRepo()
	tmdb := &fakeTMDB{
		genres:  map[int]string{},
		results: []models.TMDBMovieResult{{ID: 9, Title: "D", PosterPath: "/d.jpg"}},
	}
	svc := newMovieService(repo, nil, tmdb)

	if _, err := svc.SyncPage(context.Background(), 0); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	last, err := svc.GetLastSyncLog(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if last == nil || last.Status != "success" || last.Page != 1 {
		t.Fatalf("unexpected last log: %+v", last)
	}
}

// ---- manual CRUD ----

func TestAddMovie_MissingFieldRejected(t *testing.T) {
	cases := []models.Movie{
		{Name: "A", Img: "i", Genre: "g", TheatreID: strptr("t1")},
		{ID: "1", Img: "i", Genre: "g", TheatreID: strptr("t1")},
		{ID: "1", Name: "A", Genre: "g", TheatreID: strptr("t1")},
		{ID: "1", Name: "A", Img: "i", TheatreID: strptr("t1")},
		{ID: "1", Name: "A", Img: "i", Genre: "g"},
	}

	for i, movie := range cases {
		repo := newFakeMovieRepo()
		svc := newMovieService(repo, &fakeTheatreRepo{ids: map[string]bool{"t1": true}}, nil)

		m := movie
		err := svc.AddMovie(context.Background(), &m)
		var validation *apperrors.ValidationError
		if !errors.As(err, &validation) {
			t.Fatalf("case %d: expected ValidationError, got %v", i, err)
		}
		if len(repo.movies) != 0 {
			t.Fatalf("case %d: store was touched on validation failure", i)
		}
	}
}

func TestAddMovie_UnknownTheatreRejected(t *testing.T) {
	repo := newFakeMovieRepo()
	svc := newMovieService(repo, &fakeTheatreRepo{ids: map[string]bool{}}, nil)

	movie := &models.Movie{ID: "1", Name: "A", Img: "i", Genre: "g", TheatreID: strptr("missing")}
	err := svc.AddMovie(context.Background(), movie)
	var validation *apperrors.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(repo.movies) != 0 {
		t.Fatal("store was touched on unknown theatre")
	}
}

func TestAddMovie_OK(t *testing.T) {
	repo := newFakeMovieRepo()
	svc := newMovieService(repo, &fakeTheatreRepo{ids: map[string]bool{"t1": true}}, nil)

	movie := &models.Movie{ID: "1", Name: "A", Img: "i", Genre: "g", TheatreID: strptr("t1")}
	if err := svc.AddMovie(context.Background(), movie); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got, ok := repo.movies["1"]; !ok || got.Name != "A" {
		t.Fatalf("expected stored row, got %+v", repo.movies)
	}
}

func TestEditMovie_PartialMerge(t *testing.T) {
	repo := newFakeMovieRepo()
	repo.movies["1"] = models.Movie{ID: "1", Name: "A", Img: "old.jpg", Genre: "Drama", TheatreID: strptr("t1")}
	svc := newMovieService(repo, nil, nil)

	err := svc.EditMovie(context.Background(), "1", services.MovieUpdate{Img: strptr("new.jpg")})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	got := repo.movies["1"]
	if got.Img != "new.jpg" {
		t.Fatalf("expected img updated, got %q", got.Img)
	}
	if got.Name != "A" || got.Genre != "Drama" || got.TheatreID == nil || *got.TheatreID != "t1" {
		t.Fatalf("untouched fields changed: %+v", got)
	}
}

func TestEditMovie_NotFound(t *testing.T) {
	svc := newMovieService(newFakeMovieRepo(), nil, nil)

	err := svc.EditMovie(context.Background(), "missing", services.MovieUpdate{Name: strptr("X")})
	var notFound *apperrors.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestRemoveMovie(t *testing.T) {
	repo := newFakeMovieRepo()
	repo.movies["1"] = models.Movie{ID: "1", Name: "A"}
	svc := newMovieService(repo, nil, nil)

	if err := svc.RemoveMovie(context.Background(), "1"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(repo.movies) != 0 {
		t.Fatal("expected row deleted")
	}

	err := svc.RemoveMovie(context.Background(), "1")
	var notFound *apperrors.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError for second delete, got %v", err)
	}
}

func TestGetMoviesByTheatreAndName(t *testing.T) {
	repo := newFakeMovieRepo()
	repo.movies["1"] = models.Movie{ID: "1", Name: "A", TheatreID: strptr("t1")}
	repo.movies["2"] = models.Movie{ID: "2", Name: "A", TheatreID: strptr("t2")}
	repo.movies["3"] = models.Movie{ID: "3", Name: "B", TheatreID: strptr("t1")}
	svc := newMovieService(repo, nil, nil)

	byTheatre, err := svc.GetMoviesByTheatre(context.Background(), "t1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(byTheatre) != 2 {
		t.Fatalf("expected 2 movies in t1, got %d", len(byTheatre))
	}

	byName, err := svc.GetMoviesByName(context.Background(), "A")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(byName) != 2 {
		t.Fatalf("expected 2 movies named A, got %d", len(byName))
	}

	// exact match, not substring
	none, err := svc.GetMoviesByName(context.Background(), "a")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected exact-match semantics, got %d rows", len(none))
	}
}
