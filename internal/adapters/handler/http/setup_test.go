package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	adapterHTTP "github.com/comitanigiacomo/kanso-drift/internal/adapters/handler/http"
	"github.com/comitanigiacomo/kanso-drift/internal/adapters/repository"
	"github.com/comitanigiacomo/kanso-drift/internal/core/domain"
	"github.com/comitanigiacomo/kanso-drift/internal/core/services"
)

// Thursday 2026-03-12 05:30 UTC is Wednesday 2026-03-11 in Honolulu; the
// week started Sunday 2026-03-08.
var testNow = time.Date(2026, 3, 12, 5, 30, 0, 0, time.UTC)

const testSecret = "handler-test-secret"

type testServer struct {
	router   *gin.Engine
	readings domain.ReadingRepository
	links    *services.CheckinLinkService
}

func newTestServer(t *testing.T, readings domain.ReadingRepository, passwordHash string) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	loc, err := time.LoadLocation("Pacific/Honolulu")
	require.NoError(t, err)
	clock := domain.NewZoneClock(loc, time.Sunday, func() time.Time { return testNow })

	if readings == nil {
		readings = repository.NewInMemoryReadingRepository()
	}
	reviews := repository.NewInMemoryReviewRepository()

	links := services.NewCheckinLinkService(testSecret, "kanso-drift-test", time.Hour, clock, nil)
	checkins := services.NewCheckinService(readings, clock, domain.SevenPointScorer{}, nil, nil)

	router := adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		CheckinHandler:        adapterHTTP.NewCheckinHandler(checkins, links, nil),
		InsightsHandler:       adapterHTTP.NewInsightsHandler(services.NewInsightsService(readings, clock), nil),
		ReviewHandler:         adapterHTTP.NewReviewHandler(services.NewReviewService(readings, reviews, clock), nil),
		DashboardPasswordHash: passwordHash,
		StartTime:             testNow,
	})

	return &testServer{router: router, readings: readings, links: links}
}

func (s *testServer) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req, _ := http.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) seed(t *testing.T, date string, sleep float64, flags domain.HabitFlags) {
	t.Helper()
	r, err := domain.NewDailyHabitReading(date, sleep, flags, "", domain.SevenPointScorer{})
	require.NoError(t, err)
	require.NoError(t, s.readings.Upsert(context.Background(), r))
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

var allFlags = domain.HabitFlags{
	BedOnTime: true, Workout: true, EatWindows: true,
	Block1: true, Block2: true, Anchor: true,
}

// failingRepo makes every read and write fail.
type failingRepo struct{}

var errStoreDown = errors.New("store down")

func (failingRepo) Upsert(context.Context, *domain.DailyHabitReading) error { return errStoreDown }
func (failingRepo) GetByDate(context.Context, string) (*domain.DailyHabitReading, error) {
	return nil, errStoreDown
}
func (failingRepo) ListRecent(context.Context, int) (domain.ReadingWindow, error) {
	return nil, errStoreDown
}
func (failingRepo) ListAll(context.Context) (domain.ReadingWindow, error) { return nil, errStoreDown }
