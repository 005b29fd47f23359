package http_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-drift/internal/core/domain"
)

func TestReviewHandler(t *testing.T) {
	t.Run("Generate with no readings", func(t *testing.T) {
		srv := newTestServer(t, nil, "")

		w := srv.do("POST", "/api/v1/reviews/weekly", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"review":null`)
	})

	t.Run("Generate then list", func(t *testing.T) {
		srv := newTestServer(t, nil, "")
		seedTiredWeek(t, srv)

		w := srv.do("POST", "/api/v1/reviews/weekly", nil)
		require.Equal(t, http.StatusCreated, w.Code)

		stats := decode[domain.WeeklyStats](t, w)
		assert.Equal(t, "2026-03-08", stats.WeekStart)
		assert.Equal(t, 5.0, stats.AvgScore)
		assert.Equal(t, "2026-03-11", stats.BestDay)
		assert.Equal(t, domain.DriftSleep, stats.BiggestDriftArea)

		w = srv.do("GET", "/api/v1/reviews", nil)
		require.Equal(t, http.StatusOK, w.Code)

		reviews := decode[[]domain.WeeklyStats](t, w)
		require.Len(t, reviews, 1)
		assert.Equal(t, stats, reviews[0])
	})

	t.Run("Fail: 400 on bad limit", func(t *testing.T) {
		srv := newTestServer(t, nil, "")

		for _, limit := range []string{"0", "53", "abc"} {
			w := srv.do("GET", "/api/v1/reviews?limit="+limit, nil)
			assert.Equal(t, http.StatusBadRequest, w.Code, limit)
		}
	})
}
