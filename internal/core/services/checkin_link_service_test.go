package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-drift/internal/core/services"
)

func TestCheckinLinkService(t *testing.T) {
	secret := "test-secret-checkin"
	issuer := "kanso-drift-test"

	t.Run("Success: Round trip carries the date", func(t *testing.T) {
		svc := services.NewCheckinLinkService(secret, issuer, 24*time.Hour, testClock(t), nil)

		link, err := svc.GenerateToday()
		require.NoError(t, err)
		assert.NotEmpty(t, link.Token)
		assert.Equal(t, "2026-03-11", link.Date)
		assert.True(t, link.ExpiresAt.After(time.Now()))

		date, err := svc.Validate(link.Token)
		require.NoError(t, err)
		assert.Equal(t, "2026-03-11", date)
	})

	t.Run("Fail: Expired token", func(t *testing.T) {
		issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		now := issued
		svc := services.NewCheckinLinkService(secret, issuer, time.Hour, testClock(t), func() time.Time { return now })

		token, err := svc.Generate("2026-03-01")
		require.NoError(t, err)

		now = issued.Add(2 * time.Hour)
		_, err = svc.Validate(token)
		assert.ErrorIs(t, err, services.ErrInvalidCheckinToken)
	})

	t.Run("Fail: Wrong secret", func(t *testing.T) {
		a := services.NewCheckinLinkService(secret, issuer, time.Hour, testClock(t), nil)
		b := services.NewCheckinLinkService("other-secret", issuer, time.Hour, testClock(t), nil)

		token, err := a.Generate("2026-03-11")
		require.NoError(t, err)

		_, err = b.Validate(token)
		assert.ErrorIs(t, err, services.ErrInvalidCheckinToken)
	})

	t.Run("Fail: Wrong issuer", func(t *testing.T) {
		a := services.NewCheckinLinkService(secret, issuer, time.Hour, testClock(t), nil)
		b := services.NewCheckinLinkService(secret, "someone-else", time.Hour, testClock(t), nil)

		token, _ := a.Generate("2026-03-11")
		_, err := b.Validate(token)
		assert.ErrorIs(t, err, services.ErrInvalidCheckinToken)
	})

	t.Run("Fail: Garbage token", func(t *testing.T) {
		svc := services.NewCheckinLinkService(secret, issuer, time.Hour, testClock(t), nil)

		for _, tok := range []string{"", "abc", "a.b.c"} {
			_, err := svc.Validate(tok)
			assert.ErrorIs(t, err, services.ErrInvalidCheckinToken, "token %q", tok)
		}
	})

	t.Run("Fail: Invalid date is not signed", func(t *testing.T) {
		svc := services.NewCheckinLinkService(secret, issuer, time.Hour, testClock(t), nil)
		_, err := svc.Generate("11/03/2026")
		assert.Error(t, err)
	})
}
