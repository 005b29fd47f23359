package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/comitanigiacomo/kanso-drift/internal/core/domain"
)

var ErrInvalidCheckinToken = errors.New("invalid or expired check-in token")

type checkinClaims struct {
	Date string `json:"date"`
	jwt.RegisteredClaims
}

// CheckinLinkService signs short-lived links that let the form submit a
// reading for one specific calendar date.
type CheckinLinkService struct {
	secretKey []byte
	issuer    string
	ttl       time.Duration
	clock     domain.Clock
	now       func() time.Time
}

func NewCheckinLinkService(secretKey, issuer string, ttl time.Duration, clock domain.Clock, now func() time.Time) *CheckinLinkService {
	if now == nil {
		now = time.Now
	}
	return &CheckinLinkService{
		secretKey: []byte(secretKey),
		issuer:    issuer,
		ttl:       ttl,
		clock:     clock,
		now:       now,
	}
}

type CheckinLink struct {
	Date      string    `json:"date"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s *CheckinLinkService) GenerateToday() (*CheckinLink, error) {
	date := s.clock.Today()
	token, err := s.Generate(date)
	if err != nil {
		return nil, err
	}
	return &CheckinLink{Date: date, Token: token, ExpiresAt: s.now().Add(s.ttl).UTC()}, nil
}

func (s *CheckinLinkService) Generate(date string) (string, error) {
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return "", fmt.Errorf("checkin link: invalid date %q: %w", date, domain.ErrInvalidReading)
	}

	now := s.now()
	claims := checkinClaims{
		Date: date,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    s.issuer,
			Subject:   "checkin",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("checkin link: failed to sign token: %w", err)
	}
	return signed, nil
}

// Validate returns the calendar date the token was issued for.
func (s *CheckinLinkService) Validate(tokenString string) (string, error) {
	claims := &checkinClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return "", fmt.Errorf("%w: %v", ErrInvalidCheckinToken, err)
	}

	if _, err := time.Parse(domain.DateLayout, claims.Date); err != nil {
		return "", fmt.Errorf("%w: bad date claim", ErrInvalidCheckinToken)
	}
	return claims.Date, nil
}
