package storage

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenInvalid = errors.New("download token invalid")
	ErrTokenExpired = errors.New("download token expired")
)

// Signer mints and verifies capability-bearing download URLs. The
// token binds the asset file, track and user, and carries a hard
// expiry; possession after expiry grants no access.
type Signer struct {
	secret  []byte
	baseURL string
	ttl     time.Duration

	now func() time.Time
}

type downloadClaims struct {
	TrackID uint64 `json:"track_id"`
	File    string `json:"file"`
	jwt.RegisteredClaims
}

func NewSigner(secret, baseURL string, ttl time.Duration) *Signer {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &Signer{
		secret:  []byte(secret),
		baseURL: baseURL,
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *Signer) SignedDownloadURL(userID string, trackID uint64, assetFile string) (string, error) {
	now := s.now()
	claims := downloadClaims{
		TrackID: trackID,
		File:    assetFile,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign download token: %w", err)
	}

	return fmt.Sprintf("%s/media/%s?token=%s", s.baseURL, url.PathEscape(assetFile), url.QueryEscape(token)), nil
}

// VerifyDownloadToken checks the token's signature and expiry and
// returns the asset file it grants access to.
func (s *Signer) VerifyDownloadToken(tokenString string) (string, error) {
	var claims downloadClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return s.now() }))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}
	if !token.Valid || claims.File == "" {
		return "", ErrTokenInvalid
	}
	return claims.File, nil
}
