package auth

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/kanishkPamecha/Movies/config"
)

// Claims is the payload of a session token.
type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// GenerateSessionToken signs a token binding the user identifier to the
// configured expiry window. The cookie built by SessionCookie uses the same
// TTL so the two cannot drift apart.
func GenerateSessionToken(cfg config.JWTConfig, userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.SecretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// SessionCookie builds the HTTP-only session cookie carrying the token.
func SessionCookie(cfg *config.Config, token string) *http.Cookie {
	return &http.Cookie{
		Name:     cfg.JWT.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(cfg.JWT.TokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteStrictMode,
	}
}

// ClearSessionCookie overwrites the session cookie with an empty value and a
// past expiry so the client drops it. The token itself stays valid until its
// natural expiry; there is no server-side revocation.
func ClearSessionCookie(cfg *config.Config) *http.Cookie {
	return &http.Cookie{
		Name:     cfg.JWT.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteStrictMode,
	}
}
