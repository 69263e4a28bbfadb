package connector

import (
	"fmt"
	"strings"
	"time"

	"github.com/getevo/evo/v2/lib/settings"
	"github.com/golang-jwt/jwt/v5"
)

// Credentials holds the bot's identity on the messaging platform
type Credentials struct {
	AppID       string
	AppPassword string
}

// LoadCredentials reads the bot credentials from settings
func LoadCredentials() Credentials {
	return Credentials{
		AppID:       settings.Get("BOT.APP_ID").String(),
		AppPassword: settings.Get("BOT.APP_PASSWORD").String(),
	}
}

// Enabled reports whether inbound token verification is active. A blank password
// disables verification, matching emulator-style local development.
func (c Credentials) Enabled() bool {
	return c.AppPassword != ""
}

// VerifyAuthHeader validates the Authorization header of an inbound webhook call.
// Tokens are HS256, signed with the app password and audienced to the app id.
func (c Credentials) VerifyAuthHeader(header string) error {
	if !c.Enabled() {
		return nil
	}

	if header == "" {
		return fmt.Errorf("missing authorization header")
	}

	raw := strings.TrimPrefix(header, "Bearer ")
	if raw == header {
		return fmt.Errorf("authorization header is not a bearer token")
	}

	token, err := jwt.Parse(raw, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(c.AppPassword), nil
	}, jwt.WithAudience(c.AppID))
	if err != nil {
		return fmt.Errorf("token verification failed: %w", err)
	}
	if !token.Valid {
		return fmt.Errorf("token is not valid")
	}

	return nil
}

// OutboundToken mints a short-lived bearer token for calls to the connector service
func (c Credentials) OutboundToken() (string, error) {
	if !c.Enabled() {
		return "", nil
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"iss": c.AppID,
		"aud": "https://api.botframework.com",
		"iat": now.Unix(),
		"exp": now.Add(10 * time.Minute).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(c.AppPassword))
}
