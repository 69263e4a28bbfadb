package connector

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func mintInboundToken(t *testing.T, secret, audience string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"aud": audience,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(5 * time.Minute).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return token
}

func TestVerifyAuthHeader(t *testing.T) {
	credentials := Credentials{AppID: "bot-app-id", AppPassword: "bot-secret"}

	t.Run("valid token", func(t *testing.T) {
		header := "Bearer " + mintInboundToken(t, "bot-secret", "bot-app-id")
		if err := credentials.VerifyAuthHeader(header); err != nil {
			t.Errorf("VerifyAuthHeader() error = %v", err)
		}
	})

	t.Run("wrong signing key", func(t *testing.T) {
		header := "Bearer " + mintInboundToken(t, "other-secret", "bot-app-id")
		if err := credentials.VerifyAuthHeader(header); err == nil {
			t.Error("expected error for token signed with the wrong key")
		}
	})

	t.Run("wrong audience", func(t *testing.T) {
		header := "Bearer " + mintInboundToken(t, "bot-secret", "someone-else")
		if err := credentials.VerifyAuthHeader(header); err == nil {
			t.Error("expected error for token with the wrong audience")
		}
	})

	t.Run("expired token", func(t *testing.T) {
		claims := jwt.MapClaims{
			"aud": "bot-app-id",
			"exp": time.Now().Add(-time.Minute).Unix(),
		}
		raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("bot-secret"))
		if err != nil {
			t.Fatalf("failed to sign test token: %v", err)
		}
		if err := credentials.VerifyAuthHeader("Bearer " + raw); err == nil {
			t.Error("expected error for expired token")
		}
	})

	t.Run("missing header", func(t *testing.T) {
		if err := credentials.VerifyAuthHeader(""); err == nil {
			t.Error("expected error for missing header")
		}
	})

	t.Run("not a bearer token", func(t *testing.T) {
		if err := credentials.VerifyAuthHeader("Basic dXNlcjpwYXNz"); err == nil {
			t.Error("expected error for non-bearer header")
		}
	})
}

func TestVerifyAuthHeaderDisabled(t *testing.T) {
	// Blank password means local development against an emulator
	credentials := Credentials{}
	if err := credentials.VerifyAuthHeader(""); err != nil {
		t.Errorf("disabled credentials must accept any call, got %v", err)
	}
	if err := credentials.VerifyAuthHeader("garbage"); err != nil {
		t.Errorf("disabled credentials must accept any call, got %v", err)
	}
}

func TestOutboundToken(t *testing.T) {
	credentials := Credentials{AppID: "bot-app-id", AppPassword: "bot-secret"}

	raw, err := credentials.OutboundToken()
	if err != nil {
		t.Fatalf("OutboundToken() error = %v", err)
	}

	token, err := jwt.Parse(raw, func(token *jwt.Token) (interface{}, error) {
		return []byte("bot-secret"), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("outbound token does not verify: %v", err)
	}

	claims := token.Claims.(jwt.MapClaims)
	if claims["iss"] != "bot-app-id" {
		t.Errorf("iss = %v, want bot-app-id", claims["iss"])
	}
	if claims["aud"] != "https://api.botframework.com" {
		t.Errorf("aud = %v, want the connector service audience", claims["aud"])
	}
}

func TestOutboundTokenDisabled(t *testing.T) {
	credentials := Credentials{}
	raw, err := credentials.OutboundToken()
	if err != nil {
		t.Fatalf("OutboundToken() error = %v", err)
	}
	if raw != "" {
		t.Errorf("disabled credentials minted token %q", raw)
	}
}
