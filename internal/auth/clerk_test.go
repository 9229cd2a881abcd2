package auth

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func rsaTestToken(t *testing.T, key *rsa.PrivateKey, kid, sub string, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.RegisteredClaims{
		Subject:   sub,
		ExpiresAt: jwt.NewNumericDate(exp),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	})
	token.Header["kid"] = kid
	signed, err := token.SignedString(key)
	if err != nil {
		t.Fatal(err)
	}
	return signed
}

func jwksServer(t *testing.T, key *rsa.PrivateKey, kid string) *httptest.Server {
	t.Helper()
	n := base64.RawURLEncoding.EncodeToString(key.N.Bytes())
	e := base64.RawURLEncoding.EncodeToString([]byte{1, 0, 1})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"keys":[{"kid":%q,"kty":"RSA","use":"sig","n":%q,"e":%q}]}`, kid, n, e)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClerkVerify(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatal(err)
	}
	srv := jwksServer(t, key, "key-1")
	v := NewClerkVerifier(srv.URL, false)

	t.Run("valid token", func(t *testing.T) {
		token := rsaTestToken(t, key, "key-1", "user_abc", time.Now().Add(time.Hour))
		claims, err := v.Verify(context.Background(), token)
		if err != nil {
			t.Fatalf("Verify() error: %v", err)
		}
		if claims.Subject != "user_abc" {
			t.Errorf("subject = %q, want user_abc", claims.Subject)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		token := rsaTestToken(t, key, "key-1", "user_abc", time.Now().Add(-time.Hour))
		if _, err := v.Verify(context.Background(), token); err == nil {
			t.Error("expired token accepted")
		}
	})

	t.Run("unknown kid", func(t *testing.T) {
		token := rsaTestToken(t, key, "key-2", "user_abc", time.Now().Add(time.Hour))
		if _, err := v.Verify(context.Background(), token); err == nil {
			t.Error("token with unknown kid accepted")
		}
	})

	t.Run("wrong key", func(t *testing.T) {
		otherKey, err := rsa.GenerateKey(rand.Reader, 2048)
		if err != nil {
			t.Fatal(err)
		}
		token := rsaTestToken(t, otherKey, "key-1", "user_abc", time.Now().Add(time.Hour))
		if _, err := v.Verify(context.Background(), token); err == nil {
			t.Error("token signed with wrong key accepted")
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		if _, err := v.Verify(context.Background(), "not.a.token"); err == nil {
			t.Error("garbage token accepted")
		}
	})
}

func TestClerkVerifySkipMode(t *testing.T) {
	v := NewClerkVerifier("", true)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":        "user_dev",
		"email":      "dev@example.com",
		"given_name": "Dev",
		"exp":        time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("anything"))
	if err != nil {
		t.Fatal(err)
	}

	claims, err := v.Verify(context.Background(), signed)
	if err != nil {
		t.Fatalf("Verify() error in skip mode: %v", err)
	}
	if claims.Subject != "user_dev" {
		t.Errorf("subject = %q, want user_dev", claims.Subject)
	}
	if claims.Email != "dev@example.com" || claims.FirstName != "Dev" {
		t.Errorf("claims = %+v, profile fields not extracted", claims)
	}

	t.Run("still requires subject", func(t *testing.T) {
		noSub := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{})
		signed, err := noSub.SignedString([]byte("anything"))
		if err != nil {
			t.Fatal(err)
		}
		if _, err := v.Verify(context.Background(), signed); err == nil {
			t.Error("token without subject accepted")
		}
	})
}
