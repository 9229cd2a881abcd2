package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strconv"
	"testing"
	"time"
)

const testWebhookKey = "dGVzdC1zZWNyZXQta2V5LWZvci13ZWJob29rcw==" // "test-secret-key-for-webhooks"

func signWebhook(t *testing.T, msgID, timestamp string, body []byte) string {
	t.Helper()
	key, err := base64.StdEncoding.DecodeString(testWebhookKey)
	if err != nil {
		t.Fatal(err)
	}
	mac := hmac.New(sha256.New, key)
	fmt.Fprintf(mac, "%s.%s.", msgID, timestamp)
	mac.Write(body)
	return "v1," + base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func TestVerifyWebhookSignature(t *testing.T) {
	secret := "whsec_" + testWebhookKey
	body := []byte(`{"type":"user.created","data":{"id":"user_123"}}`)
	now := strconv.FormatInt(time.Now().Unix(), 10)

	t.Run("valid signature", func(t *testing.T) {
		sig := signWebhook(t, "msg_1", now, body)
		if err := VerifyWebhookSignature(secret, "msg_1", now, sig, body, 0); err != nil {
			t.Errorf("valid signature rejected: %v", err)
		}
	})

	t.Run("second of multiple signatures", func(t *testing.T) {
		sig := "v1,Zm9yZ2VkCg== " + signWebhook(t, "msg_1", now, body)
		if err := VerifyWebhookSignature(secret, "msg_1", now, sig, body, 0); err != nil {
			t.Errorf("valid second signature rejected: %v", err)
		}
	})

	t.Run("tampered body", func(t *testing.T) {
		sig := signWebhook(t, "msg_1", now, body)
		err := VerifyWebhookSignature(secret, "msg_1", now, sig, []byte(`{"type":"user.deleted"}`), 0)
		if err == nil {
			t.Error("tampered body accepted")
		}
	})

	t.Run("wrong message id", func(t *testing.T) {
		sig := signWebhook(t, "msg_1", now, body)
		if err := VerifyWebhookSignature(secret, "msg_2", now, sig, body, 0); err == nil {
			t.Error("wrong message id accepted")
		}
	})

	t.Run("stale timestamp", func(t *testing.T) {
		old := strconv.FormatInt(time.Now().Add(-time.Hour).Unix(), 10)
		sig := signWebhook(t, "msg_1", old, body)
		if err := VerifyWebhookSignature(secret, "msg_1", old, sig, body, 0); err == nil {
			t.Error("stale timestamp accepted")
		}
	})

	t.Run("future timestamp", func(t *testing.T) {
		future := strconv.FormatInt(time.Now().Add(time.Hour).Unix(), 10)
		sig := signWebhook(t, "msg_1", future, body)
		if err := VerifyWebhookSignature(secret, "msg_1", future, sig, body, 0); err == nil {
			t.Error("future timestamp accepted")
		}
	})

	t.Run("missing headers", func(t *testing.T) {
		if err := VerifyWebhookSignature(secret, "", now, "v1,abc", body, 0); err == nil {
			t.Error("missing message id accepted")
		}
	})
}
