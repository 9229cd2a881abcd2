package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultWebhookTolerance bounds how far a webhook timestamp may drift
// from our clock in either direction.
const DefaultWebhookTolerance = 5 * time.Minute

// VerifyWebhookSignature validates a Clerk (svix-style) webhook delivery.
// The signed content is "<id>.<timestamp>.<body>", the key is the
// base64-decoded part of the whsec_ secret, and the signature header
// carries one or more space-separated "v1,<base64>" entries.
func VerifyWebhookSignature(secret, msgID, timestamp, signatureHeader string, body []byte, tolerance time.Duration) error {
	if tolerance <= 0 {
		tolerance = DefaultWebhookTolerance
	}
	if msgID == "" || timestamp == "" || signatureHeader == "" {
		return fmt.Errorf("missing webhook signature headers")
	}

	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return fmt.Errorf("webhook timestamp is not a unix timestamp")
	}
	drift := time.Since(time.Unix(ts, 0))
	if drift > tolerance || drift < -tolerance {
		return fmt.Errorf("webhook timestamp outside tolerance: %s", drift.Round(time.Second))
	}

	key, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(secret, "whsec_"))
	if err != nil {
		return fmt.Errorf("invalid webhook secret: %w", err)
	}

	mac := hmac.New(sha256.New, key)
	fmt.Fprintf(mac, "%s.%s.", msgID, timestamp)
	mac.Write(body)
	expected := mac.Sum(nil)

	for _, part := range strings.Fields(signatureHeader) {
		version, sig, found := strings.Cut(part, ",")
		if !found || version != "v1" {
			continue
		}
		given, err := base64.StdEncoding.DecodeString(sig)
		if err != nil {
			continue
		}
		if hmac.Equal(expected, given) {
			return nil
		}
	}
	return fmt.Errorf("webhook signature mismatch")
}
