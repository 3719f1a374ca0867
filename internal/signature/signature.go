// Package signature verifies webhook authenticity via HMAC-SHA256.
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/SBianucci/DevSyncAI/internal/entities"
)

// Header is the GitHub webhook signature header.
const Header = "X-Hub-Signature-256"

const scheme = "sha256="

// Verifier checks inbound request signatures against a shared secret.
type Verifier struct {
	secret []byte
}

// NewVerifier constructs a verifier for the given webhook secret.
func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Verify computes HMAC-SHA256 over body and compares it to the provided
// header value ("sha256=<hex>") in constant time. Any missing or malformed
// header rejects.
func (v *Verifier) Verify(body []byte, header string) error {
	if header == "" {
		return fmt.Errorf("%w: missing %s header", entities.ErrBadSignature, Header)
	}
	if !strings.HasPrefix(header, scheme) {
		return fmt.Errorf("%w: unexpected signature scheme", entities.ErrBadSignature)
	}

	provided, err := hex.DecodeString(strings.TrimPrefix(header, scheme))
	if err != nil {
		return fmt.Errorf("%w: signature is not hex", entities.ErrBadSignature)
	}

	mac := hmac.New(sha256.New, v.secret)
	mac.Write(body)
	if !hmac.Equal(provided, mac.Sum(nil)) {
		return entities.ErrBadSignature
	}
	return nil
}
