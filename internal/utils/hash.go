package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"strings"
	"sync"
)

// SignaturePrefix is the algorithm prefix used by the X-Hub-Signature-256 header.
const SignaturePrefix = "sha256="

// Signer computes and verifies HMAC-SHA256 signatures of webhook payloads.
// Hash instances are pooled because every inbound notification is signed.
type Signer struct {
	pool sync.Pool
}

// NewSigner creates a Signer bound to the given app secret.
//
// Example usage:
//
//	signer := utils.NewSigner(cfg.WhatsApp.AppSecret)
//	ok := signer.Verify(body, r.Header.Get("X-Hub-Signature-256"))
func NewSigner(secret string) *Signer {
	key := []byte(secret)
	return &Signer{
		pool: sync.Pool{
			New: func() any {
				return hmac.New(sha256.New, key)
			},
		},
	}
}

// Hash computes an HMAC-SHA256 digest over the given byte slice
// using a hasher pulled from the pool.
func (s *Signer) Hash(data []byte) []byte {
	h := s.pool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	s.pool.Put(h)

	return sum
}

// Sign returns the header value for data, for example "sha256=ab12...".
func (s *Signer) Sign(data []byte) string {
	return SignaturePrefix + hex.EncodeToString(s.Hash(data))
}

// Verify reports whether header is a valid signature of data.
// Comparison is constant time.
func (s *Signer) Verify(data []byte, header string) bool {
	if !strings.HasPrefix(header, SignaturePrefix) {
		return false
	}

	got, err := hex.DecodeString(strings.TrimPrefix(header, SignaturePrefix))
	if err != nil {
		return false
	}

	return hmac.Equal(got, s.Hash(data))
}

// HashString computes an HMAC-SHA256 signature over the given string
// using the provided key and returns the result as a hex-encoded string.
//
// Unlike [Signer.Hash], this function creates a new HMAC instance on each call.
func HashString(data string, hashKey string) string {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write([]byte(data))
	return hex.EncodeToString(hasher.Sum(nil))
}
