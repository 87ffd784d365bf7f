// Package iphash turns client IP addresses into keyed, fixed-length
// identifiers so the raw address never has to be stored.
package iphash

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Hasher computes HMAC-SHA256 digests of IP addresses under a server-held key.
type Hasher struct {
	key []byte
}

// New returns a Hasher keyed with secret.
func New(secret string) *Hasher {
	return &Hasher{key: []byte(secret)}
}

// Hash returns the hex-encoded HMAC-SHA256 of ip (64 characters).
// An empty ip yields "" so callers can store NULL.
func (h *Hasher) Hash(ip string) string {
	if ip == "" {
		return ""
	}
	mac := hmac.New(sha256.New, h.key)
	mac.Write([]byte(ip))
	return hex.EncodeToString(mac.Sum(nil))
}
