package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// hasherPool holds reusable SHA-256 instances for response fingerprints.
var hasherPool = sync.Pool{
	New: func() any {
		return sha256.New()
	},
}

// Hash returns the SHA-256 digest of data using a pooled hasher.
func Hash(data []byte) []byte {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return sum
}

// HashString returns the hex-encoded SHA-256 digest of data.
func HashString(data []byte) string {
	return hex.EncodeToString(Hash(data))
}

// ETag returns a strong entity tag for body, quoted as HTTP requires.
func ETag(body []byte) string {
	return `"` + HashString(body) + `"`
}
