package domain

import (
	"crypto/sha256"
	"encoding/hex"
)

// RequestKey produces a deterministic key for a canonical request body.
// Identical requests map to the same key, so replays and cache lookups agree.
func RequestKey(prefix string, body []byte) string {
	hash := sha256.Sum256(body)
	short := hex.EncodeToString(hash[:8])
	if prefix == "" {
		return short
	}
	return prefix + "-" + short
}
