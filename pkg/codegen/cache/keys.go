package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// ContentHash returns the hash an entry is validated against.
//
// Format version: v1, sha256 over path + \0 + content.
// Changing it only costs one re-parse per file.
func ContentHash(path string, content []byte) string {
	hasher := sha256.New()
	hasher.Write([]byte(path))
	hasher.Write([]byte{0})
	hasher.Write(content)
	return "v1:" + hex.EncodeToString(hasher.Sum(nil))
}
