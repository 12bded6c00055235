package signer

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Sign returns the lowercase hex HMAC-SHA256 of bytes keyed by secret.
func Sign(bytes []byte, secret []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(bytes)
	return hex.EncodeToString(mac.Sum(nil))
}
