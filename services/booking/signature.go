package booking

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// VerifySignature checks a gateway payment signature: the hex-encoded
// HMAC-SHA256 of "orderId|paymentId" under the shared key secret. Comparison
// is constant-time. Callers must report mismatches generically and never echo
// the expected value.
func VerifySignature(orderID, paymentID, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
