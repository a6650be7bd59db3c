package booking

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func signedWith(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignatureAccepts(t *testing.T) {
	sig := signedWith("order_1", "pay_1", "s")
	assert.True(t, VerifySignature("order_1", "pay_1", sig, "s"))
}

func TestVerifySignatureRejects(t *testing.T) {
	good := signedWith("order_1", "pay_1", "s")

	assert.False(t, VerifySignature("order_1", "pay_1", "", "s"))
	assert.False(t, VerifySignature("order_1", "pay_1", "deadbeef", "s"))
	assert.False(t, VerifySignature("order_1", "pay_1", good, "other-secret"))
	assert.False(t, VerifySignature("order_2", "pay_1", good, "s"))
	assert.False(t, VerifySignature("order_1", "pay_2", good, "s"))
}
