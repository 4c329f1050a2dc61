package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const CheckoutSessionHeader = "X-Checkout-Session"

const maxSessionKeyLen = 128

// CheckoutSessionKey returns the session guard key of the request, scoped to
// the authenticated user. Without the header all checkouts of a user share one key.
func CheckoutSessionKey(c *gin.Context) (string, bool) {
	userID, ok := GetUserID(c)
	if !ok {
		return "", false
	}

	session := strings.TrimSpace(c.GetHeader(CheckoutSessionHeader))
	if session == "" {
		return userID, true
	}
	if len(session) > maxSessionKeyLen {
		return "", false
	}
	return userID + ":" + session, true
}
