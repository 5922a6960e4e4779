package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AccessPolicy decides whether a request may proceed. The shop ships
// with PermitAll until a real authentication layer replaces it; routes
// are wired through this middleware so swapping the policy is a
// one-line change.
type AccessPolicy func(c *gin.Context) error

// PermitAll allows every request. Development placeholder only.
func PermitAll() AccessPolicy {
	return func(c *gin.Context) error {
		return nil
	}
}

// AccessControl enforces the given policy on every request in scope.
func AccessControl(policy AccessPolicy) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := policy(c); err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.Next()
	}
}
