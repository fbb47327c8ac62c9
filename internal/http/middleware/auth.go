package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nurpe/billboard-rentals/internal/auth"
)

const principalKey = "principal"

// Auth validates the bearer token and stores the Principal on the context.
func Auth(parser *auth.Parser) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		principal, err := parser.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		SetPrincipal(c, principal)
		c.Next()
	}
}

// SetPrincipal stores the principal for handlers further down the chain.
func SetPrincipal(c *gin.Context, principal auth.Principal) {
	c.Set(principalKey, principal)
}

// MustPrincipal fetches the Principal placed by Auth.
func MustPrincipal(c *gin.Context) (auth.Principal, bool) {
	value, ok := c.Get(principalKey)
	if !ok {
		return auth.Principal{}, false
	}
	principal, ok := value.(auth.Principal)
	return principal, ok
}
