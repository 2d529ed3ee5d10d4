package middlewares

import (
	"crypto/subtle"
	"strings"

	"github.com/gin-gonic/gin"

	"llm-advisor/internal/interfaces/httpserver/responses"
	"llm-advisor/internal/utils/platformerrors"
)

// SharedSecret guards mutating endpoints with a bearer token check. An empty
// secret disables the check entirely, matching open local deployments.
func SharedSecret(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.Next()
			return
		}

		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok || subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
			responses.HandleNewError(c, platformerrors.ErrorTypeUnauthorized, "unauthorized")
			return
		}

		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", false
	}
	return token, true
}
