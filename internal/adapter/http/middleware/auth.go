package middleware

import (
	"net/http"
	"strings"

	"casar_em_carneiros/internal/domain/entities"
	"casar_em_carneiros/internal/usecase/interfaces"
	"casar_em_carneiros/pkg"

	"github.com/gin-gonic/gin"
)

const claimsContextKey = "sessionClaims"

var (
	errMissingToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid authorization token", http.StatusUnauthorized)
	errForbidden    = pkg.NewDomainErrorSimple("FORBIDDEN", "Insufficient permissions", http.StatusForbidden)
)

// RequireAuth validates the bearer token and stores the session claims in the
// request context for downstream handlers.
func RequireAuth(tokens interfaces.ITokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}

		claims, err := tokens.Parse(token)
		if err != nil {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}

		c.Set(claimsContextKey, claims)
		c.Next()
	}
}

// RequireRole allows the request through only when the authenticated session
// carries one of the given roles. Must run after RequireAuth.
func RequireRole(roles ...entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := ClaimsFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}

		for _, role := range roles {
			if claims.Role == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
	}
}

// ClaimsFromContext returns the session claims stored by RequireAuth.
func ClaimsFromContext(c *gin.Context) (interfaces.SessionClaims, bool) {
	v, ok := c.Get(claimsContextKey)
	if !ok {
		return interfaces.SessionClaims{}, false
	}
	claims, ok := v.(interfaces.SessionClaims)
	return claims, ok
}
