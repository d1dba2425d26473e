package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/barber-booking/internal/auth"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

const ContextActor = "actor"

// AuthMiddleware accepts HMAC-signed bearer tokens carrying `sub` (user id)
// and `role` (CLIENT or ADMIN). Tokens are issued by the identity provider.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "missing_authorization_header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortUnauthorized(c, "invalid_authorization_header")
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			abortUnauthorized(c, "invalid_token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortUnauthorized(c, "invalid_token_claims")
			return
		}

		userID, ok := claims["sub"].(float64)
		if !ok || userID <= 0 {
			abortUnauthorized(c, "invalid_token_payload")
			return
		}
		role, _ := claims["role"].(string)

		c.Set(ContextActor, auth.Actor{
			UserID: uint(userID),
			Role:   auth.ParseRole(role),
		})

		c.Next()
	}
}

// RequireStaff must run after AuthMiddleware.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !ActorFrom(c).IsStaff() {
			httperr.Forbidden(c, "staff_only", "you are not allowed to perform this action")
			c.Abort()
			return
		}
		c.Next()
	}
}

// ActorFrom returns the authenticated actor, or the zero Actor on public
// routes.
func ActorFrom(c *gin.Context) auth.Actor {
	if v, ok := c.Get(ContextActor); ok {
		if a, ok := v.(auth.Actor); ok {
			return a
		}
	}
	return auth.Actor{}
}

func abortUnauthorized(c *gin.Context, code string) {
	httperr.Write(c, http.StatusUnauthorized, code, "authentication required")
	c.Abort()
}
