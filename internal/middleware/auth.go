package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/lshigami/nihongo-test/internal/dto"
	"github.com/rs/zerolog/log"
)

const (
	ownerIDKey = "owner_id"
	roleKey    = "role"

	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Claims are the bearer token fields the API reads: the subject is the
// owner id of everything the caller creates.
type Claims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Auth resolves the caller's identity from an HS256 bearer token. With
// allowDevHeader set, a request without a token may name itself through
// X-User-ID (and X-User-Role) instead.
func Auth(secret string, allowDevHeader bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" && allowDevHeader {
			if userID := c.GetHeader("X-User-ID"); userID != "" {
				role := c.GetHeader("X-User-Role")
				if role == "" {
					role = RoleUser
				}
				c.Set(ownerIDKey, userID)
				c.Set(roleKey, role)
				c.Next()
				return
			}
		}

		tokenString, err := bearerToken(header)
		if err != nil {
			abortUnauthorized(c, err.Error())
			return
		}
		if secret == "" {
			log.Error().Msg("JWT_SECRET is empty; rejecting bearer token")
			abortUnauthorized(c, "authentication is not configured")
			return
		}

		claims := &Claims{}
		_, err = jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(secret), nil
		})
		if err != nil {
			log.Debug().Err(err).Msg("Rejected bearer token")
			abortUnauthorized(c, "invalid or expired token")
			return
		}
		if claims.Subject == "" {
			abortUnauthorized(c, "token has no subject")
			return
		}

		role := claims.Role
		if role == "" {
			role = RoleUser
		}
		c.Set(ownerIDKey, claims.Subject)
		c.Set(roleKey, role)
		c.Next()
	}
}

// RequireAdmin must run after Auth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(roleKey) != RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Message: "admin role required"})
			return
		}
		c.Next()
	}
}

// OwnerID returns the authenticated caller set by Auth.
func OwnerID(c *gin.Context) string {
	return c.GetString(ownerIDKey)
}

func bearerToken(header string) (string, error) {
	if header == "" {
		return "", errors.New("missing Authorization header")
	}
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", errors.New("malformed Authorization header")
	}
	return strings.TrimSpace(token), nil
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: msg})
}
