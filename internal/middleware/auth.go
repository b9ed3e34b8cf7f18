package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// TokenVerifier decide si un bearer token es válido.
type TokenVerifier interface {
	Verify(token string) bool
}

// StaticToken compara contra un único secreto compartido.
type StaticToken struct {
	secret []byte
}

func NewStaticToken(secret string) StaticToken {
	return StaticToken{secret: []byte(secret)}
}

func (s StaticToken) Verify(token string) bool {
	if len(s.secret) == 0 {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), s.secret) == 1
}

// RequireToken rechaza con 401 cualquier request sin un bearer token válido.
func RequireToken(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok || !verifier.Verify(token) {
			c.Header("WWW-Authenticate", "Bearer")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Invalid authentication credentials"})
			return
		}
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, credentials, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	credentials = strings.TrimSpace(credentials)
	return credentials, credentials != ""
}
