package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"catalog-api/internal/config"
)

// CORS aplica la política configurada. Con "*" se permite cualquier origen sin credenciales.
func CORS(policy config.CORSConfig) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods: policy.AllowedMethods,
		AllowHeaders: allowHeaders(policy.AllowedHeaders),
		MaxAge:       12 * time.Hour,
	}
	if policy.AllowsAllOrigins() {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = policy.AllowedOrigins
		cfg.AllowCredentials = true
	}
	return cors.New(cfg)
}

// allowHeaders agrega Authorization cuando se usa el comodín "*":
// los navegadores nunca lo consideran cubierto por el comodín.
func allowHeaders(headers []string) []string {
	wildcard := false
	for _, h := range headers {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "*":
			wildcard = true
		case "authorization":
			return headers
		}
	}
	if !wildcard {
		return headers
	}
	out := make([]string, 0, len(headers)+1)
	out = append(out, headers...)
	return append(out, "Authorization")
}
