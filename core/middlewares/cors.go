package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// allowMethods is what the front end may use once an origin is allowed.
// Credentialed responses cannot carry a literal "*", so the policy is
// spelled out method by method.
const allowMethods = "DELETE, GET, HEAD, OPTIONS, PATCH, POST, PUT"

type CORSConfig struct {
	AllowedOrigins []string // exact match only; no wildcards, no patterns
}

// CORS applies the browser-side allow-list. Requests from unlisted origins
// still execute server-side; they simply get no allow headers, so the
// browser refuses to hand the response to the page.
func CORS(cfg CORSConfig) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(cfg.AllowedOrigins))
	for _, o := range cfg.AllowedOrigins {
		o = strings.TrimSpace(o)
		if o != "" {
			allowed[o] = struct{}{}
		}
	}

	return func(c *gin.Context) {
		origin := strings.TrimSpace(c.GetHeader("Origin"))
		if origin == "" {
			c.Next()
			return
		}

		h := c.Writer.Header()
		_, ok := allowed[origin]
		if ok {
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Add("Vary", "Origin")
		}

		// Preflight stops here; it never reaches a handler.
		if c.Request.Method == http.MethodOptions {
			if ok {
				h.Set("Access-Control-Allow-Methods", allowMethods)
				if reqHeaders := c.GetHeader("Access-Control-Request-Headers"); reqHeaders != "" {
					h.Set("Access-Control-Allow-Headers", reqHeaders)
				} else {
					h.Set("Access-Control-Allow-Headers", "*")
				}
				h.Set("Access-Control-Max-Age", "600")
			}
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
