package http

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// The person API only reads and registers, and clients need Location to follow a 201.
var (
	corsAllowMethods  = []string{http.MethodGet, http.MethodPost}
	corsAllowHeaders  = []string{"Content-Type"}
	corsExposeHeaders = []string{"Location", "Retry-After", "X-Request-Id"}
)

const corsMaxAge = 12 * time.Hour

// corsOrigins is the parsed form of CORS_ALLOW_ORIGINS.
type corsOrigins struct {
	allowed  []string
	allowAll bool
	rejected []string
}

// newCORSMiddleware returns nil when the origin list yields nothing usable.
func newCORSMiddleware(rawOrigins string, logger *slog.Logger) gin.HandlerFunc {
	origins := parseOrigins(rawOrigins)

	if len(origins.rejected) > 0 {
		logger.Warn("ignoring cors origins without http or https scheme",
			slog.Any("origins", origins.rejected))
	}

	if !origins.allowAll && len(origins.allowed) == 0 {
		logger.Warn("cors enabled but no usable origins configured, cors not applied")
		return nil
	}

	cfg := cors.Config{
		AllowMethods:  corsAllowMethods,
		AllowHeaders:  corsAllowHeaders,
		ExposeHeaders: corsExposeHeaders,
		MaxAge:        corsMaxAge,
	}
	if origins.allowAll {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins.allowed
	}

	logger.Info("cors enabled",
		slog.Bool("any_origin", origins.allowAll),
		slog.Any("origins", origins.allowed))

	return cors.New(cfg)
}

// parseOrigins splits a comma-separated origin list. A "*" entry allows every origin.
// Duplicates and trailing slashes are folded, entries without a scheme are rejected.
func parseOrigins(raw string) corsOrigins {
	var out corsOrigins
	seen := make(map[string]struct{})

	for _, part := range strings.Split(raw, ",") {
		origin := strings.TrimRight(strings.TrimSpace(part), "/")
		if origin == "" {
			continue
		}
		if origin == "*" {
			out.allowAll = true
			continue
		}
		if !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			out.rejected = append(out.rejected, origin)
			continue
		}
		if _, dup := seen[origin]; dup {
			continue
		}
		seen[origin] = struct{}{}
		out.allowed = append(out.allowed, origin)
	}

	if out.allowAll {
		out.allowed = nil
	}

	return out
}
