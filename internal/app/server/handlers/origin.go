package handlers

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

// OriginChecker builds the upgrader's CheckOrigin from the configured
// allow-list. An empty list or a "*" entry admits every origin. Otherwise
// the Origin header must match a configured scheme://host exactly,
// case-insensitive. Requests without an Origin header (non-browser
// clients) are always admitted.
func OriginChecker(log *slog.Logger, allowed []string) func(*http.Request) bool {
	allowAll := len(allowed) == 0
	set := make(map[string]struct{}, len(allowed))

	for _, origin := range allowed {
		trimmed := strings.TrimSpace(origin)
		if trimmed == "" {
			continue
		}
		if trimmed == "*" {
			allowAll = true
			continue
		}
		normalized, ok := normalizeOrigin(trimmed)
		if !ok {
			log.Warn("ws handler - origin - invalid configured origin ignored", slog.String("origin", origin))
			continue
		}
		set[normalized] = struct{}{}
	}

	return func(r *http.Request) bool {
		if allowAll {
			return true
		}
		header := r.Header.Get("Origin")
		if header == "" {
			return true
		}
		normalized, ok := normalizeOrigin(header)
		if !ok {
			return false
		}
		_, exists := set[normalized]
		return exists
	}
}

func normalizeOrigin(origin string) (string, bool) {
	parsed, err := url.Parse(origin)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", false
	}
	return strings.ToLower(parsed.Scheme) + "://" + strings.ToLower(parsed.Host), true
}
