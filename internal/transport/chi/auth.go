package chi

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
	"strings"

	"go.uber.org/zap"

	logpkg "github.com/kailas-cloud/gamerec/internal/logger"
)

// Routes served without credentials: probes and scrapers hold no API key.
const (
	PathHealth  = "/health"
	PathMetrics = "/metrics"
)

var publicPaths = map[string]struct{}{
	PathHealth:  {},
	PathMetrics: {},
}

const (
	authChallenge = `Bearer realm="gamerec"`
	// KeyAPIKeyID is the request-log field naming the accepted key.
	KeyAPIKeyID = "api_key_id"
)

// apiKey is a configured key and the fingerprint logged in its place.
type apiKey struct {
	secret []byte
	id     string
}

func parseKeys(raw []string) []apiKey {
	keys := make([]apiKey, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, k := range raw {
		if k == "" {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		sum := sha256.Sum256([]byte(k))
		keys = append(keys, apiKey{secret: []byte(k), id: hex.EncodeToString(sum[:4])})
	}
	return keys
}

// match compares token against every key in constant time.
func match(keys []apiKey, token string) (string, bool) {
	var id string
	for _, k := range keys {
		if subtle.ConstantTimeCompare(k.secret, []byte(token)) == 1 {
			id = k.id
		}
	}
	return id, id != ""
}

// BearerAuthMiddleware guards the /api routes with the static keys from
// auth.api_keys. With no non-empty key it is a pass-through. Accepted requests
// carry the key fingerprint in the context logger under api_key_id.
func BearerAuthMiddleware(apiKeys []string) func(http.Handler) http.Handler {
	keys := parseKeys(apiKeys)

	return func(next http.Handler) http.Handler {
		if len(keys) == 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := publicPaths[r.URL.Path]; ok {
				next.ServeHTTP(w, r)
				return
			}

			auth := r.Header.Get("Authorization")
			if auth == "" {
				unauthorized(w, "missing authorization header")
				return
			}

			scheme, token, found := strings.Cut(auth, " ")
			if !found || !strings.EqualFold(scheme, "Bearer") {
				unauthorized(w, "authorization header must use Bearer scheme")
				return
			}

			id, ok := match(keys, strings.TrimSpace(token))
			if !ok {
				unauthorized(w, "invalid api key")
				return
			}

			ctx := logpkg.With(r.Context(), zap.String(KeyAPIKeyID, id))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("WWW-Authenticate", authChallenge)
	writeError(w, http.StatusUnauthorized, msg)
}
