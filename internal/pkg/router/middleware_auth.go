package router

import (
	"crypto/subtle"
	"net"
	"net/http"
	"strings"

	"github.com/archsol/portfolio-api/internal/pkg/config"
)

// middlewareAPIKey guards the listed endpoints with an X-API-Key/X-API-Secret
// header pair. Requests addressed to the server by bare IP or localhost skip
// the check, so health probes and same-host tooling keep working without
// credentials.
func middlewareAPIKey(cfg config.Config, protectedEndpoints map[string]map[string]struct{}) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := matchedRoutePath(r)

			s, ok := protectedEndpoints[r.Method]
			if !ok {
				next.ServeHTTP(w, r)
				return
			}
			if _, protected := s[path]; !protected {
				next.ServeHTTP(w, r)
				return
			}

			if !cfg.GetBool("auth.enabled") || directHostAccess(r.Host) {
				next.ServeHTTP(w, r)
				return
			}

			key := cfg.GetString("auth.api_key")
			secret := cfg.GetString("auth.api_secret")
			if key == "" || secret == "" {
				writeJSON(w, map[string]string{"message": "API authentication is not configured"},
					http.StatusInternalServerError)
				return
			}

			gotKey := r.Header.Get("X-API-Key")
			gotSecret := r.Header.Get("X-API-Secret")
			if gotKey == "" || gotSecret == "" {
				writeJSON(w, map[string]string{"message": "Authentication required"}, http.StatusUnauthorized)
				return
			}

			keyOK := subtle.ConstantTimeCompare([]byte(gotKey), []byte(key)) == 1
			secretOK := subtle.ConstantTimeCompare([]byte(gotSecret), []byte(secret)) == 1
			if !keyOK || !secretOK {
				writeJSON(w, map[string]string{"message": "Invalid API credentials"}, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// directHostAccess reports whether the request targeted the server by IP
// address or localhost instead of a public hostname.
func directHostAccess(hostport string) bool {
	host := hostport
	if h, _, err := net.SplitHostPort(hostport); err == nil {
		host = h
	}
	host = strings.Trim(host, "[]")

	return host == "localhost" || net.ParseIP(host) != nil
}
