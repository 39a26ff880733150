package server

import (
	"bufio"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"runtime/debug"
	"sort"
	"strings"
	"time"

	"github.com/conneroisu/italia/internal/errors"
	"github.com/conneroisu/italia/internal/validation"
)

// middleware wraps next in panic recovery, request logging, security
// headers and the origin check for state-changing requests.
func (s *Server) middleware(next http.Handler) http.Handler {
	handler := s.originMiddleware(next)
	handler = s.securityHeaders(handler)
	handler = s.logRequests(handler)

	return s.recoverPanics(handler)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusRecorder) WriteHeader(status int) {
	if w.status == 0 {
		w.status = status
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *statusRecorder) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n

	return n, err
}

// Hijack lets the websocket handler take over the connection.
func (w *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hj, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, fmt.Errorf("response writer does not support hijacking")
	}
	w.status = http.StatusSwitchingProtocols

	return hj.Hijack()
}

func (w *statusRecorder) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (w *statusRecorder) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}

		next.ServeHTTP(rec, r)

		s.logger.Debug(r.Context(), "HTTP request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"bytes", rec.bytes,
			"duration", time.Since(start).String(),
			"remote", clientIP(r))
	})
}

func (s *Server) recoverPanics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				err := errors.NewInternalError(errors.ErrCodeRenderFailed,
					fmt.Sprintf("panic serving %s", r.URL.Path), fmt.Errorf("%v", rec))
				s.logger.Error(r.Context(), err, "Recovered from panic", "stack", string(debug.Stack()))
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(w, r)
	})
}

func (s *Server) securityHeaders(next http.Handler) http.Handler {
	csp := s.contentSecurityPolicy()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Content-Security-Policy", csp)
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("X-Permitted-Cross-Domain-Policies", "none")
		h.Set("Cross-Origin-Opener-Policy", "same-origin")

		next.ServeHTTP(w, r)
	})
}

// contentSecurityPolicy allows the configured asset hosts next to 'self'.
func (s *Server) contentSecurityPolicy() string {
	assets := s.config.Assets
	directives := []struct {
		name    string
		sources []string
	}{
		{"default-src", []string{"'self'"}},
		{"script-src", []string{"'self'", "'unsafe-inline'", assetOrigin(assets.ScriptURL)}},
		{"style-src", []string{"'self'", "'unsafe-inline'", assetOrigin(assets.StylesheetURL)}},
		{"img-src", []string{"'self'", "data:", "https:", assetOrigin(assets.SpriteURL)}},
		{"font-src", []string{"'self'", "data:", assetOrigin(assets.StylesheetURL)}},
		{"connect-src", []string{"'self'", "ws:", "wss:"}},
		{"object-src", []string{"'none'"}},
		{"frame-ancestors", []string{"'none'"}},
		{"base-uri", []string{"'self'"}},
		{"form-action", []string{"'self'"}},
	}

	parts := make([]string, 0, len(directives))
	for _, d := range directives {
		seen := make(map[string]bool, len(d.sources))
		var sources []string
		for _, src := range d.sources {
			if src == "" || seen[src] {
				continue
			}
			seen[src] = true
			sources = append(sources, src)
		}
		parts = append(parts, d.name+" "+strings.Join(sources, " "))
	}

	return strings.Join(parts, "; ")
}

// assetOrigin returns scheme://host of an absolute asset URL and "" for a
// same-origin path.
func assetOrigin(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return ""
	}

	return u.Scheme + "://" + u.Host
}

// originMiddleware rejects state-changing requests from foreign origins.
// Without an Origin header the Referer is used.
func (s *Server) originMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			next.ServeHTTP(w, r)
			return
		}

		origin := r.Header.Get("Origin")
		if origin == "" {
			if ref, err := url.Parse(r.Header.Get("Referer")); err == nil && ref.Host != "" {
				origin = ref.Scheme + "://" + ref.Host
			}
		}

		if err := validation.ValidateOrigin(origin, s.allowedOrigins()); err != nil {
			s.logger.Warn(r.Context(), err, "Rejected cross-origin request",
				"method", r.Method,
				"path", r.URL.Path,
				"remote", clientIP(r))
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		return strings.TrimSpace(ips[0])
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}

// sortedKeys is used for stable JSON and page output.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
