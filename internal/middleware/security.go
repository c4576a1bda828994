package middleware

import (
	"net/http"

	"github.com/rs/cors"
	"github.com/unrolled/secure"
)

// Header values applied to every response
const (
	FrameOptions          = "SAMEORIGIN"
	ContentSecurityPolicy = "default-src 'self'; object-src 'none'"
	ReferrerPolicy        = "strict-origin-when-cross-origin"
	hstsSeconds           = 31536000
)

// SecurityHeaders sets the browser hardening headers. Strict-Transport-Security
// is only sent over HTTPS, detected from TLS or X-Forwarded-Proto. With
// forceHTTPS, plain HTTP requests are redirected.
func SecurityHeaders(forceHTTPS bool) func(http.Handler) http.Handler {
	sec := secure.New(secure.Options{
		SSLRedirect:             forceHTTPS,
		SSLProxyHeaders:         map[string]string{"X-Forwarded-Proto": "https"},
		STSSeconds:              hstsSeconds,
		STSIncludeSubdomains:    true,
		CustomFrameOptionsValue: FrameOptions,
		ContentTypeNosniff:      true,
		ContentSecurityPolicy:   ContentSecurityPolicy,
		ReferrerPolicy:          ReferrerPolicy,
	})
	return sec.Handler
}

// CORS allows cross-origin calls from the configured origins. "*" allows any.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{"Location", RequestIDHeader},
	})
	return c.Handler
}
