package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the result of token verification that the gateway consumes.
// TenantMnemonic is nil for machine-to-machine callers whose tokens carry no
// tenant claim; such callers are not scoped to any tenant.
type Claims struct {
	Subject        string
	TenantMnemonic *string
}

// Verifier validates bearer tokens and extracts gateway claims.
type Verifier struct {
	signingKey []byte
}

// NewVerifier creates a token verifier with an HMAC signing key.
func NewVerifier(signingKey string) *Verifier {
	return &Verifier{signingKey: []byte(signingKey)}
}

// Verify parses and validates a token, returning the claims the gateway cares about.
func (v *Verifier) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.signingKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("unexpected claims type")
	}

	claims := &Claims{}
	if sub, ok := mapClaims["sub"].(string); ok {
		claims.Subject = sub
	}
	if tenant, ok := mapClaims["tenant"].(string); ok && tenant != "" {
		claims.TenantMnemonic = &tenant
	}

	return claims, nil
}

type contextKeyAuthorizedTenant struct{}

// GetAuthorizedTenant retrieves the caller's authorized tenant mnemonic from
// the context. Nil means the caller is unscoped (M2M) or unauthenticated.
func GetAuthorizedTenant(ctx context.Context) *string {
	if mnemonic, ok := ctx.Value(contextKeyAuthorizedTenant{}).(*string); ok {
		return mnemonic
	}
	return nil
}

// WithAuthorizedTenant stores the authorized tenant mnemonic in the context.
// Exported for handler tests.
func WithAuthorizedTenant(ctx context.Context, mnemonic *string) context.Context {
	return context.WithValue(ctx, contextKeyAuthorizedTenant{}, mnemonic)
}

// Authenticate validates the bearer token and stores the authorized tenant
// mnemonic (or nil for unscoped callers) in the request context. Requests
// without a valid token are rejected; per-tenant authorization happens later
// in the gateway guard, which consumes only the verification result.
func Authenticate(verifier *Verifier, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok {
				logger.WarnContext(r.Context(), "unauthorized access - missing token",
					"request_id", GetRequestID(r.Context()),
				)
				writeUnauthorized(w, "Missing or invalid Authorization header")
				return
			}

			claims, err := verifier.Verify(token)
			if err != nil {
				logger.WarnContext(r.Context(), "unauthorized access - invalid token",
					"error", err,
					"request_id", GetRequestID(r.Context()),
				)
				writeUnauthorized(w, "Invalid or expired token")
				return
			}

			ctx := WithAuthorizedTenant(r.Context(), claims.TenantMnemonic)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter, description string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"unauthorized","error_description":"` + description + `"}`))
}
