package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"
)

// AuthMiddlewareSuite tests bearer token handling and tenant claim extraction.
//
// Justification: the middleware is the sole producer of the authorized-tenant
// context value that the gateway guard consumes; a bug here silently widens or
// narrows every caller's tenant scope.
type AuthMiddlewareSuite struct {
	suite.Suite
	verifier *Verifier
	handler  http.Handler
	seen     *string
	called   bool
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareSuite))
}

const testSigningKey = "test-signing-key"

func (s *AuthMiddlewareSuite) SetupTest() {
	s.verifier = NewVerifier(testSigningKey)
	s.seen = nil
	s.called = false

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.called = true
		s.seen = GetAuthorizedTenant(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	s.handler = Authenticate(s.verifier, logger)(inner)
}

func (s *AuthMiddlewareSuite) signToken(claims jwt.MapClaims) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSigningKey))
	s.Require().NoError(err)
	return signed
}

func (s *AuthMiddlewareSuite) TestMissingTokenRejected() {
	req := httptest.NewRequest(http.MethodGet, "/patients", nil)
	rec := httptest.NewRecorder()

	s.handler.ServeHTTP(rec, req)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.False(s.called)
}

func (s *AuthMiddlewareSuite) TestInvalidTokenRejected() {
	req := httptest.NewRequest(http.MethodGet, "/patients", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()

	s.handler.ServeHTTP(rec, req)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.False(s.called)
}

func (s *AuthMiddlewareSuite) TestTenantClaimExtracted() {
	token := s.signToken(jwt.MapClaims{
		"sub":    "portal-user",
		"tenant": "epic",
		"exp":    time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/patients", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	s.handler.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)
	s.True(s.called)
	s.Require().NotNil(s.seen)
	s.Equal("epic", *s.seen)
}

func (s *AuthMiddlewareSuite) TestM2MTokenWithoutTenantClaimIsUnscoped() {
	token := s.signToken(jwt.MapClaims{
		"sub": "indexer-service",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/practitioners/123", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	s.handler.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)
	s.True(s.called)
	s.Nil(s.seen)
}

func (s *AuthMiddlewareSuite) TestWrongKeyRejected() {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":    "portal-user",
		"tenant": "epic",
	})
	signed, err := token.SignedString([]byte("some-other-key"))
	s.Require().NoError(err)

	req := httptest.NewRequest(http.MethodGet, "/patients", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()

	s.handler.ServeHTTP(rec, req)

	s.Equal(http.StatusUnauthorized, rec.Code)
}
