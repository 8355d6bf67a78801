package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticator_Login(t *testing.T) {
	a := NewAuthenticator("s3cret", "test-secret", time.Hour)

	_, _, err := a.Login("wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	token, expiresAt, err := a.Login("s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := a.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, operatorSubject, claims.Subject)
}

func TestAuthenticator_Disabled(t *testing.T) {
	a := NewAuthenticator("", "", 0)
	assert.False(t, a.Enabled())

	_, _, err := a.Login("")
	assert.ErrorIs(t, err, ErrDisabled)
}

func TestAuthenticator_ParseTokenRejects(t *testing.T) {
	a := NewAuthenticator("pw", "test-secret", time.Hour)

	expired := NewAuthenticator("pw", "test-secret", time.Minute)
	expired.now = func() time.Time { return time.Now().Add(-time.Hour) }
	expiredToken, _, err := expired.IssueToken()
	require.NoError(t, err)

	other := NewAuthenticator("pw", "another-secret", time.Hour)
	foreignToken, _, err := other.IssueToken()
	require.NoError(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Issuer: issuer, Subject: operatorSubject})
	noneToken, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "not.a.token"},
		{name: "expired", token: expiredToken},
		{name: "wrong secret", token: foreignToken},
		{name: "unsigned", token: noneToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := a.ParseToken(tt.token)
			assert.Error(t, err)
		})
	}
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	a := NewAuthenticator("pw", "test-secret", time.Hour)
	token, _, err := a.IssueToken()
	require.NoError(t, err)

	tests := []struct {
		name     string
		auth     *Authenticator
		header   string
		cookie   string
		expected int
	}{
		{name: "disabled lets everything through", auth: NewAuthenticator("", "", 0), expected: http.StatusOK},
		{name: "no token", auth: a, expected: http.StatusUnauthorized},
		{name: "bad token", auth: a, header: "Bearer nope", expected: http.StatusUnauthorized},
		{name: "wrong scheme", auth: a, header: "Basic " + token, expected: http.StatusUnauthorized},
		{name: "bearer token", auth: a, header: "Bearer " + token, expected: http.StatusOK},
		{name: "cookie token", auth: a, cookie: token, expected: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(tt.auth.Middleware())
			r.GET("/api/v1/clients", func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(http.MethodGet, "/api/v1/clients", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: CookieName, Value: tt.cookie})
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expected, w.Code)
		})
	}
}
