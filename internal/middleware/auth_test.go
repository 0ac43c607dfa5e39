package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Enstrokes/whisk-whisk-pastry-shop/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

type stubUserRepo struct {
	users map[string]*model.User
}

func (r *stubUserRepo) Create(_ context.Context, u *model.User) error {
	r.users[u.Email] = u
	return nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUserRepo) Count(_ context.Context) (int64, error) { return int64(len(r.users)), nil }

func signToken(t *testing.T, secret, sub string, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": sub,
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func setupProtected(users *stubUserRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", JWTAuth(testSecret, users), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": GetPrincipal(c).Email})
	})
	return r
}

func TestJWTAuth_ValidToken(t *testing.T) {
	users := &stubUserRepo{users: map[string]*model.User{
		"admin@whiskandwhisk.com": {Email: "admin@whiskandwhisk.com"},
	}}
	r := setupProtected(users)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, "admin@whiskandwhisk.com", time.Now().Add(time.Hour)))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "admin@whiskandwhisk.com")
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	r := setupProtected(&stubUserRepo{users: map[string]*model.User{}})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
}

func TestJWTAuth_BadSignature(t *testing.T) {
	users := &stubUserRepo{users: map[string]*model.User{
		"admin@whiskandwhisk.com": {Email: "admin@whiskandwhisk.com"},
	}}
	r := setupProtected(users)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "other-secret", "admin@whiskandwhisk.com", time.Now().Add(time.Hour)))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	users := &stubUserRepo{users: map[string]*model.User{
		"admin@whiskandwhisk.com": {Email: "admin@whiskandwhisk.com"},
	}}
	r := setupProtected(users)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, "admin@whiskandwhisk.com", time.Now().Add(-time.Hour)))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// A syntactically valid token for an account that no longer exists must be
// rejected: the middleware re-checks the user row on every request.
func TestJWTAuth_DeletedAccount(t *testing.T) {
	r := setupProtected(&stubUserRepo{users: map[string]*model.User{}})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, "ghost@whiskandwhisk.com", time.Now().Add(time.Hour)))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
