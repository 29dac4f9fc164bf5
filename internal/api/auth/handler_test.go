package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"portfolio-app/config"
	"portfolio-app/database"
	"portfolio-app/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupAuthTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.JWT_SECRET = "test-secret"

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&users.User{}, &users.VerificationToken{}))
	database.DB = db

	r := gin.New()
	r.POST("/login", Login)
	return r
}

func seedUser(t *testing.T, email, password string, verified bool) {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	h := string(hashed)
	require.NoError(t, database.DB.Create(&users.User{
		Email:      email,
		Password:   &h,
		Role:       "admin",
		IsVerified: verified,
	}).Error)
}

func postLogin(r *gin.Engine, email, password string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(gin.H{"email": email, "password": password})
	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginSuccessReturnsToken(t *testing.T) {
	r := setupAuthTest(t)
	seedUser(t, "curator@example.com", "sturdy-pass1", true)

	w := postLogin(r, "curator@example.com", "sturdy-pass1")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["token"])
}

func TestLoginFailureClassification(t *testing.T) {
	r := setupAuthTest(t)
	seedUser(t, "curator@example.com", "sturdy-pass1", true)
	seedUser(t, "pending@example.com", "sturdy-pass1", false)

	testCases := []struct {
		name       string
		email      string
		password   string
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "unknown email",
			email:      "nobody@example.com",
			password:   "whatever1",
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "Invalid login credentials",
		},
		{
			name:       "wrong password",
			email:      "curator@example.com",
			password:   "wrong-pass1",
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "Invalid login credentials",
		},
		{
			name:       "email not confirmed",
			email:      "pending@example.com",
			password:   "sturdy-pass1",
			wantStatus: http.StatusForbidden,
			wantMsg:    "confirm your email",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := postLogin(r, tc.email, tc.password)
			assert.Equal(t, tc.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.wantMsg)
		})
	}
}

func TestPasswordStrength(t *testing.T) {
	assert.True(t, isPasswordStrong("letters123"))
	assert.False(t, isPasswordStrong("short1"))
	assert.False(t, isPasswordStrong("lettersonly"))
	assert.False(t, isPasswordStrong("12345678"))
}
