package utils

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/alfon96/askenzo-api/models"
)

func testContextWithToken(token string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/", nil)
	if token != "" {
		c.Request.Header.Set("Authorization", "Bearer "+token)
	}
	return c
}

func TestGenerateAndVerifyJWT(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateJWT(7, models.RoleTourist)
	if err != nil {
		t.Fatalf("GenerateJWT() error = %v", err)
	}

	claims, err := VerifyJWT(testContextWithToken(token))
	if err != nil {
		t.Fatalf("VerifyJWT() error = %v", err)
	}
	if role, _ := claims["role"].(string); role != "Tourist" {
		t.Errorf("role claim = %q, want Tourist", role)
	}
	if id, _ := claims["user_id"].(float64); id != 7 {
		t.Errorf("user_id claim = %v, want 7", claims["user_id"])
	}
}

func TestVerifyJWTMissingHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	if _, err := VerifyJWT(testContextWithToken("")); err == nil {
		t.Error("VerifyJWT() without header succeeded")
	}
}

func TestVerifyJWTExpired(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	claims := jwt.MapClaims{
		"user_id": 7,
		"role":    "Tourist",
		"exp":     time.Now().Add(-time.Hour).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := VerifyJWTString(expired); err == nil {
		t.Error("VerifyJWTString() accepted an expired token")
	}
}

func TestVerifyJWTWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	claims := jwt.MapClaims{"user_id": 7, "role": "Tourist", "exp": time.Now().Add(time.Hour).Unix()}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := VerifyJWTString(forged); err == nil {
		t.Error("VerifyJWTString() accepted a token signed with the wrong secret")
	}
}
