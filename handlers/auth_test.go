package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/alfon96/askenzo-api/models"
	"github.com/alfon96/askenzo-api/utils"
)

type testEnv struct {
	tourists    *fakeTouristService
	hosts       *fakeHostService
	experiences *fakeExperienceService
	discoveries *fakeDiscoveryService
	likes       *fakeLikeService
	router      *gin.Engine
}

// newTestEnv wires the handlers over in-memory services with the same route
// table and role sets the server uses.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	t.Setenv("JWT_SECRET", "handler-test-secret")
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		tourists:    &fakeTouristService{},
		hosts:       &fakeHostService{},
		experiences: &fakeExperienceService{},
		discoveries: &fakeDiscoveryService{},
		likes:       &fakeLikeService{},
	}

	auth := &Authorizer{Tourists: env.tourists, Hosts: env.hosts}
	admin := auth.RequireRoles(models.RoleAdmin)
	anyRole := auth.RequireRoles(models.RoleAdmin, models.RoleHost, models.RoleTourist)
	touristOnly := auth.RequireRoles(models.RoleTourist)

	th := &TouristHandler{Tourists: env.tourists, Experiences: env.experiences, Likes: env.likes}
	eh := &ExperienceHandler{Experiences: env.experiences}
	dh := &DiscoveryHandler{Discoveries: env.discoveries}

	r := gin.New()
	tourist := r.Group("/tourist")
	tourist.POST("/signup", th.Signup)
	tourist.POST("/signin", th.Signin)
	tourist.GET("", touristOnly, th.GetMyData)
	tourist.PATCH("", touristOnly, th.UpdateMyInfo)
	tourist.PATCH("/update_password", touristOnly, th.UpdateMyPassword)
	tourist.DELETE("", touristOnly, th.DeleteMyAccount)
	tourist.GET("/likes_list", touristOnly, th.GetMyLikes)
	tourist.POST("/toggle_like", touristOnly, th.ToggleLike)

	experience := r.Group("/experiences")
	experience.GET("", anyRole, eh.Get)
	experience.POST("/new", admin, eh.Create)

	discovery := r.Group("/discoveries")
	discovery.GET("", anyRole, dh.Get)
	discovery.GET("/distance", anyRole, dh.Distance)
	discovery.POST("", admin, dh.Create)

	env.router = r
	return env
}

func (env *testEnv) do(t *testing.T, method, target, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return body
}

func (env *testEnv) addTourist(t *testing.T, email, password string, stateID int) (models.TouristUser, string) {
	t.Helper()
	hashed, err := utils.HashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	tourist := models.TouristUser{Name: "Test", Email: email, Password: hashed, StateID: stateID}
	if err := env.tourists.Create(&tourist); err != nil {
		t.Fatalf("seed tourist: %v", err)
	}
	token, err := utils.GenerateJWT(tourist.ID, models.RoleTourist)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return tourist, token
}

func TestRequireRolesMissingToken(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/tourist", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if got := decodeBody(t, w)["error"]; got != "Incorrect token" {
		t.Errorf("error = %v, want Incorrect token", got)
	}
}

func TestRequireRolesWrongRole(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.addTourist(t, "t@example.com", "pass", models.StateActive)

	w := env.do(t, http.MethodPost, "/experiences/new", token, gin.H{})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if got := decodeBody(t, w)["error"]; got != "Unauthorized user." {
		t.Errorf("error = %v, want Unauthorized user.", got)
	}
}

func TestRequireRolesDeactivatedTourist(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.addTourist(t, "t@example.com", "pass", models.StateInactive)

	w := env.do(t, http.MethodGet, "/tourist", token, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if got := decodeBody(t, w)["error"]; got != "This user has been deactivated." {
		t.Errorf("error = %v, want deactivation message", got)
	}
}

func TestRequireRolesDeletedTourist(t *testing.T) {
	env := newTestEnv(t)
	tourist, token := env.addTourist(t, "t@example.com", "pass", models.StateActive)
	if err := env.tourists.Delete(&tourist); err != nil {
		t.Fatalf("delete tourist: %v", err)
	}

	w := env.do(t, http.MethodGet, "/tourist", token, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestRequireRolesAdminToken(t *testing.T) {
	env := newTestEnv(t)
	token, err := utils.GenerateJWT(0, models.RoleAdmin)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	w := env.do(t, http.MethodPost, "/experiences/new", token, gin.H{
		"title":            "Kayak",
		"description":      "on the lake",
		"difficulty_id":    1,
		"price":            gin.H{"amount": 25, "currency": "EUR"},
		"duration":         "01:00:00",
		"img_preview_path": "kayak.png",
		"state_id":         models.StateActive,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body %s", w.Code, w.Body.String())
	}

	// The admin role also satisfies any-of-three routes.
	w = env.do(t, http.MethodGet, "/experiences", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d, want 200, body %s", w.Code, w.Body.String())
	}
}
