package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/ecotrack-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/ecotrack-backend/internal/database/dbtest"
	"github.com/ahmetcoskunkizilkaya/ecotrack-backend/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listedAdminID = "6f1c2a9e-8d3b-4c57-9a0e-2b7d4e1f3c88"

var testCfg = &config.Config{JWTSecret: "test-secret", AdminToken: "admin-token", AdminUserIDs: "  " + listedAdminID + " "}

func signToken(t *testing.T, sub, username, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      sub,
		"username": username,
		"role":     role,
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	s, err := token.SignedString([]byte(testCfg.JWTSecret))
	require.NoError(t, err)
	return s
}

func TestGetUserID(t *testing.T) {
	id := uuid.New()
	app := fiber.New()
	app.Get("/", JWTProtected(testCfg), func(c *fiber.Ctx) error {
		got, err := GetUserID(c)
		if err != nil {
			return c.SendStatus(fiber.StatusTeapot)
		}
		return c.SendString(got.String())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, id.String(), "alice", "user"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "not-a-uuid", "alice", "user"))
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusTeapot, resp.StatusCode)
}

func TestAdminRequired(t *testing.T) {
	db := dbtest.New(t)
	stored := models.User{Username: "dbadmin", Password: "x", Role: models.RoleAdmin}
	require.NoError(t, db.Create(&stored).Error)

	app := fiber.New()
	app.Get("/admin", AdminRequired(db, testCfg), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	tests := []struct {
		name    string
		headers map[string]string
		want    int
	}{
		{"no credentials", nil, http.StatusUnauthorized},
		{"wrong admin token", map[string]string{"X-Admin-Token": "guess"}, http.StatusUnauthorized},
		{"admin token", map[string]string{"X-Admin-Token": "admin-token"}, http.StatusNoContent},
		{"plain user", map[string]string{"Authorization": "Bearer " + signToken(t, uuid.NewString(), "alice", "user")}, http.StatusForbidden},
		{"admin-looking username", map[string]string{"Authorization": "Bearer " + signToken(t, uuid.NewString(), "root", "user")}, http.StatusForbidden},
		{"listed user id", map[string]string{"Authorization": "Bearer " + signToken(t, listedAdminID, "ops", "user")}, http.StatusNoContent},
		{"role claim without stored role", map[string]string{"Authorization": "Bearer " + signToken(t, uuid.NewString(), "carol", "admin")}, http.StatusForbidden},
		{"admin role in db", map[string]string{"Authorization": "Bearer " + signToken(t, stored.ID.String(), "dbadmin", "user")}, http.StatusNoContent},
		{"bad signature", map[string]string{"Authorization": "Bearer abc.def.ghi"}, http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}
