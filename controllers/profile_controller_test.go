package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestProfileCRUD(t *testing.T) {
	r := setupTestRouter(t)

	w, env := doJSON(t, r, http.MethodPost, "/api/profiles", gin.H{
		"profile_type": "Lead",
		"name":         "  Jordan Rivers  ",
		"email":        "jordan@example.test",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := env.Data["profile"].(map[string]interface{})
	require.Equal(t, "lead", created["profile_type"])
	require.Equal(t, "Jordan Rivers", created["name"])
	id := uint(created["id"].(float64))

	w, env = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/profiles/%d", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	fetched := env.Data["profile"].(map[string]interface{})
	require.Equal(t, "jordan@example.test", fetched["email"])

	w, env = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/profiles/%d", id), gin.H{
		"profile_type": "customer",
		"name":         "Jordan Rivers",
		"email":        "jr@example.test",
	})
	require.Equal(t, http.StatusOK, w.Code)
	updated := env.Data["profile"].(map[string]interface{})
	require.Equal(t, "customer", updated["profile_type"])
	require.Equal(t, "jr@example.test", updated["email"])

	w, env = doJSON(t, r, http.MethodGet, "/api/profiles", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, env.Data["items"].([]interface{}), 1)

	w, _ = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/profiles/%d", id), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, env = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/profiles/%d", id), nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "Profile not found", env.Message)
}

func TestCreateProfileValidation(t *testing.T) {
	r := setupTestRouter(t)

	t.Run("missing name", func(t *testing.T) {
		w, _ := doJSON(t, r, http.MethodPost, "/api/profiles", gin.H{
			"profile_type": "customer",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("markup is stripped from name", func(t *testing.T) {
		w, env := doJSON(t, r, http.MethodPost, "/api/profiles", gin.H{
			"profile_type": "customer",
			"name":         "<b>Acme</b> Corp",
		})
		require.Equal(t, http.StatusCreated, w.Code)
		created := env.Data["profile"].(map[string]interface{})
		require.Equal(t, "Acme Corp", created["name"])
	})
}

func TestProfileInvalidID(t *testing.T) {
	r := setupTestRouter(t)

	for _, path := range []string{"/api/profiles/0", "/api/profiles/abc"} {
		w, _ := doJSON(t, r, http.MethodGet, path, nil)
		require.Equal(t, http.StatusBadRequest, w.Code, path)
	}
}
