package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/govault-app/vault-service/internal/vault"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsCountsHiddenDirectories(t *testing.T) {
	gin.SetMode(gin.TestMode)

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".git"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "docs"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".env"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "photo.png"), []byte("img"), 0644))

	v, err := vault.Open(root)
	require.NoError(t, err)

	h := &Handler{Vault: v}
	r := gin.New()
	r.GET("/api/stats", h.Stats)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Files       int            `json:"files"`
		Directories int            `json:"directories"`
		Hidden      int            `json:"hidden"`
		Categories  map[string]int `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, 2, resp.Files)
	assert.Equal(t, 2, resp.Directories)
	assert.Equal(t, 2, resp.Hidden, "hidden files and hidden directories both count")
	assert.Equal(t, 1, resp.Categories["images"])
}
