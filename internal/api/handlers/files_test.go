package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/govault-app/vault-service/internal/listing"
	"github.com/govault-app/vault-service/internal/vault"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFileRouter(t *testing.T, files map[string]string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	root := t.TempDir()
	for rel, content := range files {
		abs := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(abs), 0755))
		require.NoError(t, os.WriteFile(abs, []byte(content), 0644))
	}

	v, err := vault.Open(root)
	require.NoError(t, err)

	h := &Handler{Vault: v}
	r := gin.New()
	r.GET("/api/files/info", h.FileInfo)
	return r
}

func TestFileInfoReportsHiddenFlag(t *testing.T) {
	r := newFileRouter(t, map[string]string{
		".secret": "s",
		"a.txt":   "a",
	})

	var resp struct {
		Entry listing.FileEntry `json:"entry"`
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/files/info?path=.secret", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Entry.IsHidden)
	assert.Equal(t, ".secret", resp.Entry.Name)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/files/info?path=a.txt", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Entry.IsHidden)
	assert.Equal(t, "txt", resp.Entry.Extension)
}

func TestFileInfoMissingFile(t *testing.T) {
	r := newFileRouter(t, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/files/info?path=nope.txt", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
