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

type browseResponse struct {
	Entries       []listing.FileEntry `json:"entries"`
	TotalCount    int                 `json:"total_count"`
	FilteredCount int                 `json:"filtered_count"`
	Page          int                 `json:"page"`
	PageSize      int                 `json:"page_size"`
	TotalPages    int                 `json:"total_pages"`
	Warning       string              `json:"warning"`
}

func newBrowseRouter(t *testing.T, files map[string]string) *gin.Engine {
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
	r.GET("/api/browse", h.Browse)
	return r
}

func doBrowse(t *testing.T, r *gin.Engine, query string) browseResponse {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/browse"+query, nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp browseResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestBrowseDefaultsToNameOrderDirsFirst(t *testing.T) {
	r := newBrowseRouter(t, map[string]string{
		"b.txt":        "bb",
		"a.txt":        "aa",
		"sub/file.txt": "x",
	})

	resp := doBrowse(t, r, "")
	require.Len(t, resp.Entries, 3)
	assert.Equal(t, "sub", resp.Entries[0].Name)
	assert.True(t, resp.Entries[0].IsDir)
	assert.Equal(t, "a.txt", resp.Entries[1].Name)
	assert.Equal(t, "b.txt", resp.Entries[2].Name)
	assert.Equal(t, 3, resp.TotalCount)
	assert.Equal(t, 3, resp.FilteredCount)
	assert.Equal(t, 1, resp.TotalPages)
}

func TestBrowseSearchAndCategory(t *testing.T) {
	r := newBrowseRouter(t, map[string]string{
		"photo.PNG":  "img",
		"report.pdf": "doc",
		"notes.txt":  "txt",
	})

	resp := doBrowse(t, r, "?category=images")
	require.Len(t, resp.Entries, 1)
	assert.Equal(t, "photo.PNG", resp.Entries[0].Name)
	assert.Equal(t, 3, resp.TotalCount)
	assert.Equal(t, 1, resp.FilteredCount)

	resp = doBrowse(t, r, "?search=REP")
	require.Len(t, resp.Entries, 1)
	assert.Equal(t, "report.pdf", resp.Entries[0].Name)
}

func TestBrowseHiddenEntries(t *testing.T) {
	r := newBrowseRouter(t, map[string]string{
		".secret": "s",
		"a.txt":   "a",
	})

	resp := doBrowse(t, r, "")
	require.Len(t, resp.Entries, 1)
	assert.Equal(t, "a.txt", resp.Entries[0].Name)

	resp = doBrowse(t, r, "?hidden=true")
	assert.Len(t, resp.Entries, 2)
}

func TestBrowsePaginationClampsOutOfRangePage(t *testing.T) {
	files := map[string]string{}
	for _, n := range []string{"a", "b", "c", "d", "e"} {
		files[n+".txt"] = n
	}
	r := newBrowseRouter(t, files)

	resp := doBrowse(t, r, "?pageSize=2&page=99")
	assert.Equal(t, 3, resp.TotalPages)
	assert.Equal(t, 3, resp.Page)
	assert.Len(t, resp.Entries, 1)
	assert.Equal(t, "e.txt", resp.Entries[0].Name)
}

func TestBrowseSubdirectoryUsesRelativePaths(t *testing.T) {
	r := newBrowseRouter(t, map[string]string{
		"docs/inner.txt": "x",
	})

	resp := doBrowse(t, r, "?path=docs")
	require.Len(t, resp.Entries, 1)
	assert.Equal(t, "docs/inner.txt", resp.Entries[0].Path)
}

func TestBrowseRejectsTraversal(t *testing.T) {
	r := newBrowseRouter(t, map[string]string{"a.txt": "a"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/browse?path=../outside", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBrowseMissingDirectoryReturnsWarning(t *testing.T) {
	r := newBrowseRouter(t, map[string]string{"a.txt": "a"})

	resp := doBrowse(t, r, "?path=no-such-dir")
	assert.Empty(t, resp.Entries)
	assert.NotEmpty(t, resp.Warning)
	assert.Equal(t, 1, resp.TotalPages)
}
