package listing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(entries []FileEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func TestSortDirectoriesFirstCaseInsensitiveName(t *testing.T) {
	entries := []FileEntry{
		{Name: "b.txt", Size: 100},
		{Name: "A", Size: 0, IsDir: true},
		{Name: "a.txt", Size: 50},
	}

	got := Sort(entries, SortSpec{Key: SortByName, Ascending: true})
	assert.Equal(t, []string{"A", "a.txt", "b.txt"}, names(got))
}

func TestSortIsPermutation(t *testing.T) {
	entries := []FileEntry{
		{Name: "c.txt", Size: 3},
		{Name: "a.txt", Size: 1},
		{Name: "b.txt", Size: 2},
		{Name: "a.txt", Size: 1}, // duplicate must survive
	}

	got := Sort(entries, SortSpec{Key: SortBySize, Ascending: true})
	require.Len(t, got, len(entries))

	counts := map[string]int{}
	for _, e := range entries {
		counts[e.Name]++
	}
	for _, e := range got {
		counts[e.Name]--
	}
	for name, n := range counts {
		assert.Zero(t, n, "entry %s lost or duplicated", name)
	}
}

func TestSortDescendingKeepsDirectoriesFirst(t *testing.T) {
	entries := []FileEntry{
		{Name: "z.txt"},
		{Name: "docs", IsDir: true},
		{Name: "a.txt"},
	}

	got := Sort(entries, SortSpec{Key: SortByName, Ascending: false})
	assert.Equal(t, []string{"docs", "z.txt", "a.txt"}, names(got))
}

func TestSortBySizeDirectoriesAsZero(t *testing.T) {
	entries := []FileEntry{
		{Name: "big.bin", Size: 500},
		{Name: "dir", IsDir: true, Size: 4096},
		{Name: "small.bin", Size: 5},
	}

	got := Sort(entries, SortSpec{Key: SortBySize, Ascending: true})
	assert.Equal(t, []string{"dir", "small.bin", "big.bin"}, names(got))
}

func TestSortByDate(t *testing.T) {
	now := time.Now()
	entries := []FileEntry{
		{Name: "new.txt", ModTime: now},
		{Name: "old.txt", ModTime: now.Add(-48 * time.Hour)},
	}

	got := Sort(entries, SortSpec{Key: SortByDate, Ascending: true})
	assert.Equal(t, []string{"old.txt", "new.txt"}, names(got))

	got = Sort(entries, SortSpec{Key: SortByDate, Ascending: false})
	assert.Equal(t, []string{"new.txt", "old.txt"}, names(got))
}

func TestSortByTypeGroupsByExtension(t *testing.T) {
	entries := []FileEntry{
		{Name: "b.txt", Extension: "txt"},
		{Name: "a.PNG", Extension: "png"},
		{Name: "c.go", Extension: "go"},
	}

	got := Sort(entries, SortSpec{Key: SortByType, Ascending: true})
	assert.Equal(t, []string{"c.go", "a.PNG", "b.txt"}, names(got))
}

func TestSortIsStable(t *testing.T) {
	entries := []FileEntry{
		{Name: "first.txt", Size: 10},
		{Name: "second.txt", Size: 10},
		{Name: "third.txt", Size: 10},
	}

	got := Sort(entries, SortSpec{Key: SortBySize, Ascending: true})
	assert.Equal(t, []string{"first.txt", "second.txt", "third.txt"}, names(got))
}

func TestSortDoesNotModifyInput(t *testing.T) {
	entries := []FileEntry{{Name: "b"}, {Name: "a"}}
	_ = Sort(entries, DefaultSortSpec())
	assert.Equal(t, "b", entries[0].Name)
}
