package vault

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Vault is the local directory tree the service manages. All client-supplied
// paths are relative to the root and resolved through Resolve so they can
// never escape it.
type Vault struct {
	root string
}

// Open creates the root directory if needed and returns the vault handle.
func Open(root string) (*Vault, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("invalid vault root %q: %v", root, err)
	}
	if err := os.MkdirAll(abs, 0755); err != nil {
		return nil, fmt.Errorf("failed to create vault root: %v", err)
	}
	return &Vault{root: abs}, nil
}

func (v *Vault) Root() string {
	return v.root
}

// Resolve maps a vault-relative path onto an absolute path inside the root.
// Traversal attempts ("..", absolute paths) are rejected.
func (v *Vault) Resolve(rel string) (string, error) {
	rel = strings.TrimSpace(rel)
	rel = strings.TrimPrefix(rel, "/")
	if rel == "" || rel == "." {
		return v.root, nil
	}

	abs := filepath.Join(v.root, filepath.Clean(rel))
	if abs != v.root && !strings.HasPrefix(abs, v.root+string(filepath.Separator)) {
		return "", fmt.Errorf("path %q escapes the vault", rel)
	}
	return abs, nil
}

// Rel converts an absolute path inside the vault back to its relative form.
func (v *Vault) Rel(abs string) string {
	rel, err := filepath.Rel(v.root, abs)
	if err != nil {
		return abs
	}
	return filepath.ToSlash(rel)
}
