package transfer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ParseFileKind maps user input ("json", "csv", "xlsx", "md" or "report")
// to a FileKind.
func ParseFileKind(s string) (FileKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FileJSON, nil
	case "csv":
		return FileCSV, nil
	case "xlsx":
		return FileXLSX, nil
	case "md", "report":
		return FileMarkdown, nil
	default:
		return "", fmt.Errorf("transfer: unknown export format %q", s)
	}
}

// WriteFile writes data next to path first and renames it into place, so a
// reader never sees half an export.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
