package helpers

import (
	"encoding/base64"
	"os"
	"path/filepath"
)

// EncodeImage reads the named file from dir and returns its contents
// base64-encoded. A missing or unreadable file is the caller's problem.
func EncodeImage(dir, name string) (string, error) {
	b, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}
