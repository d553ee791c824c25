package util

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/unhappydog/tgen/internal/i18n"
)

// FileHash returns the hex-encoded SHA-256 of the file at path.
func FileHash(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf(i18n.T("util_error_hash_open_file"), err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf(i18n.T("util_error_hash_read_file"), err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
