// Package fileio provides small helpers for common file I/O tasks.
package fileio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// TempFilePrefix is the prefix used by temporary files written by this
// module. It helps identify the source of excessive writes if callers do not
// clean up after themselves.
const TempFilePrefix = "go-packaging-utils-"

// WriteFile writes content to a file, creating or truncating it.
func WriteFile(path string, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}

// WriteLines writes lines to a file, one per line, with a trailing newline
// after each.
func WriteLines(path string, lines []string) error {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return WriteFile(path, b.String())
}

// WriteTempFile writes content to a temp file and returns its path. Unlike
// os.CreateTemp handles, the file persists on disk after return and is
// visible to other programs. Callers own cleanup. The optional tag helps
// identify the file's origin.
func WriteTempFile(content string, tag string) (string, error) {
	if tag != "" {
		tag += "-"
	}
	path := filepath.Join(os.TempDir(), fmt.Sprintf("%s%s%s.out", TempFilePrefix, tag, uuid.NewString()))
	if err := WriteFile(path, content); err != nil {
		return "", err
	}
	return path, nil
}
