package state

import (
	"fmt"
	"os"      // For reading and writing the record file
	"strings" // For stripping whitespace and quotes

	"digispark-uploader/internal/logger"
)

// Load reads the toolchain path record at path and returns the executable path
// it holds. The record is written quoted so paths with spaces survive being
// pasted into a shell; one leading and one trailing double quote are stripped.
// A missing record is returned as an error wrapping fs.ErrNotExist.
func Load(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	exe := strings.TrimSpace(string(raw))
	exe = strings.TrimPrefix(exe, `"`)
	exe = strings.TrimSuffix(exe, `"`)
	if exe == "" {
		return "", fmt.Errorf("path record %s is empty", path)
	}

	logger.Debug("[DEBUG] Path record %s points to %s\n", path, exe)
	return exe, nil
}

// Save overwrites the record at path with the quoted executable path.
func Save(path, exe string) error {
	logger.Debug("[DEBUG] Writing path record %s -> %s\n", path, exe)

	if err := os.WriteFile(path, []byte(`"`+exe+`"`), 0o644); err != nil {
		return fmt.Errorf("failed to write path record %s: %w", path, err)
	}
	return nil
}
