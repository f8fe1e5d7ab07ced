package environ

import (
	"errors"
	"fmt"

	"github.com/joho/godotenv"
)

// ErrNoDotenvFiles is returned by LoadDotenv when called without any path.
var ErrNoDotenvFiles = errors.New("no dotenv files given")

// LoadDotenv reads the given dotenv files and overlays them on base.
// Files are applied in order, so a later file overrides an earlier one, and
// file values override the base snapshot.
func LoadDotenv(base Snapshot, paths ...string) (Snapshot, error) {
	if len(paths) == 0 {
		return base, ErrNoDotenvFiles
	}

	merged := make(map[string]string)
	for _, path := range paths {
		vars, err := godotenv.Read(path)
		if err != nil {
			return base, fmt.Errorf("failed to read dotenv file %s: %w", path, err)
		}
		for k, v := range vars {
			merged[k] = v
		}
	}

	return base.With(merged), nil
}

// MarshalDotenv renders variables in dotenv format with sorted keys.
func MarshalDotenv(vars map[string]string) (string, error) {
	out, err := godotenv.Marshal(vars)
	if err != nil {
		return "", fmt.Errorf("failed to marshal dotenv: %w", err)
	}
	return out, nil
}
