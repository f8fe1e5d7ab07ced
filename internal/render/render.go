package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sdmc-web/envsettings/internal/environ"
	"github.com/sdmc-web/envsettings/internal/settings"
)

// Format names an output format.
type Format string

const (
	FormatJSON   Format = "json"
	FormatYAML   Format = "yaml"
	FormatPHP    Format = "php"
	FormatDotenv Format = "dotenv"
)

// Formats lists every supported format.
var Formats = []Format{FormatJSON, FormatYAML, FormatPHP, FormatDotenv}

// ErrUnknownFormat is returned for a format name Write does not support.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat validates a format name (case-insensitive).
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownFormat, name)
}

// Options control rendering.
type Options struct {
	Format Format

	// Redact hides database passwords.
	Redact bool

	// Profiles are the names of the resolvers that matched. They are
	// included as a header or field where the format allows it.
	Profiles []string
}

// document is the JSON and YAML shape.
type document struct {
	Profiles []string          `json:"profiles" yaml:"profiles"`
	Settings settings.Settings `json:"settings" yaml:"settings"`
}

// Write renders s to w.
func Write(w io.Writer, s settings.Settings, opts Options) error {
	if opts.Redact {
		s = s.Redacted()
	}
	profiles := opts.Profiles
	if profiles == nil {
		profiles = []string{}
	}

	switch opts.Format {
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(document{Profiles: profiles, Settings: s}); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(document{Profiles: profiles, Settings: s}); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return enc.Close()
	case FormatPHP:
		return writePHP(w, s, profiles)
	case FormatDotenv:
		return writeDotenv(w, s)
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, opts.Format)
	}
}

func writeDotenv(w io.Writer, s settings.Settings) error {
	vars := s.EnvMap(environ.EnvCI)
	if len(vars) == 0 {
		return nil
	}
	out, err := environ.MarshalDotenv(vars)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, out+"\n"); err != nil {
		return fmt.Errorf("failed to write dotenv: %w", err)
	}
	return nil
}
