package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/sdmc-web/envsettings/internal/environ"
	"github.com/sdmc-web/envsettings/internal/settings"
)

// writePHP renders s as a settings.php include. Sections are emitted only
// for what the resolvers produced, so including the file never clobbers a
// framework default that was not meant to change.
func writePHP(w io.Writer, s settings.Settings, profiles []string) error {
	var b strings.Builder

	b.WriteString("<?php\n\n/**\n * @file\n * Generated by envsettings.")
	if len(profiles) > 0 {
		fmt.Fprintf(&b, " Profiles: %s.", strings.Join(profiles, ", "))
	} else {
		b.WriteString(" No profile matched.")
	}
	b.WriteString("\n */\n")

	if s.CI {
		fmt.Fprintf(&b, "\n$_ENV[%s] = TRUE;\n", phpQuote(environ.EnvCI))
	}

	if len(s.Environment) > 0 {
		b.WriteString("\n")
		for _, a := range s.Environment {
			fmt.Fprintf(&b, "putenv(%s);\n", phpQuote(a.String()))
		}
	}

	if s.Databases != nil {
		b.WriteString("\n$databases = [\n")
		for _, key := range s.Databases.Keys() {
			fmt.Fprintf(&b, "  %s => [\n", phpQuote(key))
			for _, target := range s.Databases.Targets(key) {
				conn := s.Databases[key][target]
				fmt.Fprintf(&b, "    %s => [\n", phpQuote(target))
				for _, field := range [][2]string{
					{"database", conn.Database},
					{"username", conn.Username},
					{"password", conn.Password},
					{"host", conn.Host},
					{"port", conn.Port},
					{"namespace", conn.Namespace},
					{"driver", conn.Driver},
					{"prefix", conn.Prefix},
				} {
					fmt.Fprintf(&b, "      %s => %s,\n", phpQuote(field[0]), phpQuote(field[1]))
				}
				b.WriteString("    ],\n")
			}
			b.WriteString("  ],\n")
		}
		b.WriteString("];\n")
	}

	if s.TrustedHostPatterns != nil {
		b.WriteString("\n$settings['trusted_host_patterns'] = [\n")
		for _, p := range s.TrustedHostPatterns {
			fmt.Fprintf(&b, "  %s,\n", phpQuote(p))
		}
		b.WriteString("];\n")
	}

	if len(s.Config) > 0 {
		b.WriteString("\n")
		for _, ov := range s.Config {
			value, err := phpValue(ov.Value)
			if err != nil {
				return fmt.Errorf("config override %s: %w", ov.Path(), err)
			}
			fmt.Fprintf(&b, "$config[%s][%s] = %s;\n", phpQuote(ov.Object), phpQuote(ov.Key), value)
		}
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write PHP settings: %w", err)
	}
	return nil
}

// phpQuote returns s as a single-quoted PHP string literal.
func phpQuote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`)
	return "'" + r.Replace(s) + "'"
}

// phpValue renders a config override value as a PHP literal.
func phpValue(v any) (string, error) {
	switch val := v.(type) {
	case bool:
		if val {
			return "TRUE", nil
		}
		return "FALSE", nil
	case string:
		return phpQuote(val), nil
	case nil:
		return "NULL", nil
	default:
		return "", fmt.Errorf("unsupported config value type %T", v)
	}
}
