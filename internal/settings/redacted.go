package settings

import "github.com/sdmc-web/envsettings/internal/redact"

// Redacted returns a deep copy of s with every database password replaced by
// the redaction placeholder. Empty passwords stay empty.
func (s Settings) Redacted() Settings {
	out := s
	if s.Databases != nil {
		out.Databases = make(Databases, len(s.Databases))
		for key, targets := range s.Databases {
			copied := make(map[string]DatabaseConnection, len(targets))
			for target, conn := range targets {
				conn.Password = redact.Credential(conn.Password)
				copied[target] = conn
			}
			out.Databases[key] = copied
		}
	}
	if s.Environment != nil {
		out.Environment = append([]EnvAssignment(nil), s.Environment...)
	}
	if s.TrustedHostPatterns != nil {
		out.TrustedHostPatterns = append([]string(nil), s.TrustedHostPatterns...)
	}
	if s.Config != nil {
		out.Config = append(Overrides(nil), s.Config...)
	}
	return out
}
