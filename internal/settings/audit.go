package settings

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Severity of an audit finding.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Finding is one observation made by Audit.
type Finding struct {
	Severity Severity `json:"severity" yaml:"severity"`
	Path     string   `json:"path" yaml:"path"`
	Message  string   `json:"message" yaml:"message"`
}

func (f Finding) String() string {
	return fmt.Sprintf("%s: %s: %s", f.Severity, f.Path, f.Message)
}

// Placeholder values shipped in the settings snippets. They are fine for CI
// and the stage box but must never reach production.
var (
	placeholderPasswords = map[string]struct{}{
		"drupal":            {},
		"insecure.password": {},
		"password":          {},
	}
	placeholderAnalyticsAccounts = map[string]struct{}{
		"UA-XXXXXXXX-X": {},
	}
)

// Analytics override location.
const (
	AnalyticsObject = "google_analytics.settings"
	AnalyticsKey    = "account"
)

// Auditor checks resolved settings for values that should not be deployed.
type Auditor struct {
	validate *validator.Validate
}

// NewAuditor creates an Auditor.
func NewAuditor() *Auditor {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &Auditor{validate: v}
}

// Audit inspects s and returns its findings in a stable order. It never
// changes s and an empty result means nothing looked wrong.
func (a *Auditor) Audit(s Settings) []Finding {
	var findings []Finding

	for _, key := range s.Databases.Keys() {
		for _, target := range s.Databases.Targets(key) {
			conn := s.Databases[key][target]
			path := fmt.Sprintf("databases.%s.%s", key, target)
			findings = append(findings, a.auditConnection(path, conn)...)
		}
	}

	if _, err := CompileHosts(s.TrustedHostPatterns); err != nil {
		findings = append(findings, Finding{
			Severity: SeverityError,
			Path:     "trusted_host_patterns",
			Message:  err.Error(),
		})
	}

	if v, ok := s.Config.Lookup(AnalyticsObject, AnalyticsKey); ok {
		if account, isString := v.(string); isString {
			if _, placeholder := placeholderAnalyticsAccounts[account]; placeholder {
				findings = append(findings, Finding{
					Severity: SeverityWarning,
					Path:     fmt.Sprintf("config.%s.%s", AnalyticsObject, AnalyticsKey),
					Message:  fmt.Sprintf("analytics account %q is a placeholder", account),
				})
			}
		}
	}

	return findings
}

func (a *Auditor) auditConnection(path string, conn DatabaseConnection) []Finding {
	var findings []Finding

	if err := a.validate.Struct(conn); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				findings = append(findings, Finding{
					Severity: SeverityError,
					Path:     path + "." + fe.Field(),
					Message:  fmt.Sprintf("failed %q validation", fe.Tag()),
				})
			}
		} else {
			findings = append(findings, Finding{Severity: SeverityError, Path: path, Message: err.Error()})
		}
	}

	if _, placeholder := placeholderPasswords[conn.Password]; placeholder {
		findings = append(findings, Finding{
			Severity: SeverityWarning,
			Path:     path + ".password",
			Message:  "password is a well-known placeholder",
		})
	}
	if conn.Password == "" {
		findings = append(findings, Finding{
			Severity: SeverityWarning,
			Path:     path + ".password",
			Message:  "password is empty",
		})
	}

	return findings
}

// HasErrors reports whether any finding is an error.
func HasErrors(findings []Finding) bool {
	for _, f := range findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}
