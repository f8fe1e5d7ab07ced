package api

import (
	"log/slog"
	"net/http"

	"github.com/sdmc-web/envsettings/internal/api/shared"
	"github.com/sdmc-web/envsettings/internal/resolver"
	"github.com/sdmc-web/envsettings/internal/settings"
)

// SettingsResponse is the body of GET /settings.
type SettingsResponse struct {
	Profiles []string          `json:"profiles"`
	Settings settings.Settings `json:"settings"`
}

// HostCheckRequest is built from the query string of GET /hosts/check.
type HostCheckRequest struct {
	Host string `validate:"required,max=255"`
}

// HostCheckResponse is the body of GET /hosts/check.
type HostCheckResponse struct {
	Host    string `json:"host"`
	Trusted bool   `json:"trusted"`
	Pattern string `json:"pattern,omitempty"`
}

// SettingsHandler serves one immutable resolution result.
type SettingsHandler struct {
	body   SettingsResponse
	hosts  *settings.TrustedHosts
	logger *slog.Logger
}

// NewSettingsHandler creates a SettingsHandler. Passwords are redacted once
// here and never leave the process in clear text.
func NewSettingsHandler(result resolver.Result, hosts *settings.TrustedHosts, logger *slog.Logger) *SettingsHandler {
	return &SettingsHandler{
		body: SettingsResponse{
			Profiles: result.Matched(),
			Settings: result.Settings().Redacted(),
		},
		hosts:  hosts,
		logger: logger,
	}
}

// Health reports liveness.
func (h *SettingsHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		h.logger.Error("failed to write health check response", "error", err)
	}
}

// GetSettings returns the redacted resolved settings.
func (h *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.body)
}

// CheckHost reports whether the host query parameter would be trusted.
func (h *SettingsHandler) CheckHost(w http.ResponseWriter, r *http.Request) {
	req := HostCheckRequest{Host: r.URL.Query().Get("host")}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "query parameter host is required", err)
		return
	}

	pattern, ok := h.hosts.Match(req.Host)
	shared.RespondWithJSON(w, r, http.StatusOK, HostCheckResponse{
		Host:    req.Host,
		Trusted: ok,
		Pattern: pattern,
	})
}
