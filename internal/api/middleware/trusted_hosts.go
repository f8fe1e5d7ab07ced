package middleware

import (
	"errors"
	"net/http"

	"github.com/sdmc-web/envsettings/internal/api/shared"
	"github.com/sdmc-web/envsettings/internal/platform/logger"
	"github.com/sdmc-web/envsettings/internal/settings"
)

// UntrustedHostMessage is the body sent for a rejected Host header.
const UntrustedHostMessage = "The provided host name is not valid for this server."

var errUntrustedHost = errors.New("host header did not match any trusted host pattern")

// TrustedHosts rejects requests whose Host header matches none of the
// patterns with 400 Bad Request. With no patterns every host is accepted.
func TrustedHosts(hosts *settings.TrustedHosts) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			pattern, ok := hosts.Match(r.Host)
			if !ok {
				logger.FromContext(r.Context()).Warn("untrusted host rejected", "host", r.Host)
				shared.RespondWithError(w, r, http.StatusBadRequest, UntrustedHostMessage, errUntrustedHost)
				return
			}
			if pattern != "" {
				logger.FromContext(r.Context()).Debug("trusted host accepted", "host", r.Host, "pattern", pattern)
			}
			next.ServeHTTP(w, r)
		})
	}
}
