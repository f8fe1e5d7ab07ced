package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdmc-web/envsettings/internal/environ"
	"github.com/sdmc-web/envsettings/internal/platform/logger"
	"github.com/sdmc-web/envsettings/internal/resolver"
	"github.com/sdmc-web/envsettings/internal/settings"
)

var stageEnv = map[string]string{"SDMC_ENV": "stage", "PATH": os.Getenv("PATH")}

// runCLI executes the command tree in-process against a fixed environment.
func runCLI(t *testing.T, env map[string]string, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	root := newRootCommand(options{
		stdin:   strings.NewReader(""),
		stdout:  &stdout,
		stderr:  &stderr,
		environ: func() environ.Snapshot { return environ.FromMap(env) },
	})
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestResolveJSON(t *testing.T) {
	out, _, err := runCLI(t, stageEnv, "resolve")
	require.NoError(t, err)

	var doc struct {
		Profiles []string       `json:"profiles"`
		Settings map[string]any `json:"settings"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, []string{"stage"}, doc.Profiles)
	assert.Contains(t, doc.Settings, "databases")
	assert.Contains(t, doc.Settings, "trusted_host_patterns")
	assert.Contains(t, out, "insecure.password")
}

func TestResolveNothingMatched(t *testing.T) {
	out, _, err := runCLI(t, map[string]string{"SDMC_ENV": "staging"}, "resolve")
	require.NoError(t, err)
	assert.JSONEq(t, `{"profiles": [], "settings": {}}`, out)
}

func TestResolvePHPRedacted(t *testing.T) {
	out, _, err := runCLI(t, map[string]string{"BITBUCKET_COMMIT": ""}, "resolve", "--format", "php", "--redact")
	require.NoError(t, err)
	assert.Contains(t, out, "$_ENV['CI'] = TRUE;")
	assert.Contains(t, out, "'host' => '127.0.0.1',")
	assert.NotContains(t, out, "'password' => 'drupal'")
}

func TestResolveFormatFromEnvironmentVariable(t *testing.T) {
	t.Setenv("ENVSETTINGS_OUTPUT_FORMAT", "dotenv")

	out, _, err := runCLI(t, stageEnv, "resolve")
	require.NoError(t, err)
	assert.Equal(t, "AH_SITE_ENVIRONMENT=\"stg\"\n", out)
}

func TestResolveInvalidFormat(t *testing.T) {
	_, _, err := runCLI(t, stageEnv, "resolve", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration validation failed")
}

func TestLogLevelWarningAlias(t *testing.T) {
	out, stderr, err := runCLI(t, stageEnv, "--log-level", "warning", "resolve")
	require.NoError(t, err)
	assert.Contains(t, out, `"stage"`)
	assert.NotContains(t, stderr, "settings resolved", "info logs are filtered at warning level")
}

func TestResolveProfileFilter(t *testing.T) {
	env := map[string]string{"SDMC_ENV": "stage", "BITBUCKET_COMMIT": "abc"}

	out, _, err := runCLI(t, env, "--profile", "bitbucket", "resolve")
	require.NoError(t, err)
	assert.Contains(t, out, `"bitbucket"`)
	assert.NotContains(t, out, "trusted_host_patterns")

	_, _, err = runCLI(t, env, "--profile", "prod", "resolve")
	assert.ErrorIs(t, err, resolver.ErrUnknownProfile)
}

func TestEnvFileOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stage.env")
	require.NoError(t, os.WriteFile(path, []byte("SDMC_ENV=stage\n"), 0o600))

	out, _, err := runCLI(t, map[string]string{}, "--env-file", path, "export")
	require.NoError(t, err)
	assert.Equal(t, "AH_SITE_ENVIRONMENT=\"stg\"\n", out)
}

func TestExport(t *testing.T) {
	env := map[string]string{"SDMC_ENV": "stage", "BITBUCKET_COMMIT": "abc"}

	out, _, err := runCLI(t, env, "export")
	require.NoError(t, err)
	assert.Equal(t, "AH_SITE_ENVIRONMENT=\"stg\"\nCI=\"true\"\n", out)

	out, _, err = runCLI(t, env, "export", "--shell")
	require.NoError(t, err)
	assert.Equal(t, "export AH_SITE_ENVIRONMENT='stg'\nexport CI='true'\n", out)

	out, _, err = runCLI(t, map[string]string{}, "export")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestShellQuote(t *testing.T) {
	assert.Equal(t, `'plain'`, shellQuote("plain"))
	assert.Equal(t, `'it'\''s'`, shellQuote("it's"))
	assert.Equal(t, `''`, shellQuote(""))
}

func TestCheckHost(t *testing.T) {
	out, _, err := runCLI(t, stageEnv, "check-host", "stage.loc", "LOCALHOST:8080")
	require.NoError(t, err)
	assert.Contains(t, out, "stage.loc")
	assert.Contains(t, out, `^stage\.loc$`)

	out, _, err = runCLI(t, stageEnv, "check-host", "stage.loc", "evil.example.com")
	require.ErrorIs(t, err, errUntrustedHosts)
	assert.Contains(t, err.Error(), "evil.example.com")
	assert.Contains(t, out, "false")
}

func TestCheckHostWithoutPatterns(t *testing.T) {
	_, _, err := runCLI(t, map[string]string{"BITBUCKET_COMMIT": "abc"}, "check-host", "anything.example")
	assert.NoError(t, err)
}

func TestDoctor(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })

	out, _, err := runCLI(t, stageEnv, "doctor")
	require.NoError(t, err, "placeholders are warnings")
	assert.Contains(t, out, "databases.default.default.password")
	assert.Contains(t, out, "config.google_analytics.settings.account")

	_, _, err = runCLI(t, stageEnv, "doctor", "--strict")
	assert.ErrorIs(t, err, errAuditFailed)

	out, _, err = runCLI(t, map[string]string{}, "doctor", "--strict")
	require.NoError(t, err)
	assert.Equal(t, "no findings\n", out)
}

func TestFormatFindingColors(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = noColor })

	line := formatFinding(settings.Finding{Severity: settings.SeverityError, Path: "databases.default.default.port", Message: "bad"})
	assert.Contains(t, line, "\x1b[")
	assert.Contains(t, line, ": databases.default.default.port: bad")
}

func TestProfiles(t *testing.T) {
	out, _, err := runCLI(t, stageEnv, "profiles")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Regexp(t, `^NAME\s+MATCHED\s+DESCRIPTION`, lines[0])
	assert.Regexp(t, `^bitbucket\s+false\s+`, lines[1])
	assert.Regexp(t, `^stage\s+true\s+`, lines[2])
}

func TestRunAppliesDerivedEnvironment(t *testing.T) {
	out, _, err := runCLI(t, stageEnv, "run", "--", "sh", "-c", `printf '%s' "$AH_SITE_ENVIRONMENT"`)
	require.NoError(t, err)
	assert.Equal(t, "stg", out)
}

func TestRunPassesExitStatus(t *testing.T) {
	_, _, err := runCLI(t, stageEnv, "run", "--", "sh", "-c", "exit 3")

	var exitErr *exitCodeError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 3, exitErr.code)
}

func TestRunMissingCommand(t *testing.T) {
	_, _, err := runCLI(t, stageEnv, "run", "--", "envsettings-no-such-binary")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to run envsettings-no-such-binary")
}

func TestExecuteExitCodes(t *testing.T) {
	var stderr bytes.Buffer
	opts := options{
		stdin:   strings.NewReader(""),
		stdout:  io.Discard,
		stderr:  &stderr,
		environ: func() environ.Snapshot { return environ.FromMap(stageEnv) },
	}

	root := newRootCommand(opts)
	root.SetArgs([]string{"profiles"})
	assert.Equal(t, 0, execute(root, &stderr))

	root = newRootCommand(opts)
	root.SetArgs([]string{"check-host", "evil.example.com"})
	assert.Equal(t, 1, execute(root, &stderr))
	assert.Contains(t, stderr.String(), "envsettings: untrusted hosts")

	root = newRootCommand(opts)
	root.SetArgs([]string{"run", "--", "sh", "-c", "exit 4"})
	assert.Equal(t, 4, execute(root, &stderr))
}

func TestServeHTTPGracefulShutdown(t *testing.T) {
	log, buf := logger.GetTestLogger(t)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := &http.Server{
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, "OK")
		}),
		ReadHeaderTimeout: time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serveHTTP(ctx, srv, ln, time.Second, log) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/health")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, resp.Body.Close())
	require.NoError(t, err)
	assert.Equal(t, "OK", string(body))

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
	logger.AssertLogContains(t, buf, "server shutdown completed")
}
