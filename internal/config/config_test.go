package config

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keyaccel/internal/telemetry"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "keyaccel.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"OTEL_EXPORTER_OTLP_ENDPOINT", "OTEL_SERVICE_NAME",
		"KEYACCEL_LOG_FILE", "KEYACCEL_START_PAGE", "KEYACCEL_TRACE_ENABLED",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "", cfg.LogFile)
	assert.False(t, cfg.Trace.Enabled)
	assert.Equal(t, "keyaccel", cfg.Trace.ServiceName)
	assert.True(t, cfg.Trace.Insecure)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
log_file: /tmp/keyaccel.log
start_page: Modal
trace:
  enabled: true
  endpoint: collector:4318
  service_name: styleguide
`)
	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/keyaccel.log", cfg.LogFile)
	assert.Equal(t, "Modal", cfg.StartPage)
	assert.True(t, cfg.Trace.Enabled)
	assert.Equal(t, "collector:4318", cfg.Trace.Endpoint)
	assert.Equal(t, "styleguide", cfg.Trace.Telemetry().ServiceName)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"), nil)
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "start_page: Buttons\n")
	t.Setenv("KEYACCEL_START_PAGE", "Modal")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "otel:4318")
	t.Setenv("OTEL_SERVICE_NAME", "from-env")

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "Modal", cfg.StartPage)
	assert.True(t, cfg.Trace.Enabled)
	assert.Equal(t, "otel:4318", cfg.Trace.Endpoint)
	assert.Equal(t, "from-env", cfg.Trace.ServiceName)
}

func TestLoad_FlagsWin(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "start_page: Buttons\nlog_file: a.log\n")
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("page", "", "")
	fs.String("log-file", "", "")
	require.NoError(t, fs.Parse([]string{"--page", "Modal"}))

	cfg, err := Load(path, fs)
	require.NoError(t, err)
	assert.Equal(t, "Modal", cfg.StartPage)
	assert.Equal(t, "a.log", cfg.LogFile, "unset flag keeps file value")
}

func TestLoad_TraceWithoutEndpoint(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "trace:\n  enabled: true\n")
	_, err := Load(path, nil)
	assert.ErrorContains(t, err, "trace.endpoint")
}

func TestLoad_OTELEndpointURLExports(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v1/traces" {
			hits.Add(1)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", srv.URL)

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.True(t, cfg.Trace.Enabled)
	assert.Equal(t, srv.URL, cfg.Trace.Endpoint)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p, err := telemetry.NewProvider(ctx, cfg.Trace.Telemetry())
	require.NoError(t, err)
	require.NotNil(t, p)
	_, span := p.Tracer("config-test").Start(ctx, "dispatch")
	span.End()
	require.NoError(t, p.Shutdown(ctx))
	assert.Positive(t, hits.Load())
}
