package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	algohttp "algotrace/internal/http"
	"algotrace/pkg/config"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader(stdin))
	err := cmd.Execute()
	return out.String(), err
}

func noEnv(string) (string, bool) { return "", false }

func TestSortCommand(t *testing.T) {
	out, err := run(t, "", "sort", "bubble", "2", "1")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"type":"swap","i":0,"j":1}]`, out)

	_, err = run(t, "", "sort", "bogo", "1")
	assert.Error(t, err)

	_, err = run(t, "", "sort", "merge", "1", "x")
	assert.Error(t, err)
}

func TestStructureCommand(t *testing.T) {
	out, err := run(t, "", "ds", "stack", "push", "--state", "[1,2]", "--value", "3")
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"steps": [
			{"type":"highlight","index":1},
			{"type":"append","value":3},
			{"type":"top","index":2}
		],
		"new_state": [1,2,3]
	}`, out)

	out, err = run(t, "", "ds", "queue", "dequeue")
	require.NoError(t, err)
	assert.JSONEq(t, `{"steps":[{"type":"noop","reason":"empty"}],"new_state":[]}`, out)

	_, err = run(t, "", "ds", "stack", "push")
	assert.Error(t, err)
}

func TestReplayCommand(t *testing.T) {
	steps := `[{"type":"swap","i":0,"j":2},{"type":"overwrite","index":1,"value":"x"}]`

	out, err := run(t, steps, "replay", "--state", `["a","b","c"]`)
	require.NoError(t, err)
	assert.JSONEq(t, `{"steps":2,"state":["c","x","a"]}`, out)

	path := filepath.Join(t.TempDir(), "steps.json")
	require.NoError(t, os.WriteFile(path, []byte(steps), 0o600))
	out, err = run(t, "", "replay", "--state", `["a","b","c"]`, "--steps", path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"steps":2,"state":["c","x","a"]}`, out)

	_, err = run(t, `[{"type":"swap","i":0,"j":5}]`, "replay", "--state", `[1]`)
	assert.Error(t, err)
}

func TestAlgorithmsCommand(t *testing.T) {
	out, err := run(t, "", "algorithms")
	require.NoError(t, err)
	assert.Equal(t, "bubble\ninsertion\nmerge\nquick\n", out)
}

func TestInitConfig(t *testing.T) {
	cfg, err := initConfig(filepath.Join(t.TempDir(), "missing.yaml"), noEnv)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("http-server:\n  port: 9000\n"), 0o600))

	env := map[string]string{config.EnvLogLevel: "debug"}
	cfg, err = initConfig(path, func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	})
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, config.Default().Limits, cfg.Limits)

	require.NoError(t, os.WriteFile(path, []byte("http-server:\n  port: 70000\n"), 0o600))
	_, err = initConfig(path, noEnv)
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, parseLevel("WARN"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel(""))
}

func TestServe_StopsOnCancel(t *testing.T) {
	cfg := config.Default()
	cfg.Server.Port = 0

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serve(ctx, algohttp.NewServer(cfg, nil, nil)) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after cancel")
	}
}
