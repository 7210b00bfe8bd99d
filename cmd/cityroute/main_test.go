package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cityroute/config"
	"github.com/katalvlaran/cityroute/repl"
)

func fixtures(t *testing.T) (string, string) {
	t.Helper()
	for _, k := range []string{"CITYROUTE_CONFIG", "CITYROUTE_VERTICES", "CITYROUTE_DISTANCES", "CITYROUTE_LOG_LEVEL",
		"CITYROUTE_CLOSED_ROAD_WEIGHT", "CITYROUTE_MAX_DISTANCE"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	dir := t.TempDir()
	v := filepath.Join(dir, "vertices.txt")
	d := filepath.Join(dir, "distances.txt")
	require.NoError(t, os.WriteFile(v, []byte("A\nB\nC\nD\nE\n"), 0o600))
	require.NoError(t, os.WriteFile(d, []byte("A B 1\nB C 2\nA C 4\nC D 1\n"), 0o600))

	return v, d
}

func exec(stdin string, args ...string) (int, string, string) {
	var out, errOut bytes.Buffer
	code := run(context.Background(), append([]string{"cityroute"}, args...), strings.NewReader(stdin), &out, &errOut)

	return code, out.String(), errOut.String()
}

func TestRun_Usage(t *testing.T) {
	v, _ := fixtures(t)
	for _, args := range [][]string{nil, {v}, {v, v, v}} {
		code, _, stderr := exec("", args...)
		assert.Equal(t, exitFailure, code)
		assert.Equal(t, "Usage: cityroute <vertices> <distances>\n", stderr)
	}
}

func TestRun_LoadFailures(t *testing.T) {
	v, d := fixtures(t)
	missing := filepath.Join(t.TempDir(), "nope.txt")

	code, _, stderr := exec("", missing, d)
	assert.Equal(t, exitFailure, code)
	assert.Equal(t, "Failed to load vertices from "+missing+"\n", stderr)

	code, _, stderr = exec("", v, missing)
	assert.Equal(t, exitFailure, code)
	assert.Equal(t, "Failed to load distances from "+missing+"\n", stderr)
}

func TestRun_Interactive(t *testing.T) {
	v, d := fixtures(t)
	code, stdout, _ := exec("A D\nexit\n", v, d)
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "Path Found...\n\tA\n\tB\n\tC\n\tD\nTotal Distance: 4\n")
	assert.True(t, strings.HasSuffix(stdout, "Goodbye!\n"))
}

func TestRun_OneShot(t *testing.T) {
	v, d := fixtures(t)

	code, stdout, _ := exec("", "-from", "A", "-to", "D", v, d)
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "Path Found...\n\tA\n\tB\n\tC\n\tD\nTotal Distance: 4\n", stdout)

	code, stdout, _ = exec("", "-from", "A", "-to", "E", "-json", v, d)
	assert.Equal(t, exitOK, code)
	var r repl.Route
	require.NoError(t, json.Unmarshal([]byte(stdout), &r))
	assert.False(t, r.Found)
	assert.Equal(t, "E", r.To)

	code, _, _ = exec("", "-from", "A", "-to", "Z", v, d)
	assert.Equal(t, exitQuery, code)

	code, _, _ = exec("", "-from", "A", v, d)
	assert.Equal(t, exitFailure, code)
}

func TestRun_ConfigErrorWithUsage(t *testing.T) {
	fixtures(t)
	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("log_level: chatty\n"), 0o600))

	code, _, stderr := exec("", "-config", bad)
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, stderr, "invalid configuration")
	assert.Contains(t, stderr, "LogLevel")
	assert.True(t, strings.HasSuffix(stderr, "Usage: cityroute <vertices> <distances>\n"))
}

func TestRun_ClosedRoads(t *testing.T) {
	v, d := fixtures(t)

	// B-C (2) and A-C (4) are closed, leaving D cut off from A
	t.Setenv("CITYROUTE_CLOSED_ROAD_WEIGHT", "2")
	code, stdout, _ := exec("", "-from", "A", "-to", "D", v, d)
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "Path Not Found...\n", stdout)

	code, stdout, _ = exec("", "-from", "A", "-to", "B", v, d)
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "Path Found...\n\tA\n\tB\nTotal Distance: 1\n", stdout)
}

func TestSearchOptions(t *testing.T) {
	assert.Empty(t, searchOptions(config.Config{}))
	assert.Len(t, searchOptions(config.Config{ClosedRoadWeight: 10, MaxDistance: 3}), 2)
}
