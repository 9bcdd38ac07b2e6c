package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeGraph(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.txt")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	require.Equal(t, "lvwalk v"+version+" ("+commit+")\n", out)
}

func TestStats(t *testing.T) {
	path := writeGraph(t, "1 2 3\n2 1\n3 1\n7\n")
	out, err := run(t, "stats", "--input", path, "--log-level", "error")
	require.NoError(t, err)
	require.Contains(t, out, "nodes:      4\n")
	require.Contains(t, out, "edges:      2\n")
	require.Contains(t, out, "isolated:   1\n")
	require.Contains(t, out, "components: 2\n")
}

func TestWalk_Stdout(t *testing.T) {
	path := writeGraph(t, "1 2 3\n2 1\n3 1\n")
	args := []string{"walk", "-i", path, "--passes", "2", "--path-length", "5", "--seed", "42", "--log-level", "error"}

	out, err := run(t, args...)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 3*2)
	for _, l := range lines {
		require.Len(t, strings.Fields(l), 5)
	}

	again, err := run(t, args...)
	require.NoError(t, err)
	require.Equal(t, out, again)
}

func TestWalk_ParallelToFile(t *testing.T) {
	dir := t.TempDir()
	path := writeGraph(t, "1 2\n2 3\n3 4\n")
	corpus := filepath.Join(dir, "corpus.txt")
	metricsFile := filepath.Join(dir, "metrics.prom")

	out, err := run(t, "walk", "-i", path, "--walkers", "3", "--passes", "4", "--alpha", "0.2",
		"-o", corpus, "--metrics-out", metricsFile, "--log-level", "error")
	require.NoError(t, err)
	require.Empty(t, out)

	data, err := os.ReadFile(corpus)
	require.NoError(t, err)
	require.Equal(t, 4*4, strings.Count(string(data), "\n"))

	prom, err := os.ReadFile(metricsFile)
	require.NoError(t, err)
	require.Contains(t, string(prom), "lvwalk_walks_generated_total")
}

func TestWalk_ConfigFileAndOverride(t *testing.T) {
	dir := t.TempDir()
	graph := writeGraph(t, "1 2\n2 3\n")
	cfgPath := filepath.Join(dir, "lvwalk.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(
		"input:\n  path: "+graph+"\n  format: edgelist\nwalk:\n  num_passes: 1\n  path_length: 2\nlog:\n  level: error\n"), 0o600))

	out, err := run(t, "walk", "--config", cfgPath)
	require.NoError(t, err)
	require.Equal(t, 3, strings.Count(out, "\n"))

	out, err = run(t, "walk", "--config", cfgPath, "--passes", "2")
	require.NoError(t, err)
	require.Equal(t, 6, strings.Count(out, "\n"))
}

func TestWalk_Errors(t *testing.T) {
	_, err := run(t, "walk", "--log-level", "error")
	require.ErrorIs(t, err, errNoInput)

	path := writeGraph(t, "1 2\n")
	_, err = run(t, "walk", "-i", path, "--alpha", "2")
	require.Error(t, err)

	_, err = run(t, "walk", "-i", filepath.Join(t.TempDir(), "missing.txt"), "--log-level", "error")
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestSynth_RoundTrip(t *testing.T) {
	out, err := run(t, "synth", "--topology", "cycle", "-n", "5", "--offset", "10")
	require.NoError(t, err)
	require.Equal(t, "10 11 14\n11 10 12\n12 11 13\n13 12 14\n14 10 13\n", out)

	path := writeGraph(t, out)
	stats, err := run(t, "stats", "-i", path, "--log-level", "error")
	require.NoError(t, err)
	require.Contains(t, stats, "edges:      5\n")
	require.Contains(t, stats, "components: 1\n")
}

func TestSynth_Errors(t *testing.T) {
	_, err := run(t, "synth", "--topology", "torus")
	require.Error(t, err)

	_, err = run(t, "synth", "--topology", "cycle", "-n", "2")
	require.Error(t, err)
}
