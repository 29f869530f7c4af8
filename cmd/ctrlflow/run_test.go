package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestRunSeqScenarioFinishesCleanly(t *testing.T) {
	out, err := runCLI(t, "run", "seq")
	require.NoError(t, err)
	assert.Contains(t, out, `scenario "seq" finished cleanly`)
}

func TestRunParConflictScenarioReturnsParMergeConflict(t *testing.T) {
	_, err := runCLI(t, "run", "par-conflict")
	require.Error(t, err)
	assert.Equal(t, exitParMergeConflict, exitCodeFor(err))
}

func TestRunUnknownScenarioNameIsAnError(t *testing.T) {
	_, err := runCLI(t, "run", "nonexistent")
	require.Error(t, err)
}

func TestRunIfScenarioFinishesCleanly(t *testing.T) {
	out, err := runCLI(t, "run", "if")
	require.NoError(t, err)
	assert.Contains(t, out, `scenario "if" finished cleanly`)
}

func TestSourceMapMissingFileIsNotAnError(t *testing.T) {
	out, err := runCLI(t, "sourcemap", filepath.Join(t.TempDir(), "missing.map"))
	require.NoError(t, err)
	assert.Contains(t, out, "no source map configured")
}

func TestSourceMapResolvesSpecificEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.map")
	require.NoError(t, os.WriteFile(path, []byte("7\tmain\tfoo.rs:10\n7\t\tfoo.rs:1\n"), 0o644))

	out, err := runCLI(t, "sourcemap", path, "--tag", "7", "--name", "main")
	require.NoError(t, err)
	assert.Contains(t, out, "foo.rs:10")
}

func TestSourceMapFallsBackToUnnamedEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.map")
	require.NoError(t, os.WriteFile(path, []byte("7\tmain\tfoo.rs:10\n7\t\tfoo.rs:1\n"), 0o644))

	out, err := runCLI(t, "sourcemap", path, "--tag", "7", "--name", "other")
	require.NoError(t, err)
	assert.Contains(t, out, "foo.rs:1")
}

func TestExitCodeForNilIsZero(t *testing.T) {
	assert.Equal(t, exitOK, exitCodeFor(nil))
}
