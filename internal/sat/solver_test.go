package sat

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSolutionSingleLine(t *testing.T) {
	solution, err := parseSolution("s SATISFIABLE\nv 1 -2 3 -4 0\n")
	require.NoError(t, err)
	assert.Equal(t, SATSolution{1, -2, 3, -4}, solution)
}

func TestParseSolutionMultipleValueLines(t *testing.T) {
	// cryptominisat wraps long models over several v-lines
	solution, err := parseSolution("s SATISFIABLE\nv 1 -2\nv 3 -4\nv 5 0\n")
	require.NoError(t, err)
	assert.Equal(t, SATSolution{1, -2, 3, -4, 5}, solution)
}

func TestParseSolutionWithoutTrailingZero(t *testing.T) {
	solution, err := parseSolution("v 1 2 -3\n")
	require.NoError(t, err)
	assert.Equal(t, SATSolution{1, 2, -3}, solution)
}

func TestParseSolutionClassifiesMissingModelAsParseError(t *testing.T) {
	// No value line and no verdict is a format mismatch, never "no solution"
	solution, err := parseSolution("some chatter\nwithout any verdict\n")
	assert.Nil(t, solution)
	assert.ErrorIs(t, err, ErrUnparseableOutput)
}

func TestParseSolutionRejectsJunkLiterals(t *testing.T) {
	_, err := parseSolution("v 1 banana 0\n")
	assert.ErrorIs(t, err, ErrUnparseableOutput)
}

func TestGetExecutablePathFallsBackWithoutConfig(t *testing.T) {
	previous := ConfigPath
	ConfigPath = filepath.Join(t.TempDir(), "missing.json")
	defer func() { ConfigPath = previous }()

	assert.Equal(t, "kissat", getExecutablePath("kissatPath", "kissat"))
}

func TestGetExecutablePathReadsConfig(t *testing.T) {
	dir := t.TempDir()
	bytes, err := json.Marshal(map[string]string{"kissatPath": "/opt/sat/kissat"})
	require.NoError(t, err)
	configFile := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(configFile, bytes, 0o644))

	previous := ConfigPath
	ConfigPath = configFile
	defer func() { ConfigPath = previous }()

	assert.Equal(t, "/opt/sat/kissat", getExecutablePath("kissatPath", "kissat"))
	assert.Equal(t, "cadical", getExecutablePath("cadicalPath", "cadical"))
}
