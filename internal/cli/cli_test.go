package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCLI(t *testing.T) {
	cmd := BuildCLI()

	assert.NotNil(t, cmd)
	assert.Equal(t, "fleetmaint", cmd.Use)
	assert.Equal(t, "1.0.0", cmd.Version)

	commandNames := make(map[string]bool)
	for _, c := range cmd.Commands() {
		commandNames[c.Use] = true
	}

	assert.True(t, commandNames["serve"], "should have 'serve' command")
	assert.True(t, commandNames["generate"], "should have 'generate' command")
	assert.True(t, commandNames["export"], "should have 'export' command")
	assert.True(t, commandNames["report <tail-number>"], "should have 'report' command")

	configFlag := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, configFlag, "should have --config flag")
	assert.Equal(t, "c", configFlag.Shorthand)
}

func TestBuildGenerateCommand(t *testing.T) {
	cmd := buildGenerateCommand()

	assert.Equal(t, "generate", cmd.Use)
	assert.NotNil(t, cmd.RunE)
	assert.NotNil(t, cmd.Flags().Lookup("seed"), "should have --seed flag")
}

func TestBuildExportCommand(t *testing.T) {
	cmd := buildExportCommand()

	assert.Equal(t, "export", cmd.Use)
	assert.NotNil(t, cmd.RunE)

	outFlag := cmd.Flags().Lookup("out")
	require.NotNil(t, outFlag, "should have --out flag")
	assert.Equal(t, "o", outFlag.Shorthand)
	assert.Equal(t, ".", outFlag.DefValue)
}

func TestGenerateThenExport(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("FLEETMAINT_DB_PATH", filepath.Join(tmpDir, "fleet.db"))
	t.Setenv("FLEETMAINT_LOG_LEVEL", "error")
	configFile = ""

	require.NoError(t, runGenerate(true, 42))

	outDir := filepath.Join(tmpDir, "csv")
	require.NoError(t, runExport(outDir))

	fleetCSV, err := os.ReadFile(filepath.Join(outDir, "fleet.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(fleetCSV), "tail_number,model,category")

	maintCSV, err := os.ReadFile(filepath.Join(outDir, "maintenance.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(maintCSV), "a_check_percent")
}

func TestRunExport_EmptyDatabase(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("FLEETMAINT_DB_PATH", filepath.Join(tmpDir, "empty.db"))
	t.Setenv("FLEETMAINT_LOG_LEVEL", "error")
	configFile = ""

	err := runExport(tmpDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "aircraft table is empty")
}

func TestRunReport_UnknownAircraft(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("FLEETMAINT_DB_PATH", filepath.Join(tmpDir, "fleet.db"))
	t.Setenv("FLEETMAINT_LOG_LEVEL", "error")
	configFile = ""

	require.NoError(t, runGenerate(true, 42))

	err := runReport("TC-ZZZ99")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
