package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scooter-qa/scooter-contract-tests/framework"
	"github.com/scooter-qa/scooter-contract-tests/scootertests"
)

func env(vars map[string]string) func(string) string {
	return func(name string) string { return vars[name] }
}

func TestReadDefaults(t *testing.T) {
	var p commandParams
	require.NoError(t, p.Read([]string{"scooter-tests"}, env(nil)))

	assert.Equal(t, defaultAPIURL, p.apiURL)
	assert.Equal(t, scootertests.DefaultContract(), p.contract)
	assert.False(t, p.mock)
	assert.False(t, p.filters.MustMatch.IsDefined())
}

func TestReadURLPrecedence(t *testing.T) {
	vars := env(map[string]string{apiURLEnvVar: "http://from-env:8080"})

	var fromEnv commandParams
	require.NoError(t, fromEnv.Read([]string{"scooter-tests"}, vars))
	assert.Equal(t, "http://from-env:8080", fromEnv.apiURL)

	var fromFlag commandParams
	require.NoError(t, fromFlag.Read([]string{"scooter-tests", "--url", "https://from-flag"}, vars))
	assert.Equal(t, "https://from-flag", fromFlag.apiURL)
}

func TestReadRejectsInvalidURL(t *testing.T) {
	for _, u := range []string{"not a url", "ftp://example.com", "/relative", "http://"} {
		var p commandParams
		assert.Error(t, p.Read([]string{"scooter-tests", "--url", u}, env(nil)), u)
	}
}

func TestReadMockIgnoresURL(t *testing.T) {
	var p commandParams
	require.NoError(t, p.Read([]string{"scooter-tests", "--mock", "--url", "nonsense"}, env(nil)))
	assert.True(t, p.mock)
}

func TestReadContractOverrides(t *testing.T) {
	var p commandParams
	require.NoError(t, p.Read([]string{"scooter-tests",
		"--invalid-credentials-status", "401",
		"--invalid-credentials-message", "Unauthorized"}, env(nil)))

	assert.Equal(t, 401, p.contract.InvalidCredentialsStatus)
	assert.Equal(t, "Unauthorized", p.contract.InvalidCredentialsMessage)
	assert.Equal(t, scootertests.DefaultContract().DuplicateLoginMessage, p.contract.DuplicateLoginMessage)
}

func TestReadFilters(t *testing.T) {
	var p commandParams
	require.NoError(t, p.Read([]string{"scooter-tests", "--run", "courier login", "--run", "orders", "--skip", "wrong"}, env(nil)))

	assert.True(t, p.filters.AsFilter(framework.TestID{Path: []string{"orders", "create"}}))
	assert.False(t, p.filters.AsFilter(framework.TestID{Path: []string{"courier creation"}}))
	assert.False(t, p.filters.AsFilter(framework.TestID{Path: []string{"courier login", "wrong password"}}))
}

func TestReadRejectsUnknownFlagsAndArguments(t *testing.T) {
	var p commandParams
	assert.Error(t, p.Read([]string{"scooter-tests", "--port", "8000"}, env(nil)))
	assert.Error(t, p.Read([]string{"scooter-tests", "extra"}, env(nil)))
}

func TestRerunCommand(t *testing.T) {
	p := commandParams{apiURL: "https://example.com/", contract: scootertests.DefaultContract()}
	failures := []framework.TestResult{
		{TestID: framework.TestID{Path: []string{"courier login", "wrong password"}}},
	}

	cmd := rerunCommand("./scooter-tests", p, failures)

	assert.Equal(t, `./scooter-tests --url https://example.com/ --run '^courier login$/^wrong password$'`, cmd)
}

func TestRerunCommandSelectsOnlyFailedTest(t *testing.T) {
	var p commandParams
	id := framework.TestID{Path: []string{"orders", "create", "black"}}
	require.NoError(t, p.filters.MustMatch.Set(exactPathPattern(id)))

	assert.True(t, p.filters.AsFilter(id))
	assert.False(t, p.filters.AsFilter(framework.TestID{Path: []string{"orders", "create", "black and grey"}}))
}

func TestRerunCommandKeepsMockAndContract(t *testing.T) {
	p := commandParams{mock: true, contract: scootertests.DefaultContract()}
	p.contract.InvalidCredentialsStatus = 401

	cmd := rerunCommand("scooter-tests", p, nil)

	assert.Equal(t, "scooter-tests --mock --invalid-credentials-status 401", cmd)
}

func TestRerunCommandKeepsSkipPatternsAndNoColor(t *testing.T) {
	var p commandParams
	require.NoError(t, p.Read([]string{"scooter-tests", "--url", "https://example.com/",
		"--skip", "wrong login", "--skip", "^orders", "--no-color"}, env(nil)))
	failures := []framework.TestResult{
		{TestID: framework.TestID{Path: []string{"courier login", "wrong password"}}},
	}

	cmd := rerunCommand("scooter-tests", p, failures)

	assert.Equal(t, `scooter-tests --url https://example.com/ --no-color --skip 'wrong login' --skip '^orders'`+
		` --run '^courier login$/^wrong password$'`, cmd)
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, loadEnvFile(filepath.Join(dir, "missing.env")))

	// A directory exists but cannot be read as a file.
	assert.Error(t, loadEnvFile(dir))

	name := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(name, []byte(apiURLEnvVar+"=http://from-dotenv\n"), 0o600))
	t.Setenv(apiURLEnvVar, "http://already-set")
	require.NoError(t, loadEnvFile(name))
	assert.Equal(t, "http://already-set", os.Getenv(apiURLEnvVar))
}

func TestConsoleTestLogger(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	logger := &ConsoleTestLogger{Out: &buf, DebugOutputOnFailure: true}
	id := framework.TestID{Path: []string{"courier creation", "missing field", "firstName"}}
	var debug framework.CapturingLogger
	debug.Printf("Received 201")

	logger.TestStarted(id)
	logger.TestFinished(id, true, "the API creates a courier without a first name", debug.Output())

	out := buf.String()
	assert.Contains(t, out, "[courier creation/missing field/firstName]")
	assert.Contains(t, out, "FAILED: courier creation/missing field/firstName")
	assert.Contains(t, out, "KNOWN ISSUE: the API creates a courier without a first name")
	assert.Contains(t, out, "DEBUG ")
	assert.Contains(t, out, "Received 201")
}
