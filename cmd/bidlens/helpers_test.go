package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// gameLine is one valid four-seat game with two rounds.
const gameLine = `{"game_id":1,"config":{"ai_types":["greedy","random","greedy","random"]},` +
	`"result":{"winner":0,"final_scores":[32,10,11,21]},"rounds":[` +
	`{"hand_size":3,"trump":"Hearts","trump_selector":0,"bids":[2,0,1,1],"tricks_won":[2,0,0,1],"scores":[12,10,0,11],` +
	`"bid_accuracy":[{"seat":0,"bid":2,"tricks":2,"exact":true},{"seat":1,"bid":0,"tricks":0,"exact":true},` +
	`{"seat":2,"bid":1,"tricks":0,"exact":false,"overbid":1},{"seat":3,"bid":1,"tricks":1,"exact":true}]},` +
	`{"hand_size":2,"trump":null,"trump_selector":3,"bids":[1,0,1,1],"tricks_won":[2,0,0,0],"scores":[20,0,11,10],` +
	`"bid_accuracy":[{"seat":0,"bid":1,"tricks":2,"exact":false,"underbid":1},{"seat":1,"bid":0,"tricks":0,"exact":true},` +
	`{"seat":2,"bid":1,"tricks":0,"exact":false,"overbid":1},{"seat":3,"bid":1,"tricks":0,"exact":false,"overbid":1}]}]}`

// resetGlobals restores every package-level flag variable.
func resetGlobals() {
	configPath = ""
	reportFormat = ""
	reportExport = ""
	reportChart = ""
	reportPick = false
	totalsFormat = ""
	totalsPick = false
	validateJUnit = ""
	validatePick = false
}

// writeLog writes lines as a JSONL results log and returns its path.
func writeLog(t *testing.T, dir, name string, lines ...string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
	return p
}

// runRoot executes the root command with args and returns stdout and stderr.
func runRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetGlobals()
	t.Cleanup(resetGlobals)
	// No ambient config or export toggle from the developer's machine.
	t.Chdir(t.TempDir())
	t.Setenv("SIM_EXPORT", "")

	var stdout, stderr bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}
