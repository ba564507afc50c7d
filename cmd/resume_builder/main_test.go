package main

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

// TestMain clears the environment overrides so a developer's .env or shell
// cannot redirect the tests to a real backend.
func TestMain(m *testing.M) {
	for _, name := range []string{"RESUME_STORAGE", "RESUME_STORAGE_DIR", "RESUME_STORAGE_KEY", "RESUME_AUTOSAVE_MS", "RESUME_OUTPUT_DIR", "CHROME_PATH"} {
		_ = os.Unsetenv(name)
	}
	os.Exit(m.Run())
}

// cli runs commands in-process against a file store in its own directory.
type cli struct {
	t   *testing.T
	dir string
}

func newCLI(t *testing.T) *cli {
	return &cli{t: t, dir: t.TempDir()}
}

// run executes one command line and returns what it wrote.
func (c *cli) run(args ...string) (stdout, stderr string, err error) {
	c.t.Helper()
	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(append([]string{"--storage=file", "--storage-dir=" + c.dir}, args...))

	err = execute()
	return out.String(), errOut.String(), err
}

// must runs a command that is expected to succeed and returns its stdout.
func (c *cli) must(args ...string) string {
	c.t.Helper()
	stdout, stderr, err := c.run(args...)
	require.NoError(c.t, err, "stderr: %s", stderr)
	return stdout
}

// doc reads the saved resume through the show command.
func (c *cli) doc() types.Resume {
	c.t.Helper()
	var doc types.Resume
	require.NoError(c.t, json.Unmarshal([]byte(c.must("show", "--json")), &doc))
	return doc
}

// resetFlags returns every flag to its default, since cobra keeps parsed
// values between executions.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}
