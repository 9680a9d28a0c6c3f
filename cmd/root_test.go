package cmd

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"ksuggest.dev/pkg/ksuggest/internal/domain"
)

// isolateLogging keeps command runs from writing log files into the package dir.
func isolateLogging(t *testing.T) {
	t.Helper()
	t.Setenv("KSUGGEST_LOG_FILENAME", filepath.Join(t.TempDir(), "ksuggest.log"))
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "ksuggest", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, rootLongDescription, cmd.Long)
	assert.NotNil(t, cmd.PersistentFlags().Lookup(classpathFlagName))
	assert.NotNil(t, cmd.PersistentFlags().Lookup(dedupeFlagName))
	assert.NotNil(t, cmd.PersistentFlags().Lookup(verboseFlagName))
}

func TestRootCmd_HelpOutput(t *testing.T) {
	isolateLogging(t)

	cmd := newRootCmd()
	output := &bytes.Buffer{}
	cmd.SetOut(output)
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{})
	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, output.String(), "Usage:")
	assert.Contains(t, output.String(), "CLASSPATH environment variable")
}

func TestInit(t *testing.T) {
	assert.NotNil(t, ui)
	assert.NotNil(t, locationAdapter)
	assert.NotNil(t, scanner)
	assert.NotNil(t, ranker)
	assert.NotNil(t, workflow)
}

func TestRootCmd_Subcommands(t *testing.T) {
	var names []string
	for _, sub := range rootCmd.Commands() {
		names = append(names, sub.Name())
	}

	for _, want := range []string{"suggest", "scan", "init", "config", "version"} {
		assert.Contains(t, names, want)
	}
}

func TestResolveClasspath(t *testing.T) {
	sep := string(os.PathListSeparator)

	// Rebind the classpath key to a fresh, unchanged flag.
	_ = newRootCmd()

	t.Run("flag or env wins", func(t *testing.T) {
		t.Setenv("CLASSPATH", "/from/classpath")
		t.Setenv("KSUGGEST_CLASSPATH", "/a.jar"+sep+"/b")
		viper.Set(scanClasspathKey, []string{"/from/config"})
		t.Cleanup(func() { viper.Set(scanClasspathKey, []string{}) })

		assert.Equal(t, []string{"/a.jar", "/b"}, resolveClasspath())
	})

	t.Run("config list next", func(t *testing.T) {
		t.Setenv("CLASSPATH", "/from/classpath")
		viper.Set(scanClasspathKey, []string{"/from/config"})
		t.Cleanup(func() { viper.Set(scanClasspathKey, []string{}) })

		assert.Equal(t, []string{"/from/config"}, resolveClasspath())
	})

	t.Run("CLASSPATH last", func(t *testing.T) {
		t.Setenv("CLASSPATH", "/x.jar"+sep+"/y.jar")

		assert.Equal(t, []string{"/x.jar", "/y.jar"}, resolveClasspath())
	})
}

func TestScanArgsFromConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		args, err := scanArgsFromConfig()
		require.NoError(t, err)

		assert.Equal(t, domain.DirectoryBaseParent, args.Options.DirectoryBase)
		assert.Equal(t, []string{".jar"}, args.ArchiveExtensions)
		assert.True(t, args.Options.Filter.Accept("kotlin.collections.List"))
		assert.False(t, args.Options.Filter.Accept("kotlin.x.Hidden"))
	})

	t.Run("custom filter", func(t *testing.T) {
		viper.Set(filterExcludeKey, []string{"internal"})
		t.Cleanup(func() { viper.Set(filterExcludeKey, domain.DefaultExcludedNamespaces) })

		args, err := scanArgsFromConfig()
		require.NoError(t, err)

		assert.False(t, args.Options.Filter.Accept("kotlin.internal.Foo"))
		assert.True(t, args.Options.Filter.Accept("kotlin.x.Foo"))
	})

	t.Run("invalid directory base", func(t *testing.T) {
		viper.Set(directoryBaseKey, "grandparent")
		t.Cleanup(func() { viper.Set(directoryBaseKey, string(domain.DirectoryBaseParent)) })

		_, err := scanArgsFromConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "grandparent")
	})
}

func TestExecute(t *testing.T) {
	originalRootCmd := rootCmd

	mockCmd := &cobra.Command{
		Use: "test",
		RunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
	}
	mockCmd.SetOut(&bytes.Buffer{})
	mockCmd.SetErr(&bytes.Buffer{})

	rootCmd = mockCmd

	// Execute should not panic or exit.
	Execute()

	rootCmd = originalRootCmd
}

func TestExecute_ProcessLevel_Failure(t *testing.T) {
	if os.Getenv("TEST_EXECUTE_SUBPROCESS_FAIL") == "1" {
		originalRootCmd := rootCmd
		mockCmd := &cobra.Command{
			Use: "test",
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Fprintln(os.Stderr, "error occurred")
				return fmt.Errorf("command failed")
			},
		}
		mockCmd.SetOut(os.Stdout)
		mockCmd.SetErr(os.Stderr)
		rootCmd = mockCmd
		defer func() { rootCmd = originalRootCmd }()

		Execute() // This should call os.Exit(1)
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestExecute_ProcessLevel_Failure")
	cmd.Env = append(os.Environ(), "TEST_EXECUTE_SUBPROCESS_FAIL=1")
	output, err := cmd.CombinedOutput()

	require.Error(t, err)

	if exitErr, ok := err.(*exec.ExitError); ok {
		assert.Equal(t, 1, exitErr.ExitCode())
	} else {
		assert.Fail(t, "expected exec.ExitError", "got %T", err)
	}

	assert.Contains(t, string(output), "error occurred")
}
