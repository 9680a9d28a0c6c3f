// Package cmd provides the root command and CLI setup for ksuggest.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"ksuggest.dev/pkg/ksuggest/internal/adapter"
	"ksuggest.dev/pkg/ksuggest/internal/controller"
	"ksuggest.dev/pkg/ksuggest/internal/domain"
)

var locationAdapter adapter.LocationFSAdapter
var scanner domain.Scanner
var ranker domain.Ranker
var workflow domain.Workflow
var ui controller.UI

// classpathFlag overrides every other classpath source when set.
var classpathFlag string

// dedupeFlag drops names already seen in an earlier location.
var dedupeFlag bool

var verboseFlag bool

func init() {
	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, useStyledOutput())
	locationAdapter = adapter.NewLocalLocationFSAdapter()
	scanner = domain.NewScanner(locationAdapter)
	ranker = domain.NewRanker()
	workflow = domain.NewWorkflow(locationAdapter, ui, scanner, ranker)
}

const classpathHelp = `The classpath is taken from, in order:
  - the --classpath flag
  - the KSUGGEST_CLASSPATH environment variable
  - scan.classpath in ksuggest.yaml
  - the CLASSPATH environment variable

Entries are separated by the OS path-list separator and may be globs
(e.g. libs/*.jar or libs/**/*.jar). Directories are scanned for .class
files and .jar archives for .class entries.`

const rootLongDescription = `ksuggest suggests Kotlin standard library names for a short query
by scanning the classes available on a classpath and ranking them.

` + classpathHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ksuggest",
		Short: "Suggest standard library names from a classpath",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger("", viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&classpathFlag, classpathFlagName, "c", "", "classpath to scan (path-list separated, globs allowed)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(classpathFlagName), classpathKey)

	cmd.PersistentFlags().BoolVar(&dedupeFlag, dedupeFlagName, defaultDedupe, "report names found in several locations only once")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(dedupeFlagName), dedupeKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", defaultLogVerbose, "write debug logs")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// resolveClasspath returns the classpath entries from the first source that
// provides any.
func resolveClasspath() []string {
	if entries := adapter.SplitClasspath(viper.GetString(classpathKey)); len(entries) > 0 {
		return entries
	}

	if entries := viper.GetStringSlice(scanClasspathKey); len(entries) > 0 {
		return entries
	}

	return adapter.SplitClasspath(os.Getenv(classpathEnvVar))
}

// scanArgsFromConfig builds the scan settings from flags, env and config.
func scanArgsFromConfig() (domain.ScanArgs, error) {
	base := domain.DirectoryBase(viper.GetString(directoryBaseKey))
	if base != domain.DirectoryBaseParent && base != domain.DirectoryBaseSelf {
		return domain.ScanArgs{}, fmt.Errorf("invalid %s %q: want %q or %q",
			directoryBaseKey, base, domain.DirectoryBaseParent, domain.DirectoryBaseSelf)
	}

	return domain.ScanArgs{
		Classpath:         resolveClasspath(),
		ArchiveExtensions: viper.GetStringSlice(archiveExtensionsKey),
		Options: domain.ScanOptions{
			Filter: domain.NewNameFilter(
				viper.GetString(filterRootKey),
				viper.GetStringSlice(filterExcludeKey),
				viper.GetString(filterNestedSeparatorKey),
			),
			DirectoryBase: base,
			Dedupe:        viper.GetBool(dedupeKey),
		},
	}, nil
}

func useStyledOutput() bool {
	if !viper.GetBool(colorKey) || os.Getenv("NO_COLOR") != "" {
		return false
	}

	return controller.IsTTY(os.Stdout)
}
