package cmd

import (
	"github.com/spf13/cobra"
	"ksuggest.dev/pkg/ksuggest/internal/domain"
)

// scanCmd represents the scan command.
var scanCmd = newScanCmd()

func newScanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan",
		Short: "List every standard library name found on the classpath",
		Long: `List every standard library name found on the classpath, in scan order.

` + classpathHelp,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			scanArgs, err := scanArgsFromConfig()
			if err != nil {
				return err
			}

			return workflow.List(cmd.Context(), domain.ListArgs{ScanArgs: scanArgs})
		},
	}
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
