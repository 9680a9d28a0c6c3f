package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"ksuggest.dev/pkg/ksuggest/internal/domain"
	m "ksuggest.dev/pkg/ksuggest/internal/model"
)

// ErrInvalidLimit is returned for a negative or non-numeric suggestion count.
var ErrInvalidLimit = errors.New("invalid number of suggestions")

var limitFlag int
var scoresFlag bool

const suggestLongDescription = `Suggest standard library names matching <query>.

Names whose simple name starts with the query come first, then names that
contain it, then names with a package segment starting with it, and finally
the rest ordered by edit distance. [count] limits the number of suggestions;
without it every candidate is printed. A negative or non-numeric count is
rejected; leave it out to print everything.

` + classpathHelp

// suggestCmd represents the suggest command.
var suggestCmd = newSuggestCmd()

func newSuggestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "suggest <query> [count]",
		Aliases: []string{"s"},
		Short:   "Suggest names matching a query",
		Long:    suggestLongDescription,
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, err := resolveLimit(cmd, args)
			if err != nil {
				return err
			}

			scanArgs, err := scanArgsFromConfig()
			if err != nil {
				return err
			}

			return workflow.Suggest(cmd.Context(), domain.SuggestArgs{
				ScanArgs:   scanArgs,
				Query:      strings.ToLower(args[0]),
				Limit:      limit,
				ShowScores: viper.GetBool(scoresKey),
			})
		},
	}

	configureSuggestFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(suggestCmd)
}

func configureSuggestFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&limitFlag, limitFlagName, "n", 0, "maximum number of suggestions (default: all)")
	cmd.Flags().BoolVar(&scoresFlag, scoresFlagName, defaultScores, "print a table with the tier and score of each suggestion")
	bindFlagToConfig(cmd.Flags().Lookup(scoresFlagName), scoresKey)
}

// resolveLimit prefers the positional count over --limit. Neither means unbounded.
func resolveLimit(cmd *cobra.Command, args []string) (m.Limit, error) {
	if len(args) > 1 {
		return parseLimit(args[1])
	}

	if cmd.Flags().Changed(limitFlagName) {
		n, err := cmd.Flags().GetInt(limitFlagName)
		if err != nil {
			return m.Limit{}, fmt.Errorf("%w: %w", ErrInvalidLimit, err)
		}

		return boundedLimit(n)
	}

	return m.Unbounded(), nil
}

func parseLimit(value string) (m.Limit, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return m.Limit{}, fmt.Errorf("%w: %q is not a number", ErrInvalidLimit, value)
	}

	return boundedLimit(n)
}

func boundedLimit(n int) (m.Limit, error) {
	if n < 0 {
		return m.Limit{}, fmt.Errorf("%w: %d is negative", ErrInvalidLimit, n)
	}

	return m.Bounded(n), nil
}
