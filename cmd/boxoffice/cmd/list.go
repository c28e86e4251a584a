package cmd

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/boxoffice"
	"github.com/agentstation/boxoffice/internal/cmd/globals"
	"github.com/agentstation/boxoffice/internal/cmd/output"
	"github.com/agentstation/boxoffice/internal/cmd/table"
)

// listCmd represents the list command.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all movies sorted by box office earnings",
	Long: `List every movie in the catalog file, ordered by box office
earnings (highest first). Ties keep the order in which the records were
added.

Examples:
  boxoffice list
  boxoffice list -f movies.json -o yaml`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	flags, err := globals.Parse(cmd)
	if err != nil {
		return err
	}

	cat, err := boxoffice.New(boxoffice.WithPath(catalogFile(flags)))
	if err != nil {
		return err
	}

	movies := cat.SortedByEarnings()

	format := output.DetectFormat(flags.Output)
	formatter := output.NewFormatter(format)
	if format == output.FormatTable {
		return formatter.Format(cmd.OutOrStdout(), table.MoviesToTableData(movies))
	}
	return formatter.Format(cmd.OutOrStdout(), movies)
}
