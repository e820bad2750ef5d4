package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var (
	evaluateReport bool
	evaluateOutput string
)

func init() {
	evaluateCmd.Flags().BoolVar(&evaluateReport, "report", false, "Include the namespace backfill outcome of each subproject")
	evaluateCmd.Flags().StringVarP(&evaluateOutput, "output", "o", "yaml", "Output format: yaml, json or table")
	rootCmd.AddCommand(evaluateCmd)
}

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate the build and print the resolved configuration",
	Long: `Load the build description, run the configuration pass over every
subproject and print the result: relocated build directories, repositories,
registered tasks and android namespaces after the backfill.

Example:
  droidconf evaluate
  droidconf evaluate --report -o table
  droidconf evaluate -f android/droidconf.yaml -o json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := descriptionPath()
		if err != nil {
			return err
		}
		b, err := loadBuild(cmd.Context(), path, logger)
		if err != nil {
			return err
		}

		v := newBuildView(b, evaluateReport)
		if evaluateOutput != "table" {
			return writeOutput(cmd.OutOrStdout(), evaluateOutput, v)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "PROJECT\tANDROID\tNAMESPACE\tBUILD DIR")
		for _, sp := range v.Subprojects {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", sp.Name, dash(sp.Android), dash(sp.Namespace), sp.BuildDir)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		if evaluateReport {
			fmt.Fprintln(cmd.OutOrStdout())
			w = tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "PROJECT\tBACKFILL")
			for _, e := range v.Backfill {
				fmt.Fprintf(w, "%s\t%s\n", e.Project, e.Result)
			}
			return w.Flush()
		}
		return nil
	},
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
