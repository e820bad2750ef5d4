package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(layoutCmd)
}

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print the relocated build directories",
	Long: `Print the root build directory and the build directory of each
subproject. The root build directory is two levels above the root project.`,
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

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "%s\t%s\n", "(root)", b.Root.BuildDir)
		for _, sp := range b.Root.Subprojects() {
			fmt.Fprintf(w, "%s\t%s\n", sp.Name, sp.BuildDir)
		}
		return w.Flush()
	},
}
