package cli

import (
	"fmt"

	"github.com/droidconf/droidconf/internal/clean"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(cleanCmd)
}

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Delete the root build directory",
	Long: `Run the clean task: recursively delete the root build directory and
everything in it. A build directory that does not exist is left alone.`,
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

		if err := b.Root.Tasks().Run(cmd.Context(), clean.TaskName); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", b.Root.BuildDir)
		return nil
	},
}
