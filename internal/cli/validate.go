package cli

import (
	"fmt"

	"github.com/droidconf/droidconf/internal/settings"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the build description against its schema",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := descriptionPath()
		if err != nil {
			return err
		}

		result, err := settings.ValidateFile(path)
		if err != nil {
			return err
		}
		if !result.Valid {
			return &settings.ValidationError{Path: path, Issues: result.Issues}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s is valid\n", path)
		return nil
	},
}
