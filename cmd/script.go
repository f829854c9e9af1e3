package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/theapemachine/vimnav/pkg/config"
	"github.com/theapemachine/vimnav/pkg/script"
)

var scriptCmd = &cobra.Command{
	Use:   "script <scroll|top|end|show|hide|match> [args]",
	Short: "Print the JavaScript sent to the page for an operation",
	Long:  longScript,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(viper.GetViper())
		if err != nil {
			return err
		}

		msg, err := script.Parse(args[0], args[1:]...)
		if err != nil {
			return err
		}

		source, err := msg.Render(cfg.Page)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), source)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scriptCmd)
}

var longScript = `
Render the script for one page operation using the configured selectors.
Paste it into the browser console to check the selectors still match.

Examples:
  vimnav script scroll 0 25
  vimnav script show
  vimnav script match ab
`
