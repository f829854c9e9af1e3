package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/theapemachine/vimnav/pkg/vim"
)

var labelsCmd = &cobra.Command{
	Use:   "labels [count]",
	Short: "Print the hint labels assigned to the first elements of a page",
	Long:  longLabels,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n := 30

		if len(args) == 1 {
			var err error
			if n, err = strconv.Atoi(args[0]); err != nil || n < 0 {
				return fmt.Errorf("invalid count %q", args[0])
			}
		}

		// Longer labels end selection before they can be typed out.
		n = min(n, vim.TypableLabels)

		for i, label := range vim.Labels(n) {
			fmt.Fprintf(cmd.OutOrStdout(), "%5d  %s\n", i, label)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(labelsCmd)
}

var longLabels = `
Print the first count hint labels (30 by default) in the order elements are
tagged. The count is capped at 676, the labels "aa" through "zz".

Examples:
  vimnav labels
  vimnav labels 100
`
