package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tabsnap/tabsnap/tuning"
)

func init() {
	rootCmd.AddCommand(tuningsCmd)
}

var tuningsCmd = &cobra.Command{
	Use:   "tunings",
	Short: "Lists tuning presets",
	Long:  `Lists tuning presets`,
	Run: func(cmd *cobra.Command, args []string) {
		for _, id := range tuning.Ids() {
			t, _ := tuning.Resolve(id)
			fmt.Printf("%-10v %-16v %v\n", t.ID, t.Label, t.Open)
		}
	},
}
