package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tabsnap/tabsnap/notes"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect [detected.mid|notes.json]",
	Short: "Dumps the note events in a detector file",
	Long:  `Dumps the note events in a detector file`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return inspect(args[0])
	},
}

func inspect(path string) error {
	noteEvents, err := notes.ReadFile(path)
	if err != nil {
		return err
	}
	for _, n := range noteEvents {
		fmt.Printf("pitch: %3d  onset: %8.3f  offset: %8.3f  confidence: %d\n",
			n.Pitch, n.Onset, n.Offset, n.Confidence)
	}
	fmt.Printf("total: %v notes\n", len(noteEvents))
	return nil
}
