package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

var rootCmd = &cobra.Command{
	Use:   "tabsnap",
	Short: "Maps detected guitar notes to tablature",
	Long:  `Takes the note events a pitch detector produced and maps them onto the fretboard as playable tab.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
