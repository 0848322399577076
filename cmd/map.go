package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/tabsnap/tabsnap/constants"
	"github.com/tabsnap/tabsnap/db"
	"github.com/tabsnap/tabsnap/model"
	"github.com/tabsnap/tabsnap/notes"
	"github.com/tabsnap/tabsnap/render"
	"github.com/tabsnap/tabsnap/timeline"
	"github.com/tabsnap/tabsnap/tuning"
)

var (
	mapTuning   string
	mapMaxFret  int
	mapWindow   float64
	mapBpm      float64
	mapFormat   string
	mapOutput   string
	mapMetadata bool
)

func init() {
	mapCmd.Flags().StringVar(&mapTuning, "tuning", "standard", "guitar tuning id")
	mapCmd.Flags().IntVar(&mapMaxFret, "max-fret", constants.DefaultMaxFret, "highest playable fret")
	mapCmd.Flags().Float64Var(&mapWindow, "chord-window", constants.DefaultChordWindow, "chord grouping window in seconds")
	mapCmd.Flags().Float64Var(&mapBpm, "bpm", constants.DefaultBpm, "tempo for display (from the external tempo stage)")
	mapCmd.Flags().StringVar(&mapFormat, "format", "ascii", "output format: ascii or json")
	mapCmd.Flags().StringVarP(&mapOutput, "output", "o", "", "output file (stdout if omitted)")
	mapCmd.Flags().BoolVar(&mapMetadata, "metadata", false, "look up track metadata for the tab header")
	rootCmd.AddCommand(mapCmd)
}

var mapCmd = &cobra.Command{
	Use:   "map [detected.mid|notes.json]",
	Short: "Maps detected notes to tablature",
	Long:  `Maps detected notes to tablature`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMap(args[0])
	},
}

func runMap(path string) error {
	// resolve before touching notes so a bad tuning fails fast
	tun, err := tuning.Resolve(mapTuning)
	if err != nil {
		return err
	}

	noteEvents, err := notes.ReadFile(path)
	if err != nil {
		return err
	}
	if len(noteEvents) == 0 {
		logger.Warn("no notes in input, emitting empty tab", "path", path)
	}

	cfg := timeline.Config{MaxFret: mapMaxFret, ChordWindow: mapWindow}
	events, dropped := timeline.Build(noteEvents, tun, cfg)
	if dropped > 0 {
		logger.Warn("dropped unplayable notes", "count", dropped, "tuning", tun.ID)
	}
	logger.Info("mapped notes to fretboard",
		"notes", len(noteEvents),
		"events", len(events),
		"tuning", tun.ID,
	)

	var meta *model.TrackMetadata
	if mapMetadata {
		filename := filepath.Base(path)
		metadatas, err := db.GetTrackMetadatas([]string{filename})
		if err != nil {
			logger.Warn("metadata lookup failed, continuing without", "error", err)
		} else if m, ok := metadatas[filename]; ok {
			meta = &m
		}
	}

	var out string
	switch mapFormat {
	case "json":
		doc := render.Document(events, tun, mapBpm)
		dat, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return err
		}
		out = string(dat)
	case "ascii":
		out = render.Ascii(events, tun, meta)
	default:
		return fmt.Errorf("unknown format: %v (options: ascii, json)", mapFormat)
	}

	if mapOutput == "" {
		fmt.Println(out)
		return nil
	}
	if err := os.WriteFile(mapOutput, []byte(out), 0644); err != nil {
		return err
	}
	logger.Info("output saved", "path", mapOutput)
	return nil
}
