package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/spf13/cobra"
	"github.com/tabsnap/tabsnap/constants"
	"github.com/tabsnap/tabsnap/fretboard"
	"github.com/tabsnap/tabsnap/model"
	"github.com/tabsnap/tabsnap/optimize"
	"github.com/tabsnap/tabsnap/tuning"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

var (
	listenTuning string
	listenPort   int
)

func init() {
	listenCmd.Flags().StringVar(&listenTuning, "tuning", "standard", "guitar tuning id")
	listenCmd.Flags().IntVar(&listenPort, "port", 0, "midi input port number")
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Maps live MIDI input to fret positions",
	Long:  `Maps live MIDI input to fret positions as you play`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listen()
	},
}

func formatPositions(positions []model.Position) string {
	var out string
	for i, p := range positions {
		if i > 0 {
			out += "  "
		}
		out += fmt.Sprintf("%v/%v", constants.StringLabels[p.String], p.Fret)
	}
	return out
}

func listen() error {
	tun, err := tuning.Resolve(listenTuning)
	if err != nil {
		return err
	}

	defer midi.CloseDriver()
	in, err := midi.InPort(listenPort)
	if err != nil {
		return fmt.Errorf("no midi input on port %v: %w", listenPort, err)
	}

	// notes struck within one chord window count as a single strum, so
	// hold them back until the burst goes quiet
	window := time.Duration(constants.DefaultChordWindow * float64(time.Second))
	deb := debounce.New(window)

	var mu sync.Mutex
	var pending []model.Pitch
	var hand optimize.HandState

	flush := func() {
		mu.Lock()
		group := pending
		pending = nil
		mu.Unlock()

		var candidateSets [][]model.Position
		for _, pitch := range group {
			cs := fretboard.Candidates(pitch, tun, constants.DefaultMaxFret)
			if len(cs) == 0 {
				logger.Warn("pitch unplayable in this tuning", "pitch", pitch, "tuning", tun.ID)
				continue
			}
			candidateSets = append(candidateSets, cs)
		}
		if len(candidateSets) == 0 {
			return
		}

		positions := optimize.ChooseChord(candidateSets, hand)
		hand = positions
		fmt.Println(formatPositions(positions))
	}

	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		var channel, key, velocity uint8
		if msg.GetNoteStart(&channel, &key, &velocity) {
			mu.Lock()
			pending = append(pending, model.Pitch(key))
			mu.Unlock()
			deb(flush)
		}
	})
	if err != nil {
		return err
	}
	defer stop()

	logger.Info("listening for midi", "port", in.String(), "tuning", tun.ID)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	<-sig
	return nil
}
