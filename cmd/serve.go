package cmd

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"github.com/tabsnap/tabsnap/constants"
	"github.com/tabsnap/tabsnap/model"
	"github.com/tabsnap/tabsnap/render"
	"github.com/tabsnap/tabsnap/timeline"
	"github.com/tabsnap/tabsnap/tuning"
)

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the mapping engine over HTTP",
	Long:  `Serves the mapping engine over HTTP for the web frontend`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

// HandleMap maps a JSON note list to a tab document. Exported so the
// e2e tests can drive it through httptest.
func HandleMap(w http.ResponseWriter, r *http.Request) {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, 400, "could not read request body: "+err.Error())
		return
	}

	var input model.MapRequestBody
	if err := json.Unmarshal(reqBody, &input); err != nil {
		writeError(w, 400, "could not unmarshal request body: "+err.Error())
		return
	}

	if input.Tuning == "" {
		input.Tuning = "standard"
	}
	tun, err := tuning.Resolve(input.Tuning)
	if err != nil {
		writeError(w, 400, err.Error())
		return
	}

	cfg := timeline.DefaultConfig()
	if input.MaxFret > 0 {
		cfg.MaxFret = input.MaxFret
	}
	if input.ChordWindow > 0 {
		cfg.ChordWindow = input.ChordWindow
	}
	bpm := input.Bpm
	if bpm <= 0 {
		bpm = constants.DefaultBpm
	}

	events, dropped := timeline.Build(input.Notes, tun, cfg)

	res := model.MapResponse{
		RequestId:    uuid.New().String(),
		DroppedNotes: dropped,
		Tab:          render.Document(events, tun, bpm),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func serve() error {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/map", HandleMap).Methods("POST")

	handler := cors.Default().Handler(router)
	logger.Info("listening", "addr", serveAddr)
	return http.ListenAndServe(serveAddr, handler)
}
