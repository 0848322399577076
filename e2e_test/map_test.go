//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tabsnap/tabsnap/cmd"
	"github.com/tabsnap/tabsnap/model"
)

func createMapReqBody(t *testing.T, body model.MapRequestBody) io.Reader {
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	return bytes.NewReader(data)
}

func TestMapCChordE2E(t *testing.T) {
	body := createMapReqBody(t, model.MapRequestBody{
		Tuning: "standard",
		Notes: []model.NoteEvent{
			{Pitch: 60, Onset: 0.000, Offset: 0.500, Confidence: 100},
			{Pitch: 64, Onset: 0.004, Offset: 0.500, Confidence: 100},
			{Pitch: 67, Onset: 0.008, Offset: 0.500, Confidence: 100},
		},
	})
	req := httptest.NewRequest(http.MethodPost, "/map", body)
	w := httptest.NewRecorder()
	cmd.HandleMap(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var mapResponse model.MapResponse
	err := json.Unmarshal(respBody, &mapResponse)
	if err != nil {
		t.Fatal(err)
	}

	assert.NotEmpty(mapResponse.RequestId)
	assert.Equal(0, mapResponse.DroppedNotes)
	assert.Equal("standard", mapResponse.Tab.Tuning)
	assert.Equal("Standard", mapResponse.Tab.TuningLabel)
	assert.Equal(1, mapResponse.Tab.EventCount)
	assert.Equal([]model.Pitch{60, 64, 67}, mapResponse.Tab.Events[0].Notes)

	used := map[int]bool{}
	for _, p := range mapResponse.Tab.Events[0].Positions {
		assert.False(used[p.String])
		used[p.String] = true
	}
}

func TestMapSplitsDistantOnsetsE2E(t *testing.T) {
	body := createMapReqBody(t, model.MapRequestBody{
		Notes: []model.NoteEvent{
			{Pitch: 64, Onset: 0.000, Offset: 0.040, Confidence: 100},
			{Pitch: 67, Onset: 0.050, Offset: 0.090, Confidence: 100},
		},
	})
	req := httptest.NewRequest(http.MethodPost, "/map", body)
	w := httptest.NewRecorder()
	cmd.HandleMap(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var mapResponse model.MapResponse
	if err := json.Unmarshal(respBody, &mapResponse); err != nil {
		t.Fatal(err)
	}
	assert.Equal(2, mapResponse.Tab.EventCount)
}

func TestMapUnknownTuningE2E(t *testing.T) {
	body := createMapReqBody(t, model.MapRequestBody{
		Tuning: "nonexistent",
		Notes:  []model.NoteEvent{{Pitch: 64, Onset: 0, Offset: 0.5}},
	})
	req := httptest.NewRequest(http.MethodPost, "/map", body)
	w := httptest.NewRecorder()
	cmd.HandleMap(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(400, resp.StatusCode)

	var errResponse model.ErrorResponse
	if err := json.Unmarshal(respBody, &errResponse); err != nil {
		t.Fatal(err)
	}
	assert.Contains(errResponse.Error, "unknown tuning")
}
