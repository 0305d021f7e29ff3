package server

import (
	"encoding/json"
	"net/http"

	"github.com/charmbracelet/log"

	errs "github.com/matzehuels/antennas/pkg/errors"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Code    errs.Code `json:"code"`
	Message string    `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.Warn("Encode response", "err", err)
	}
}

// writeError classifies err and writes it with the matching status.
// Internal errors are logged and their detail withheld from the client.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	e := errs.Classify(err)
	status := e.Code.HTTPStatus()
	msg := e.Message
	if status >= http.StatusInternalServerError {
		s.cfg.Logger.Error("Request failed", "err", err)
		msg = "internal error"
	}
	writeJSON(w, status, errorBody{Code: e.Code, Message: msg})
}
