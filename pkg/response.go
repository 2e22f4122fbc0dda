package pkg

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
)

const ContentTypeJSON = "application/json"

// StatusResponse is the envelope used by the account endpoints and by every auth failure.
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func WriteResponseBytes(w http.ResponseWriter, contentType string, message []byte, statusCode int) {
	if contentType != "" {
		w.Header().Add("Content-Type", contentType)
	}
	w.WriteHeader(statusCode)

	if _, err := w.Write(message); err != nil {
		log.Errorf("failed to write response [%s]: %s", message, err)
	}
}

// WriteJSON marshals v and writes it with the given status code.
func WriteJSON(w http.ResponseWriter, v any, statusCode int) {
	respBytes, err := json.Marshal(v)
	if err != nil {
		log.Errorf("marshal response: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	WriteResponseBytes(w, ContentTypeJSON, respBytes, statusCode)
}

func WriteStatusResponse(w http.ResponseWriter, success bool, message string, statusCode int) {
	WriteJSON(w, StatusResponse{Success: success, Message: message}, statusCode)
}
