package resp

import (
	"encoding/json"
	"net/http"
)

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func WriteJSONResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteError пишет {"error": message}
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSONResponse(w, status, errorResponse{Error: message})
}

// WriteMessage пишет {"message": message}
func WriteMessage(w http.ResponseWriter, status int, message string) {
	WriteJSONResponse(w, status, messageResponse{Message: message})
}
