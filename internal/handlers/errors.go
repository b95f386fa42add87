package handlers

import (
	"encoding/json"
	"log"
	"net/http"
)

// respondWithJSON writes a JSON response with the given status code
func respondWithJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// respondWithError writes a JSON error body with the given status code
func respondWithError(w http.ResponseWriter, status int, message string) {
	if status >= 500 {
		log.Printf("Responding with %d: %s", status, message)
	}
	respondWithJSON(w, status, map[string]string{"error": message})
}
