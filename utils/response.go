package utils

import (
	"encoding/json"
	"log"
	"net/http"
)

// ServerErrorMessage is the body of every unexpected failure
const ServerErrorMessage = "Server Error"

// WriteJSON writes v as the JSON response body
func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}

// WriteError writes {"message": message}
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, map[string]string{"message": message})
}

// WriteServerError logs err and answers with the generic 500 message
func WriteServerError(w http.ResponseWriter, context string, err error) {
	log.Printf("%s: %v", context, err)
	WriteError(w, http.StatusInternalServerError, ServerErrorMessage)
}
