// internal/http/respond.go
package httpserver

import (
	"encoding/json"
	"net/http"
)

func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// Error writes a domain error as a JSON body with the mapped status.
func Error(w http.ResponseWriter, err error, fallback string) {
	status, msg := ErrorMessage(err, fallback)
	JSON(w, status, map[string]string{"error": msg})
}
