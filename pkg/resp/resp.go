package resp

import (
	"encoding/json"
	"log"
	"net/http"
)

// WriteJSONResponse - пишет JSON ответ с указанным статусом
func WriteJSONResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		log.Println("write json response:", err)
	}
}
