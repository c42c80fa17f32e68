package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
)

// Fake upstreams for local development: the records endpoint, the maps
// bootstrap script and the nearby search.
func main() {
	http.HandleFunc("/posts", func(w http.ResponseWriter, r *http.Request) {
		posts := make([]map[string]interface{}, 0, 12)
		for i := 1; i <= 12; i++ {
			posts = append(posts, map[string]interface{}{
				"userId": 1,
				"id":     i,
				"title":  fmt.Sprintf("Mock post %d", i),
				"body":   "This is a mock post served by the mock feed server.",
			})
		}
		writeJSON(w, posts)
	})

	http.HandleFunc("/maps/api/js", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/javascript")
		if _, err := w.Write([]byte("window.google = window.google || {maps: {places: {}}};\n")); err != nil {
			slog.Error("Failed to write script", "error", err)
		}
	})

	http.HandleFunc("/maps/api/place/nearbysearch/json", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") == "" {
			writeJSON(w, map[string]interface{}{
				"status":        "REQUEST_DENIED",
				"error_message": "You must use an API key to authenticate each request.",
				"results":       []interface{}{},
			})
			return
		}
		writeJSON(w, map[string]interface{}{
			"status": "OK",
			"results": []map[string]interface{}{
				{"place_id": "mock-1", "name": "Mock Bistro", "vicinity": "1 Market St", "rating": 4.3},
				{"place_id": "mock-2", "name": "Mock Noodles", "vicinity": "22 Mission St", "rating": 3.9},
				{"place_id": "mock-3", "name": "Mock Diner", "vicinity": "300 Castro St"},
			},
		})
	})

	slog.Info("Mock feed server running on :8081")
	if err := http.ListenAndServe(":8081", nil); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}
