package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/ssat-prep/backend/internal/api"
	"github.com/ssat-prep/backend/internal/generator"
	"github.com/ssat-prep/backend/internal/provider"
)

func main() {
	cfg := provider.ConfigFromEnv()
	providers, err := provider.NewClient(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize provider client: %v", err)
	}

	gen := generator.New(providers)
	handler := api.NewHandler(gen, providers)

	r := mux.NewRouter()
	v1 := r.PathPrefix("/api/v1").Subrouter()
	v1.HandleFunc("/generate", handler.Generate).Methods("POST")
	v1.HandleFunc("/providers/status", handler.ProviderStatus).Methods("GET")

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on :%s", port)
	if err := http.ListenAndServe(":"+port, c.Handler(r)); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
