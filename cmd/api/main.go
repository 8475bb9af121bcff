package main

import (
	"net/http"
	"os"
	"time"

	_ "vet-clinic/docs"
	"vet-clinic/internal/platform/logger"
	"vet-clinic/internal/router"
)

// @title Vet Clinic API
// @version 1.0
// @description CRUD de la clínica veterinaria: owners con sus mascotas y visitas, más el listado de veterinarios con especialidades.
// @BasePath /
func main() {
	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	log := logger.NewFromEnv()

	r := router.NewRouter(router.Options{Logger: log})

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
