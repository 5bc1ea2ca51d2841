package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pintabarberia/pinta-booking/internal/config"
	"github.com/pintabarberia/pinta-booking/internal/infra/storage"
	"github.com/pintabarberia/pinta-booking/internal/routes"
)

func main() {

	cfg := config.Load()

	stores, err := storage.New(cfg)
	if err != nil {
		log.Fatalf("failed to init storage: %v", err)
	}

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, stores, cfg)

	log.Printf("Server running on %s (storage=%s)", cfg.Addr(), cfg.StorageBackend)
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
