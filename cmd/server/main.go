package main

import (
	"log"

	httpapi "salem-mystery/internal/api/http"
	"salem-mystery/internal/api/ws"
	"salem-mystery/internal/config"
	"salem-mystery/internal/store"
)

func main() {
	cfg := config.Load()
	mem := store.NewMemoryStore()
	hub := ws.NewHub(mem, cfg.Policy)
	r := httpapi.SetupRouter(mem, hub)

	log.Printf("listening on %s", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
