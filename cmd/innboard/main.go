package main

import (
	"log"

	"github.com/rockpoolstays/innboard/internal/dashboard/app"
)

func main() {
	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	a, err := app.New(cfg)
	if err != nil {
		log.Fatalf("startup: %v", err)
	}

	if err := a.Run(); err != nil {
		log.Fatalf("server: %v", err)
	}
}
