package main

import (
	"log"

	"github.com/EbrahimEh/Smart-Home-Ceremony-Client/internal/app"
	"github.com/EbrahimEh/Smart-Home-Ceremony-Client/internal/config"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("app run: %v", err)
	}
}
