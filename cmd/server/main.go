package main

import (
	"log"

	"game_wheel/internal/app"
)

func main() {
	a := app.NewApp()

	if err := a.Run(); err != nil {
		log.Fatalf("failed to run app: %v", err)
	}
}
