package main

import (
	"log"
	"os"

	"github.com/wahmd/weatherman/internal/bootstrap"
)

func main() {
	app, err := bootstrap.NewBootstrap(os.Stdout, os.Stderr)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	os.Exit(app.Run(os.Args[1:]))
}
