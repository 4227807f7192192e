package main

import (
	"context"
	"log"
	"os"

	"github.com/amrit110/moonshot-ui/internal/app"
	"github.com/amrit110/moonshot-ui/internal/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	a, err := app.NewApp(cfg)

	if err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}

	os.Exit(a.Run(ctx))

}
