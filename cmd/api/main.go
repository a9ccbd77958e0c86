package main

import (
	"context"
	"log"

	"github.com/zngreg/pizzeria-orders/internal/app/api"
)

func main() {
	if err := api.Run(context.Background()); err != nil {
		log.Fatalf("order pipeline API failed: %v", err)
	}
}
