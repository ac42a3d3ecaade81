// Command server runs the moderation HTTP API until SIGINT or SIGTERM.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/moderation-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		stop()
		log.Fatalf("server: %v", err)
	}
}
