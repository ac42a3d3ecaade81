// Command modctl is the moderation toolkit CLI: classify text, maintain the
// term dictionary and migrate the storage schema.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/moderation-backend/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := cli.Execute(ctx)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
