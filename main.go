package main

import (
	"context"
	"os"

	"github.com/shandysiswandi/txsummary/internal/app"
)

func main() {
	application := app.New()    // Initialize the application
	wait := application.Start() // Start the application and wait for the termination signal
	<-wait                      // Wait for the application to receive a termination signal

	ctx, cancel := context.WithTimeout(context.Background(), application.ShutdownTimeout())
	defer cancel()

	if err := application.Stop(ctx); err != nil { // Stop the application gracefully
		cancel()
		os.Exit(1)
	}
}
