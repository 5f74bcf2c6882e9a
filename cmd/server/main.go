// Command server runs the journal HTTP API.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/journai/journai-backend/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}
