package main

import (
	"context"
	"os"

	"go.uber.org/zap"

	"carfactory/pkg/app"
)

// main exposes a root-level entry point so `go run carfactory.go` works from a checkout.
func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	if err := app.Run(context.Background(), os.Args[1:], os.Stdout, nil); err != nil {
		logger.Fatal("application stopped with error", zap.Error(err))
	}
}
