package main

import (
	"context"
	"os"

	"go.uber.org/zap"

	"carfactory/pkg/app"
)

// main is a thin adapter for installing the binary with `go install ./cmd/carfactory`.
func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	if err := app.Run(context.Background(), os.Args[1:], os.Stdout, nil); err != nil {
		logger.Fatal("application stopped with error", zap.Error(err))
	}
}
