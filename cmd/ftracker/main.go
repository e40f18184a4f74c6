package main

import (
	"context"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/joho/godotenv"

	"github.com/garrettladley/ftracker/internal/paths"
)

func main() {
	_ = godotenv.Load()
	if envFile, err := paths.EnvFile(); err == nil {
		_ = godotenv.Load(envFile)
	}

	if err := fang.Execute(context.Background(), newRootCmd(), fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM)); err != nil {
		os.Exit(1)
	}
}
