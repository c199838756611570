// Package main starts the account registration wizard.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	signupcmd "github.com/louisbranch/signup/internal/cmd/signup"
	"github.com/louisbranch/signup/internal/platform/config"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		config.Exitf("load .env: %v", err)
	}
	cfg, err := signupcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	logger, err := signupcmd.NewLogger(cfg, os.Stdout)
	if err != nil {
		config.Exitf("configure logging: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := signupcmd.Run(ctx, cfg, logger); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
