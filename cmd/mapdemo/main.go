package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dklassen/mapreg/internal/cmd/mapdemo"
)

const logPrefix = "[MAPDEMO] "

func main() {
	setupLogging(os.Stderr)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

// setupLogging must run before anything that can fail.
func setupLogging(w io.Writer) {
	log.SetOutput(w)
	log.SetPrefix(logPrefix)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet(mapdemo.ServiceName, flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfg, err := mapdemo.ParseConfig(fs, args)
	if err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	if err := mapdemo.Run(ctx, cfg, stdout); err != nil {
		return fmt.Errorf("map reservations: %w", err)
	}
	return nil
}
