package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"cal365/internal/app"
	"cal365/internal/config"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override settings path (optional)")
	debug := flag.Bool("debug", false, "write a debug log to the config directory")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{ConfigPath: *configPath, DebugLog: *debug}
	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "cal365: %v\n", err)
		if errors.Is(err, config.ErrClientIDMissing) {
			if path, perr := config.DefaultPath(); perr == nil {
				fmt.Fprintf(os.Stderr, "Set client_id in %s and run again.\n", path)
			}
		}
		return 1
	}
	return 0
}
