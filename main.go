package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/gemdynamics/pulse/cmd"
	"github.com/gemdynamics/pulse/internal/version"
)

func main() {
	// Handle --version flag
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-v") {
		fmt.Println(version.Short())
		os.Exit(0)
	}

	// Set up signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nInterrupting...")
		cancel()
		// Second signal forces exit
		<-sigChan
		fmt.Println("\nForce exiting...")
		os.Exit(1)
	}()

	// Bare invocation shows usage and exits clean
	args := os.Args[1:]
	if len(args) == 0 {
		args = []string{"--help"}
	}

	cli := cmd.CLI{}
	parser, err := kong.New(&cli,
		kong.Name("pulse"),
		kong.Description("Command-line client for the PULSE Magazine service"),
		kong.UsageOnError(),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	kongCtx, err := parser.Parse(args)
	parser.FatalIfErrorf(err)

	setupLogging(cli.Debug)

	err = kongCtx.Run(&cmd.Context{Context: ctx})
	kongCtx.FatalIfErrorf(err)
}

// setupLogging configures the default slog logger. Debug mode surfaces
// per-request logging from the pulse client on stderr.
func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}
