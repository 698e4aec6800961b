package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/term"

	"github.com/five82/mise/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Optional; MISE_* overrides may live in a local .env
	_ = godotenv.Load()

	configPath := flag.String("config", "", "override config path (optional)")
	route := flag.String("route", "", "page to open at startup, e.g. pantry (optional)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: mise [-config path] [-route name | name]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	fragment := *route
	if flag.NArg() > 0 {
		fragment = flag.Arg(0)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "mise: stdout is not a terminal")
		return 1
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := app.Run(ctx, app.Options{ConfigPath: *configPath, Fragment: fragment}); err != nil {
		fmt.Fprintf(os.Stderr, "mise: %v\n", err)
		return 1
	}
	return 0
}
