package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/yanqian/styling-advisor/internal/interface/cli"
	"github.com/yanqian/styling-advisor/pkg/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cleanup := func() {}
	factory := func() (cli.Application, error) {
		app, appCleanup, err := initializeApp()
		if err != nil {
			return nil, err
		}
		cleanup = appCleanup
		return app, nil
	}

	err := cli.NewRootCommand(factory, logger.New()).ExecuteContext(ctx)
	cleanup()
	if err != nil {
		cli.PrintError(os.Stderr, err)
		return 1
	}
	return 0
}
