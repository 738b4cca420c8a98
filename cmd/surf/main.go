package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/tss-calculator/go-lib/pkg/infrastructure/logger"

	"github.com/DanielSiepmann/Surf/pkg/surf/infrastructure/config"
	"github.com/DanielSiepmann/Surf/pkg/surf/infrastructure/dependency"

	"github.com/urfave/cli/v2"
)

func main() {
	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()
	ctx = listenOSKillSignalsContext(ctx)
	mainLogger := logger.NewTextLogger()

	project, err := config.Load("surf.json")
	if err != nil {
		mainLogger.FatalError(err, "failed load project config")
	}
	container := dependency.NewDependencyContainer(mainLogger, project)
	ctx = dependency.ContainerToContext(ctx, container)

	app := &cli.App{
		Name: "surf",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "release",
				Required: true,
			},
			&cli.StringFlag{
				Name: "application",
			},
		},
		Commands: cli.Commands{
			&cli.Command{
				Name: "cleanup",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name: "dry-run",
					},
				},
				Action: func(c *cli.Context) error {
					return cleanup(c.Context, c.String("application"), c.String("release"), c.Bool("dry-run"))
				},
			},
			&cli.Command{
				Name: "simulate",
				Action: func(c *cli.Context) error {
					return simulate(c.Context, c.String("application"), c.String("release"))
				},
			},
		},
	}
	err = app.RunContext(ctx, os.Args)
	if err != nil {
		mainLogger.FatalError(err, "failed execute command "+strings.Join(os.Args, " "))
	}
}

func listenOSKillSignalsContext(ctx context.Context) context.Context {
	var cancelFunc context.CancelFunc
	ctx, cancelFunc = context.WithCancel(ctx)
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT)
		select {
		case <-ch:
			cancelFunc()
		case <-ctx.Done():
			return
		}
	}()
	return ctx
}
