// Package main provides the CLI entry point for fileprov.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/fileprov/pkg/adapters/logger"
	"github.com/user/fileprov/pkg/adapters/osfilesystem"
	"github.com/user/fileprov/pkg/ports"
	"github.com/user/fileprov/pkg/provider"
)

var version = "dev"

// notFoundExitCode is the contract exit status for reading a resource that
// does not exist. Orchestrators branch on this value without parsing output.
const notFoundExitCode = 22

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "fileprov",
		Usage:   l10n.T("Manage a file-backed resource from a JSON request on stdin"),
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "action",
				Aliases:  []string{"a"},
				Usage:    l10n.T("Action to perform (create, read, update, delete)"),
				Required: true,
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Value:   "info",
				Usage:   l10n.T("Log level (debug, info, warn, error)"),
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"Q"},
				Usage:   l10n.T("Suppress all log output"),
			},
		},
		Action:          run,
		HideHelpCommand: true,
	}
}

func run(c *cli.Context) error {
	// The selector is the dispatch key; reject it before stdin is touched.
	action, err := provider.ParseAction(c.String("action"))
	if err != nil {
		return err
	}

	var log ports.Logger
	if c.Bool("quiet") {
		log = logger.NewNoop()
	} else {
		log = logger.NewConsole(ports.ParseLogLevel(c.String("log-level")))
	}

	handler := provider.New(osfilesystem.New(), log)
	if err := handler.Handle(action, os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, provider.ErrNotFound) {
			// Exit 22, nothing on stdout.
			return cli.Exit("", notFoundExitCode)
		}
		return err
	}
	return nil
}
