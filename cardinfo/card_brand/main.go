package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
	"golang.org/x/exp/slog"
)

func main() {
	if err := run(os.Args, os.Stdout, os.Stderr); err != nil {
		fail("%v", err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	// .env must be loaded before flags read their EnvVars
	if err := loadEnvFile(getenv("CARDBRAND_ENV_FILE", ".env")); err != nil {
		return err
	}
	return newCLI(stdout, stderr).Run(args)
}

func newCLI(stdout, stderr io.Writer) *cli.App {
	def := DefaultConfig()

	setup := func(c *cli.Context) (*App, error) {
		cfg := &Config{
			Format:   c.String("format"),
			Mask:     c.Bool("mask"),
			Lang:     c.String("lang"),
			LogLevel: c.String("log-level"),
		}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		level, err := parseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
		return NewApp(logger, cfg, stdout), nil
	}

	app := cli.NewApp()
	app.Name = "card_brand"
	app.Usage = "identify the card network of card numbers by their leading digits"
	app.ArgsUsage = "[--] [number ...]"
	app.Writer = stdout
	app.ErrWriter = stderr
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "format",
			Usage:   "output format: text|table|json",
			Value:   def.Format,
			EnvVars: []string{"CARDBRAND_FORMAT"},
		},
		&cli.BoolFlag{
			Name:    "mask",
			Usage:   "print masked card numbers",
			EnvVars: []string{"CARDBRAND_MASK"},
		},
		&cli.StringFlag{
			Name:    "lang",
			Usage:   "label language (pt-BR, en)",
			Value:   def.Lang,
			EnvVars: []string{"CARDBRAND_LANG"},
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "debug|info|warn|error",
			Value:   def.LogLevel,
			EnvVars: []string{"LOG_LEVEL"},
		},
	}
	app.Commands = []*cli.Command{
		{
			Name:  "rules",
			Usage: "print the classification rules in evaluation order",
			Action: func(c *cli.Context) error {
				a, err := setup(c)
				if err != nil {
					return err
				}
				a.PrintRules()
				return nil
			},
		},
	}
	app.Action = func(c *cli.Context) error {
		a, err := setup(c)
		if err != nil {
			return err
		}
		numbers := c.Args().Slice()
		if len(numbers) == 0 {
			numbers = sampleNumbers
		}
		return a.Run(numbers)
	}
	return app
}

func fail(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
