package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/fatih/color"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relcheck/pkg/cli/config"
	"github.com/m-mizutani/relcheck/pkg/infra/dependency"
	"github.com/m-mizutani/relcheck/pkg/report"
	"github.com/m-mizutani/relcheck/pkg/usecase"
	"github.com/urfave/cli/v3"
)

const renderWidth = 100

func cmdCheck() *cli.Command {
	var (
		githubCfg  config.GitHub
		stateCfg   config.State
		slackCfg   config.Slack
		configPath string
		format     string
		output     string
		readme     string
		render     bool
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "format",
			Aliases:     []string{"f"},
			Usage:       "Report format (table, json, markdown)",
			Value:       string(report.KindTable),
			Destination: &format,
			Sources:     cli.EnvVars("RELCHECK_FORMAT"),
			Validator: func(v string) error {
				if !slices.Contains(report.Kinds, report.Kind(v)) {
					return goerr.New("unsupported format", goerr.V("format", v))
				}
				return nil
			},
		},
		&cli.StringFlag{
			Name:        "config",
			Usage:       "Dependency list file (.yml, .yaml or .toml)",
			Value:       dependency.DefaultPath,
			Destination: &configPath,
			Sources:     cli.EnvVars("RELCHECK_CONFIG"),
		},
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Output file for json and markdown reports (default output.json or output.md)",
			Destination: &output,
			Sources:     cli.EnvVars("RELCHECK_OUTPUT"),
		},
		&cli.StringFlag{
			Name:        "readme",
			Usage:       "Readme stamped with the last check time, empty to disable",
			Value:       usecase.DefaultReadmePath,
			Destination: &readme,
			Sources:     cli.EnvVars("RELCHECK_README"),
		},
		&cli.BoolFlag{
			Name:        "render",
			Usage:       "Also print the markdown report rendered for the terminal",
			Destination: &render,
			Sources:     cli.EnvVars("RELCHECK_RENDER"),
		},
	}
	flags = append(flags, githubCfg.Flags()...)
	flags = append(flags, stateCfg.Flags()...)
	flags = append(flags, slackCfg.Flags()...)

	return &cli.Command{
		Name:    "check",
		Aliases: []string{"c"},
		Usage:   "Check configured repositories for new releases",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			kind := report.Kind(format)
			formatter, err := report.New(kind)
			if err != nil {
				return err
			}

			client, err := githubCfg.NewClient()
			if err != nil {
				return goerr.Wrap(err, "failed to create GitHub client")
			}

			store, closeStore, err := stateCfg.NewStore(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to create state store", goerr.V("state", stateCfg.Location))
			}
			defer closeStore()

			repos := dependency.Load(ctx, configPath)
			logger.Info("Checking repositories",
				slog.String("config", configPath),
				slog.Int("count", len(repos)),
				slog.String("current_repo", githubCfg.CurrentRepo),
			)

			opts := []usecase.Option{
				usecase.WithReadme(readme),
				usecase.WithCurrentRepo(githubCfg.CurrentRepo),
			}
			if notifier := slackCfg.NewNotifier(githubCfg.CurrentRepo); notifier != nil {
				opts = append(opts, usecase.WithNotifier(notifier))
			}

			manager := usecase.NewReleaseManager(
				client,
				usecase.NewAssetDiscoverer(client, usecase.WithWebURL(githubCfg.WebURL)),
				usecase.NewTracker(ctx, store),
				opts...,
			)
			records := manager.CheckAndUpdate(ctx, repos)

			text, err := formatter.Format(records)
			if err != nil {
				return goerr.Wrap(err, "failed to format report", goerr.V("format", format))
			}

			w := c.Root().Writer
			if kind == report.KindTable {
				_, err := fmt.Fprintln(w, text)
				return err
			}

			path := output
			if path == "" {
				path = report.OutputFile(kind)
			}
			if err := os.WriteFile(path, []byte(text), 0644); err != nil {
				return goerr.Wrap(err, "failed to write report", goerr.V("path", path))
			}
			if _, err := color.New(color.FgGreen).Fprintf(w, "Output saved to %s\n", path); err != nil {
				return err
			}

			if render && kind == report.KindMarkdown {
				rendered, err := report.Render(text, renderWidth)
				if err != nil {
					return err
				}
				if _, err := fmt.Fprint(w, rendered); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
