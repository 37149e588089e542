package main

import (
	"context"
	"fmt"
	"os"

	"github.com/commitlens/commitlens/internal/cli/registry"
	"github.com/commitlens/commitlens/internal/commands/cache"
	"github.com/commitlens/commitlens/internal/commands/completion"
	configcmd "github.com/commitlens/commitlens/internal/commands/config"
	"github.com/commitlens/commitlens/internal/commands/summarize"
	cfg "github.com/commitlens/commitlens/internal/config"
	"github.com/commitlens/commitlens/internal/i18n"
	"github.com/commitlens/commitlens/internal/logger"
	"github.com/commitlens/commitlens/internal/ui"
	"github.com/commitlens/commitlens/internal/version"
	"github.com/urfave/cli/v3"
)

func main() {
	app, translations, err := initializeApp()
	if err != nil {
		ui.HandleAppError(os.Stderr, err, translations)
		os.Exit(1)
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		ui.HandleAppError(os.Stderr, err, translations)
		os.Exit(1)
	}
}

func initializeApp() (*cli.Command, *i18n.Translations, error) {
	logger.Initialize(false, false)

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, nil, fmt.Errorf("could not determine the home directory: %w", err)
	}

	cfgApp, err := cfg.LoadConfig(homeDir)
	if err != nil {
		return nil, nil, err
	}

	translations, err := i18n.NewTranslations(cfgApp.Language, "")
	if err != nil {
		return nil, nil, fmt.Errorf("error loading translations: %w", err)
	}

	// -v belongs to --verbose
	cli.VersionFlag = &cli.BoolFlag{
		Name:  "version",
		Usage: translations.GetMessage("flags.version", 0, nil),
	}

	summarizeFactory := summarize.NewSummarizeCommandFactory(summarize.DefaultServiceProvider)

	registerCommand := registry.NewRegistry(cfgApp, translations)
	factories := []struct {
		name    string
		factory registry.CommandFactory
	}{
		{"summarize", summarizeFactory},
		{"config", configcmd.NewConfigCommandFactory()},
		{"cache", cache.NewCacheCommand()},
		{"completion", completion.NewCompletionCommand()},
	}
	for _, f := range factories {
		if err := registerCommand.Register(f.name, f.factory); err != nil {
			return nil, translations, err
		}
	}

	return &cli.Command{
		Name:                  "commitlens",
		Usage:                 translations.GetMessage("app.usage", 0, nil),
		Description:           translations.GetMessage("app.long", 0, nil),
		Version:               version.FullVersion(),
		Flags:                 summarizeFactory.CreateFlags(translations, cfgApp),
		Action:                summarizeFactory.CreateAction(translations, cfgApp),
		Commands:              registerCommand.CreateCommands(),
		EnableShellCompletion: true,
	}, translations, nil
}
