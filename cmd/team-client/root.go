package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"team-member-service/internal/client"
	"team-member-service/internal/client/cache"
	"team-member-service/internal/client/screen"
	"team-member-service/internal/config"
)

// app: зависимости, общие для всех команд.
type app struct {
	apiURL  string
	timeout time.Duration
	verbose bool

	deps screen.Deps
	api  *client.Client
}

// terminalNotifier печатает сообщения экранов в stderr.
type terminalNotifier struct {
	w io.Writer
}

func (n terminalNotifier) Notify(title, text string) {
	fmt.Fprintf(n.w, "%s: %s\n", title, text)
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "team-client",
		Short: "Command-line client for the team management API",
		Long: `Browse and edit team members, and assign them to projects and tasks.

The API address is taken from --api-url, then TEAM_API_URL (env or .env).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.apiURL, "api-url", "", "API base URL (default from TEAM_API_URL)")
	rootCmd.PersistentFlags().DurationVar(&a.timeout, "timeout", 0, "Request timeout (default from CLIENT_TIMEOUT)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log HTTP errors to stderr")

	rootCmd.AddCommand(newMembersCmd(a))
	rootCmd.AddCommand(newCatalogCmd(a, "projects", "List projects"))
	rootCmd.AddCommand(newCatalogCmd(a, "tasks", "List tasks"))

	return rootCmd
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.LoadClient()
	if err != nil {
		return err
	}

	baseURL := cfg.APIURL
	if a.apiURL != "" {
		baseURL = a.apiURL
	}
	timeout := cfg.RequestTimeout()
	if a.timeout > 0 {
		timeout = a.timeout
	}

	level := slog.LevelError + 1
	if a.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	a.api = client.New(client.Config{BaseURL: baseURL, Timeout: timeout, Logger: logger})
	a.deps = screen.FromClient(a.api, cache.NewStore(), terminalNotifier{w: cmd.ErrOrStderr()})
	return nil
}

func (a *app) context(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
