package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/andyle182810/censys/censys"
	"github.com/andyle182810/censys/config"
	"github.com/andyle182810/censys/logutil"
)

const userAgent = "censys-cli"

type app struct {
	envFile   string
	logLevel  string
	timeout   time.Duration
	baseURL   string
	requestID string

	logger zerolog.Logger
	cfg    *config.Config
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	a := &app{
		envFile:   ".env",
		logLevel:  "",
		timeout:   0,
		baseURL:   "",
		requestID: "",
		logger:    zerolog.Nop(),
		cfg:       nil,
	}

	rootCmd := &cobra.Command{
		Use:           "censys",
		Short:         "Query the Censys Search v2 hosts API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.envFile, "env-file", a.envFile, "dotenv file with CENSYS_ID and CENSYS_SECRET")
	flags.StringVar(&a.logLevel, "log-level", "", "log level (overrides LOG_LEVEL)")
	flags.DurationVar(&a.timeout, "timeout", 0, "request timeout (overrides CENSYS_TIMEOUT)")
	flags.StringVar(&a.baseURL, "base-url", "", "API base URL")
	_ = flags.MarkHidden("base-url")
	flags.StringVar(&a.requestID, "request-id", "", "X-Request-ID sent with the request (random by default)")

	rootCmd.AddCommand(newViewCmd(a))
	rootCmd.AddCommand(newSearchCmd(a))
	rootCmd.AddCommand(newAggregateCmd(a))

	return rootCmd
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.envFile)
	if err != nil {
		return err
	}

	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}

	if a.timeout > 0 {
		cfg.CensysTimeout = a.timeout
	}

	if a.baseURL != "" {
		cfg.CensysBaseURL = a.baseURL
	}

	a.cfg = cfg
	a.logger = logutil.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)

	return nil
}

func (a *app) client() (*censys.Client, error) {
	return censys.New(a.cfg.Censys(), censys.WithLogger(a.logger), censys.WithUserAgent(userAgent))
}

func (a *app) requestContext(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if a.requestID != "" {
		ctx = censys.ContextWithRequestID(ctx, a.requestID)
	}

	return ctx
}

// reportedError marks a failure that has already been logged.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string {
	return e.err.Error()
}

func (e *reportedError) Unwrap() error {
	return e.err
}

func (a *app) print(cmd *cobra.Command, doc censys.Document) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}

	return nil
}
