package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gcbaptista/go-word-kernel/api"
	"github.com/gcbaptista/go-word-kernel/config"
	"github.com/gcbaptista/go-word-kernel/internal/engine"
)

const version = "1.0.0"

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "wordkernel",
		Short:         "Word kernel service: TF-IDF vectors and cosine Gram matrices over HTTP",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newVersionCommand())
	return rootCmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "Go Word Kernel v%s\n", version)
		},
	}
}

func newServeCommand() *cobra.Command {
	var (
		configPath string
		port       int
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Example: `  wordkernel serve                         # Start server on default port 8080
  wordkernel serve --port 9000             # Start server on port 9000
  wordkernel serve --config wordkernel.toml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return serve(cfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Configuration file path (TOML)")
	cmd.Flags().IntVarP(&port, "port", "p", 8080, "Port to run the server on")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	return cmd
}

func newLogger(cfg *config.ServerConfig) (*logrus.Entry, error) {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	if cfg.LogFormat == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	logger.SetLevel(level)
	return logger.WithField("service", "wordkernel"), nil
}

func serve(cfg *config.ServerConfig) error {
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}

	eng, err := engine.NewEngine(*cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize engine: %w", err)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(
		gin.Recovery(),
		api.RequestIDMiddleware(),
		api.LoggingMiddleware(logger),
		api.CORSMiddleware(),
		api.RequestSizeLimitMiddleware(cfg.MaxRequestBytes),
	)
	api.SetupRoutes(router, eng, logger)

	logger.WithFields(logrus.Fields{
		"addr":        cfg.Addr(),
		"max_kernels": cfg.MaxKernels,
		"threshold":   cfg.Defaults.Threshold,
	}).Info("Starting server")
	if err := router.Run(cfg.Addr()); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}
	return nil
}
