package main

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"cutlog/internal/config"
	"cutlog/internal/logging"
	"cutlog/internal/pipeline"
)

type commandContext struct {
	configFlag   *string
	fpsFlag      *float64
	logLevelFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag *string, fpsFlag *float64, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		fpsFlag:      fpsFlag,
		logLevelFlag: logLevelFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// fps resolves the effective frame rate: the --fps flag when set, otherwise
// the configured timeline default.
func (c *commandContext) fps() (float64, error) {
	if c.fpsFlag != nil && *c.fpsFlag > 0 {
		return *c.fpsFlag, nil
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return 0, err
	}
	return cfg.Timeline.FPS, nil
}

// ensureLogger builds the shared logger once per invocation, stamped with a
// fresh run ID. Logs go to stderr so stdout stays clean for report output.
func (c *commandContext) ensureLogger() (*slog.Logger, context.Context, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		level := cfg.Logging.Level
		if c.logLevelFlag != nil && strings.TrimSpace(*c.logLevelFlag) != "" {
			level = strings.TrimSpace(*c.logLevelFlag)
		}
		logger, err := logging.New(logging.Options{
			Level:       level,
			Format:      cfg.Logging.Format,
			OutputPaths: []string{"stderr"},
		})
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger = logger
	})
	if c.loggerErr != nil {
		return nil, nil, c.loggerErr
	}
	runCtx := pipeline.WithRunID(context.Background(), pipeline.NewRunID())
	return logging.WithContext(runCtx, c.logger), runCtx, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
