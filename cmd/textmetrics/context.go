package main

import (
	"io"

	"github.com/baditaflorin/go_text_metrics/internal/config"
	"github.com/baditaflorin/l"
)

const (
	outputText = "text"
	outputJSON = "json"
)

type commandContext struct {
	configPath string
	output     string
	verbose    bool

	cfg    *config.Config
	logger l.Logger
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	cfg, _, err := config.Load(c.configPath)
	if err != nil {
		return nil, err
	}
	c.cfg = cfg
	return cfg, nil
}

// loggerFor returns a logger writing to stderr with --verbose and discarding otherwise.
func (c *commandContext) loggerFor(stderr io.Writer) (l.Logger, error) {
	if c.logger != nil {
		return c.logger, nil
	}
	output := io.Discard
	if c.verbose {
		output = stderr
	}
	logger, err := l.NewStandardFactory().CreateLogger(l.Config{
		Output:     output,
		JsonFormat: false,
		AddSource:  false,
	})
	if err != nil {
		return nil, err
	}
	c.logger = logger
	return logger, nil
}

func (c *commandContext) close() error {
	if c.logger == nil {
		return nil
	}
	err := c.logger.Close()
	c.logger = nil
	return err
}

func (c *commandContext) jsonOutput() bool {
	return c.output == outputJSON
}
