package config

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger builds the logger described by c, writing to w.
func (c LogConfig) NewLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(c.Level)
	if err != nil {
		return nil, fmt.Errorf("config: log level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          c.Prefix,
		ReportTimestamp: c.Timestamps,
	}), nil
}
