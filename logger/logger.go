// Package logger builds the process-wide zap logger.
package logger

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
)

// New returns a sugared zap logger. Set FUNDWATCH_ENV=dev for the
// human-readable development encoder; anything else gets production
// JSON output.
func New() *zap.SugaredLogger {
	var (
		l   *zap.Logger
		err error
	)
	if strings.ToLower(os.Getenv("FUNDWATCH_ENV")) == "dev" {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		panic(fmt.Errorf("initialize logger: %w", err))
	}
	return l.Sugar()
}
