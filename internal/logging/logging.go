// Package logging builds the process-wide structured logger and
// adapts it to the narrow core.Logger interface the rendering kernel
// logs through.
package logging

import (
	"go.uber.org/zap"

	"github.com/prism-render/prism/pkg/core"
)

// New builds a production zap logger, or a development logger with
// human-readable output when verbose is set.
func New(verbose bool) (*zap.SugaredLogger, error) {
	var cfg zap.Config
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

// KernelLogger adapts a *zap.SugaredLogger to core.Logger's Printf
// signature so the renderer can log through the kernel's narrow
// interface while the concrete logger stays leveled and structured.
// Scene assembly takes no logger.
type KernelLogger struct {
	*zap.SugaredLogger
}

// Printf implements core.Logger.
func (k KernelLogger) Printf(format string, args ...interface{}) {
	k.SugaredLogger.Infof(format, args...)
}

var _ core.Logger = KernelLogger{}
