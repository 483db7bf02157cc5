//go:build !darwin && !linux && !windows

package power

import (
	"runtime"

	"go.uber.org/zap"
)

func newPlatform(logger *zap.Logger) Platform {
	logger.Warn("no execution state backend for this OS; state tracked only",
		zap.String("os", runtime.GOOS))
	return NewMemoryPlatform(Baseline)
}
