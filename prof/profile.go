// Package prof carries the lightweight timing helpers used by the command
// line tools around the synthesis and comparison pipeline.
package prof

import (
	"time"

	"go.uber.org/zap"
)

// Track logs the duration since start under the given stage name. Use with
// defer at the top of a stage:
//
//	defer prof.Track(log, time.Now(), "synthesize")
func Track(log *zap.SugaredLogger, start time.Time, stage string) time.Duration {
	elapsed := time.Since(start)
	log.Infow("stage finished", "stage", stage, "elapsed", elapsed)
	return elapsed
}

// Timed runs fn and returns its duration alongside its error.
func Timed(fn func() error) (time.Duration, error) {
	start := time.Now()
	err := fn()
	return time.Since(start), err
}
