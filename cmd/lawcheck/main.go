// Command lawcheck runs the law suites of the monadfn instances.
//
// Usage:
//
//	lawcheck run [suite...] [--samples N] [--seed S] [--bound K] [--metrics]
//	lawcheck list [--yaml]
//
// Settings are read from --config (default ./lawcheck.yaml) and from
// LAWCHECK_ environment variables; flags take precedence over both.
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		logger.Error(err)
		stop()
		os.Exit(1)
	}
}
