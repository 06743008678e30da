// Command shopopt runs the shopping optimizer on local need and offer files.
//
// Usage:
//
//	shopopt optimize --needs needs.yaml --offers offers.yaml [--max-stores 3]
//	shopopt classify --needs needs.yaml
//
// Input files may be YAML or JSON, either a bare list or a document with a
// top-level "needs" or "offers" key. Results are printed as JSON.
package main

import (
	"os"

	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := newRootCmd(logger).Execute(); err != nil {
		logger.Error("shopopt failed", zap.Error(err))
		os.Exit(1)
	}
}
