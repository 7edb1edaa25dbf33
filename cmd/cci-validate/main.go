package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/artpar/cci-validate/internal/engine"
)

// Version information (set by build)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// =============================================================================
// Exit Codes
// =============================================================================

const (
	ExitSuccess          = 0
	ExitConfigError      = 1
	ExitValidationFailed = 2
	ExitFault            = 3
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("cci-validate", flag.ContinueOnError)
	configPath := fs.String("config", "", "Path to config file")
	showVersion := fs.Bool("version", false, "Print version and exit")
	if err := fs.Parse(args); err != nil {
		return ExitConfigError
	}

	if *showVersion {
		fmt.Printf("cci-validate %s (built %s)\n", Version, BuildTime)
		return ExitSuccess
	}

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		return ExitConfigError
	}

	logger := SetupLogger(cfg)
	logger.Info("validating deployment inputs",
		"version", Version,
		"region", cfg.Region,
		"namespace", cfg.Namespace,
		"deployment", cfg.Deployment,
	)

	report, err := engine.NewDefaultRunner(logger).Run(cfg.Inputs())
	if err != nil {
		logger.Error("validation aborted", "error", err)
		return ExitFault
	}
	if !report.OK() {
		for _, f := range report.Failures {
			logger.Error("invalid input", "field", f.Field, "reason", f.Reason)
		}
		return ExitValidationFailed
	}

	logger.Info("deployment inputs are valid", "checks", len(report.Checked))
	return ExitSuccess
}
