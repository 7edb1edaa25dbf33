// Package engine runs the deployment input checks in the order the
// deployment action applies them and collects the outcome.
package engine

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/artpar/cci-validate/internal/core/validation"
	"github.com/artpar/cci-validate/internal/shell/manifest"
)

// Inputs holds the deployment action parameters to check.
type Inputs struct {
	AccessKey  string
	SecretKey  string
	ProjectID  string
	Region     string
	Namespace  string
	Deployment string
	Manifest   string
	Image      string
}

// Failure records a rejected input.
type Failure struct {
	Field  string
	Reason string
}

// Report is the outcome of a run.
type Report struct {
	Checked  []string
	Failures []Failure
}

// OK reports whether every check passed.
func (r Report) OK() bool {
	return len(r.Failures) == 0
}

// Failed reports whether the named check was rejected.
func (r Report) Failed(field string) bool {
	for _, f := range r.Failures {
		if f.Field == field {
			return true
		}
	}
	return false
}

// Check validates one field of the inputs. A non-nil error is a fault that
// stops the run; false with a nil error is an ordinary rejection.
// Skip reports that the check does not apply to these inputs. Reason is
// recorded for a rejection only when Run reports no message of its own.
type Check struct {
	Field  string
	Reason string
	Skip   func(in Inputs, report Report) bool
	Run    func(in Inputs, r validation.Reporter) (bool, error)
}

// Runner dispatches registered checks in registration order.
type Runner struct {
	checks []Check
	logger *slog.Logger
	mu     sync.RWMutex
}

// NewRunner creates a runner with no checks registered.
func NewRunner(logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{logger: logger}
}

// NewDefaultRunner creates a runner with every deployment input check
// registered.
func NewDefaultRunner(logger *slog.Logger) *Runner {
	r := NewRunner(logger)
	for _, c := range DefaultChecks() {
		r.Register(c)
	}
	return r
}

// Register appends a check. Checks run in the order they are registered.
func (r *Runner) Register(c Check) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checks = append(r.checks, c)
}

// Run executes every registered check against in. Rejections are collected
// in the report; the first fault aborts the run and is returned.
func (r *Runner) Run(in Inputs) (Report, error) {
	r.mu.RLock()
	checks := make([]Check, len(r.checks))
	copy(checks, r.checks)
	r.mu.RUnlock()

	var report Report
	for _, c := range checks {
		if c.Skip != nil && c.Skip(in, report) {
			r.logger.Debug("skipping check", "check", c.Field)
			continue
		}

		r.logger.Debug("running check", "check", c.Field)
		rec := &reasonRecorder{next: r.logger}
		ok, err := c.Run(in, rec)
		report.Checked = append(report.Checked, c.Field)
		if err != nil {
			r.logger.Error("check failed", "check", c.Field, "error", err)
			return report, fmt.Errorf("check %s: %w", c.Field, err)
		}
		if !ok {
			reason := c.Reason
			if rec.last != "" {
				reason = rec.last
			}
			r.logger.Warn("check rejected", "check", c.Field, "reason", reason)
			report.Failures = append(report.Failures, Failure{Field: c.Field, Reason: reason})
		}
	}
	return report, nil
}

// =============================================================================
// Default Checks
// =============================================================================

// Check names.
const (
	CheckCredentials = "credentials"
	CheckProjectID   = "project_id"
	CheckRegion      = "region"
	CheckNamespace   = "namespace"
	CheckDeployment  = "deployment"
	CheckManifest    = "manifest"
	CheckConsistency = "manifest_consistency"
	CheckImage       = "image"
)

// DefaultChecks returns the deployment input checks in the order the
// deployment action applies them.
func DefaultChecks() []Check {
	return []Check{
		{
			Field:  CheckCredentials,
			Reason: "ak or sk is not correct",
			Run:    pure(func(in Inputs) bool { return validation.ValidateCredentials(in.AccessKey, in.SecretKey) }),
		},
		{
			Field:  CheckProjectID,
			Reason: "project_id is not correct",
			Run:    pure(func(in Inputs) bool { return validation.ValidateProjectID(in.ProjectID) }),
		},
		{
			Field:  CheckRegion,
			Reason: fmt.Sprintf("region must be one of %v", validation.Regions()),
			Run:    pure(func(in Inputs) bool { return validation.ValidateRegion(in.Region) }),
		},
		{
			Field:  CheckNamespace,
			Reason: "namespace is not correct",
			Run:    pure(func(in Inputs) bool { return validation.ValidateNamespace(in.Namespace) }),
		},
		{
			Field:  CheckDeployment,
			Reason: "deployment is not correct",
			Run:    pure(func(in Inputs) bool { return validation.ValidateDeploymentName(in.Deployment) }),
		},
		{
			Field:  CheckManifest,
			Reason: "manifest is not correct",
			Run: func(in Inputs, r validation.Reporter) (bool, error) {
				return manifest.Check(in.Manifest, r), nil
			},
		},
		{
			Field:  CheckConsistency,
			Reason: "manifest does not match deployment",
			Skip: func(in Inputs, report Report) bool {
				return in.Manifest == "" || report.Failed(CheckManifest)
			},
			Run: func(in Inputs, r validation.Reporter) (bool, error) {
				return manifest.CheckConsistency(in.Deployment, in.Manifest, r)
			},
		},
		{
			Field:  CheckImage,
			Reason: "image is not correct",
			Run: func(in Inputs, r validation.Reporter) (bool, error) {
				return validation.ValidateImage(in.Image, in.Region, r), nil
			},
		},
	}
}

// reasonRecorder forwards reports and keeps the last message, which is the
// rejection reason of checks that report one.
type reasonRecorder struct {
	next validation.Reporter
	last string
}

func (r *reasonRecorder) Info(msg string, args ...any) {
	r.last = msg
	r.next.Info(msg, args...)
}

// pure adapts a predicate that reports nothing to a check.
func pure(fn func(Inputs) bool) func(Inputs, validation.Reporter) (bool, error) {
	return func(in Inputs, _ validation.Reporter) (bool, error) {
		return fn(in), nil
	}
}
