package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	coremanifest "github.com/artpar/cci-validate/internal/core/manifest"
	"github.com/artpar/cci-validate/internal/core/validation"
)

// MaxSize is the largest manifest file accepted, in bytes.
const MaxSize = 20 * 1024

// Rejection reasons reported by Check and CheckConsistency.
const (
	ReasonNotExist     = "manifest file does not exist"
	ReasonIsDirectory  = "manifest file can not be a directory"
	ReasonNotYAML      = "manifest file must be a yaml file"
	ReasonBadSize      = "manifest file size must be greater than 0 and no more than 20KB"
	ReasonNotCorrect   = "manifest file is not correct"
	ReasonNameMismatch = "deployment, manifest parameters must be the same"
)

// =============================================================================
// File Checks
// =============================================================================

// Check validates the manifest file at path.
//
// An empty path means no manifest was provided and is accepted. Otherwise
// the file must exist, must not be a directory, must have a YAML extension
// and must be between 1 byte and MaxSize bytes.
func Check(path string, r validation.Reporter) bool {
	r = validation.OrDiscard(r)

	if path == "" {
		return true
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		r.Info(ReasonNotExist, "path", path, "error", err)
		return false
	}

	info, err := os.Stat(abs)
	if err != nil {
		r.Info(ReasonNotExist, "path", abs)
		return false
	}
	if info.IsDir() {
		r.Info(ReasonIsDirectory, "path", abs)
		return false
	}
	if ct, ok := ContentType(abs); !ok || ct != ContentTypeYAML {
		r.Info(ReasonNotYAML, "path", abs, "content_type", ct)
		return false
	}
	if info.Size() == 0 || info.Size() > MaxSize {
		r.Info(ReasonBadSize, "path", abs, "size", info.Size())
		return false
	}
	return true
}

// =============================================================================
// Consistency Checks
// =============================================================================

// CheckConsistency verifies that the manifest at path names the deployment.
//
// A manifest without metadata.name, or naming a different deployment, is
// rejected with (false, nil). A manifest that cannot be read or parsed
// returns a non-nil error, which callers must treat as fatal.
func CheckConsistency(deployment, path string, r validation.Reporter) (bool, error) {
	r = validation.OrDiscard(r)

	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	doc, err := coremanifest.Parse(string(data))
	if err != nil {
		return false, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}

	name, err := doc.Name()
	if err != nil {
		if errors.Is(err, coremanifest.ErrMissingMetadata) || errors.Is(err, coremanifest.ErrMissingName) {
			r.Info(ReasonNotCorrect, "path", path, "error", err)
			return false, nil
		}
		return false, err
	}

	if deployment != name {
		r.Info(ReasonNameMismatch, "deployment", deployment, "manifest_name", name)
		return false, nil
	}
	return true, nil
}
