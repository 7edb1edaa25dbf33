package validation

import (
	k8svalidation "k8s.io/apimachinery/pkg/util/validation"
)

// =============================================================================
// Resource Name Validation
// =============================================================================

const (
	// MaxNameLength is the longest namespace or deployment name accepted.
	MaxNameLength = 63
)

// ValidateNamespace reports whether namespace is a valid DNS-1123 label:
// 1 to 63 lowercase alphanumerics or hyphens, starting and ending with an
// alphanumeric.
//
// Example:
//
//	ValidateNamespace("a")   // returns true
//	ValidateNamespace("a-b") // returns true
//	ValidateNamespace("-ab") // returns false
func ValidateNamespace(namespace string) bool {
	return len(k8svalidation.IsDNS1123Label(namespace)) == 0
}

// ValidateDeploymentName reports whether name is a valid deployment name:
// a DNS-1123 subdomain of at most MaxNameLength characters.
//
// Every dot-separated segment must start and end with an alphanumeric, so
// the connectors "..", ".-" and "-." are never accepted.
//
// Example:
//
//	ValidateDeploymentName("a-b.c") // returns true
//	ValidateDeploymentName("a..b")  // returns false
//	ValidateDeploymentName("a.-b")  // returns false
func ValidateDeploymentName(name string) bool {
	if len(name) > MaxNameLength {
		return false
	}
	return len(k8svalidation.IsDNS1123Subdomain(name)) == 0
}
