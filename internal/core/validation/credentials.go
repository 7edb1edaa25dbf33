package validation

import "regexp"

// =============================================================================
// Credential Validation
// =============================================================================

var (
	accessKeyPattern = regexp.MustCompile(`^[A-Za-z0-9]{10,30}$`)
	secretKeyPattern = regexp.MustCompile(`^[A-Za-z0-9]{30,50}$`)
	projectIDPattern = regexp.MustCompile(`^[A-Za-z0-9]{16,64}$`)
)

// ValidateAccessKey reports whether ak is 10 to 30 ASCII letters or digits.
func ValidateAccessKey(ak string) bool {
	return accessKeyPattern.MatchString(ak)
}

// ValidateSecretKey reports whether sk is 30 to 50 ASCII letters or digits.
func ValidateSecretKey(sk string) bool {
	return secretKeyPattern.MatchString(sk)
}

// ValidateCredentials checks the access key and secret key pair.
// Both must be well formed for the pair to be accepted.
//
// Example:
//
//	ValidateCredentials("AKIAEXAMPLE1", strings.Repeat("s", 40)) // returns true
func ValidateCredentials(ak, sk string) bool {
	return ValidateAccessKey(ak) && ValidateSecretKey(sk)
}

// ValidateProjectID reports whether id is 16 to 64 ASCII letters or digits.
func ValidateProjectID(id string) bool {
	return projectIDPattern.MatchString(id)
}
