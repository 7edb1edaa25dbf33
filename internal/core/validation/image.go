package validation

import (
	"regexp"
	"strings"
)

// =============================================================================
// Image Validation
// =============================================================================

const (
	// SWRPrefix marks an image hosted on the SWR registry.
	SWRPrefix = "swr"
)

var swrHostPattern = regexp.MustCompile(`^swr\..{5,20}\.myhuaweicloud\.com`)

// ValidateImage checks an image reference against the deployment region.
//
// Images outside SWR are accepted as-is. SWR images must use an SWR host
// and that host must belong to the same region as the deployment.
//
// Example:
//
//	ValidateImage("nginx:latest", "cn-north-4", r)                             // returns true
//	ValidateImage("swr.cn-north-4.myhuaweicloud.com/ns/img", "cn-north-4", r) // returns true
//	ValidateImage("swr.cn-north-4.myhuaweicloud.com/ns/img", "cn-east-2", r)  // returns false
func ValidateImage(image, region string, r Reporter) bool {
	r = OrDiscard(r)

	if !strings.HasPrefix(image, SWRPrefix) {
		return true
	}
	if !swrHostPattern.MatchString(image) {
		r.Info("image is not a valid swr image address", "image", image)
		return false
	}
	if !strings.Contains(image, region) {
		r.Info("The region of cci and swr must be the same", "image", image, "region", region)
		return false
	}
	return true
}
