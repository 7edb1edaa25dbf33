package validation

import "sort"

// =============================================================================
// Region Validation
// =============================================================================

// regions is the set of regions where CCI deployments are supported.
var regions = map[string]struct{}{
	"cn-north-1":     {},
	"cn-north-4":     {},
	"cn-east-2":      {},
	"cn-east-3":      {},
	"cn-south-1":     {},
	"ap-southeast-1": {},
}

// ValidateRegion reports whether region is exactly one of the supported
// regions. The match is case sensitive and no trimming is applied.
func ValidateRegion(region string) bool {
	_, ok := regions[region]
	return ok
}

// Regions returns the supported regions in sorted order.
func Regions() []string {
	out := make([]string, 0, len(regions))
	for r := range regions {
		out = append(out, r)
	}
	sort.Strings(out)
	return out
}
