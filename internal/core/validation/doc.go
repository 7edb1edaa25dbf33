// Package validation provides pure validation functions for deployment inputs.
//
// This package contains the functional core logic for checking the parameters
// of a cloud container instance (CCI) deployment before any remote API is
// called. Every function is a total predicate over arbitrary strings: it never
// panics and never returns an error, only accept (true) or reject (false).
//
// # Functions
//
//   - ValidateCredentials: Check access key / secret key format
//   - ValidateProjectID: Check project id format
//   - ValidateRegion: Check region against the allow-list
//   - ValidateNamespace: Check namespace naming rules
//   - ValidateDeploymentName: Check deployment naming rules
//   - ValidateImage: Check SWR image host and region
//
// # Usage
//
// Rejection reasons are reported through an injected Reporter. *slog.Logger
// satisfies it directly:
//
//	if !validation.ValidateImage(image, region, logger) {
//	    // abort the deployment
//	}
package validation
