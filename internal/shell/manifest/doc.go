// Package manifest checks manifest files on the local file system.
//
// It is the imperative shell around internal/core/manifest: it resolves
// paths, stats files, reads their contents and hands the text to the pure
// parser. Rejections are reported through a validation.Reporter and returned
// as false; only unreadable or unparsable manifests are returned as errors.
package manifest
