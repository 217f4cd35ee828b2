// Package version provides build-time version information.
//
// The variables are set with ldflags:
//
//	go build -ldflags "\
//	  -X github.com/ncobase/monoapi/version.Version=1.2.3 \
//	  -X github.com/ncobase/monoapi/version.Branch=main \
//	  -X github.com/ncobase/monoapi/version.Revision=abc123 \
//	  -X 'github.com/ncobase/monoapi/version.BuiltAt=$(date)'"
//
// Use GetVersionInfo to read them and String or JSON to display them.
package version
