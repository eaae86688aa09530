//go:generate go run ./script/buildinfo-extractor.go .
//
// Generated: 2026-08-29T10:14:02Z
//
package buildinfo

var VERSION_INFO = "dev"

func BuildInfo() string {
	return VERSION_INFO
}
