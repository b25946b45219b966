package utils

import (
	"net/url"
	"strings"
)

// DefaultFilename is used when a URL path has no last segment.
const DefaultFilename = "file"

// DeriveFilename returns the last segment of the URL path, still
// percent-encoded, or [DefaultFilename] when the path is empty or ends with a
// slash. Unparsable URLs also yield [DefaultFilename].
//
//	DeriveFilename("https://example.com/a/b/report.pdf") // "report.pdf"
//	DeriveFilename("https://example.com/")               // "file"
func DeriveFilename(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return DefaultFilename
	}

	p := u.EscapedPath()
	name := p[strings.LastIndex(p, "/")+1:]
	if name == "" {
		return DefaultFilename
	}

	return name
}
