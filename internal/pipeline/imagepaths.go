package pipeline

import (
	"regexp"
	"strings"
)

// DefaultImageBase is the site-rooted folder holding per-post image folders.
const DefaultImageBase = "/static/images"

// srcAttr matches a double-quoted src attribute on any element.
var srcAttr = regexp.MustCompile(`src="([^"]*)"`)

// RewriteImagePaths rewrites every src="..." value that is neither an
// absolute http(s) URL nor site-rooted to {base}/{slug}/{value}.
//
// This is a textual substitution over rendered HTML, not a DOM walk: it
// touches src on any element (img, video, script, ...) and performs no
// escaping or validation of the value. Rewritten values are site-rooted,
// so applying the function twice yields the same output.
func RewriteImagePaths(htmlContent, base, slug string) string {
	prefix := strings.TrimSuffix(base, "/") + "/" + slug + "/"

	return srcAttr.ReplaceAllStringFunc(htmlContent, func(match string) string {
		value := srcAttr.FindStringSubmatch(match)[1]
		if !IsRelativeSource(value) {
			return match
		}
		return `src="` + prefix + value + `"`
	})
}

// IsRelativeSource reports whether a src value should be resolved against
// the post's image folder.
func IsRelativeSource(value string) bool {
	return !strings.HasPrefix(value, "http://") &&
		!strings.HasPrefix(value, "https://") &&
		!strings.HasPrefix(value, "/")
}
