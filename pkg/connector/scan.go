package connector

import (
	"regexp"
	"strings"
)

// linkRe matches explicit http(s)/file links; a link runs until whitespace or
// a common prose delimiter.
var linkRe = regexp.MustCompile(`(?:https?|file)://[^\s<>"')]+`)

const (
	leadingWrappers  = `<({['"`
	trailingWrappers = `>)}]'".,;!`
)

// normalizeToken strips prose wrapping from a raw candidate, recovering
// `file.pdf` from text like `(see file.pdf).`.
func normalizeToken(token string) string {
	token = strings.TrimSpace(token)
	token = strings.TrimLeft(token, leadingWrappers)
	token = strings.TrimRight(token, trailingWrappers)
	return token
}

// extractReferences scans prompt text for file references worth attaching.
// Two passes: explicit http(s)/file links first, then bare
// whitespace-delimited tokens, which catches local paths like
// ./notes/scan.pdf that carry no URL prefix. Only candidates whose effective
// extension is in the allowlist survive. The result keeps first-encounter
// order with duplicates removed; a URL and a local path naming the same file
// stay distinct.
func extractReferences(text string) []string {
	var refs []string
	seen := make(map[string]struct{})
	add := func(ref string) {
		if _, ok := seen[ref]; ok {
			return
		}
		seen[ref] = struct{}{}
		refs = append(refs, ref)
	}

	for _, match := range linkRe.FindAllString(text, -1) {
		ref := normalizeToken(match)
		if ref == "" {
			continue
		}
		if supportedLink(ref) {
			add(ref)
		}
	}

	for _, token := range strings.Fields(text) {
		ref := normalizeToken(token)
		if ref == "" {
			continue
		}
		// URLs were either kept by the first pass or dropped for good.
		if isHTTPURL(ref) || isFileURL(ref) {
			continue
		}
		if _, ok := mediaTypeFor(extensionOf(ref)); ok {
			add(ref)
		}
	}
	return refs
}

// supportedLink reports whether a link's effective extension is in the
// allowlist. A file:// link resolves to a filesystem path first; an http(s)
// link takes the extension straight from the URL.
func supportedLink(ref string) bool {
	target := ref
	if isFileURL(ref) {
		path, err := resolveFileURL(ref)
		if err != nil {
			return false
		}
		target = path
	}
	_, ok := mediaTypeFor(extensionOf(target))
	return ok
}
