package gallery

import "strings"

// isAuthorDelimiter matches the characters that wrap the display name in the
// feed's author field: nobody@flickr.com ("name").
func isAuthorDelimiter(r rune) bool {
	return r == '(' || r == '"' || r == ')'
}

// ParseAuthorDisplayName extracts the display name from a composite author
// string of the form `nobody@flickr.com ("displayName")`.
//
// The string is split on any run of '(', '"' and ')', empty and blank tokens
// are dropped, and the second remaining token is returned. When the string
// does not have that shape the trimmed input is returned unchanged.
func ParseAuthorDisplayName(author string) string {
	tokens := strings.FieldsFunc(author, isAuthorDelimiter)

	kept := tokens[:0]
	for _, tok := range tokens {
		if tok = strings.TrimSpace(tok); tok != "" {
			kept = append(kept, tok)
		}
	}

	if len(kept) < 2 {
		return strings.TrimSpace(author)
	}
	return kept[1]
}
