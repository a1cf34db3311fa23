package gallery

import "strings"

// SplitTags splits the feed's space-delimited tag string into tags, in order.
// An empty string yields an empty slice, never a single empty tag.
func SplitTags(tagString string) []string {
	if tagString == "" {
		return []string{}
	}

	parts := strings.Split(tagString, " ")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}
