package valueobjects

import "strings"

// tagNodePrefix namespaces tag-derived graph node ids so they can never
// collide with document ids.
const tagNodePrefix = "tag-"

// NormalizeTag converts a tag to its canonical identifier form: lowercase
// with whitespace runs replaced by single hyphens. "Video Editing" and
// "video  editing" normalize to the same identifier.
func NormalizeTag(tag string) string {
	fields := strings.Fields(strings.ToLower(tag))
	return strings.Join(fields, "-")
}

// TagNodeID returns the graph node id for a tag.
func TagNodeID(tag string) string {
	return tagNodePrefix + NormalizeTag(tag)
}

// IsTagNodeID reports whether a graph node id belongs to a tag node.
func IsTagNodeID(id string) bool {
	return strings.HasPrefix(id, tagNodePrefix)
}
