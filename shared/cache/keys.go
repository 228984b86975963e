package cache

import "strings"

const keySeparator = ":"

// BuildKey joins the non-empty parts of a cache key.
func BuildKey(prefix string, parts ...string) string {
	key := []string{prefix}

	for _, part := range parts {
		if part != "" {
			key = append(key, part)
		}
	}

	return strings.Join(key, keySeparator)
}
