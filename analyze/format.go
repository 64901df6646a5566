package analyze

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// ComputeHash computes a hash of the content using xxhash.
func ComputeHash(content string) string {
	h := xxhash.Sum64String(content)
	return fmt.Sprintf("%x", h)
}

// TruncateSlug shortens a slug for display, keeping the end which is more informative.
func TruncateSlug(slug string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if maxLen < 4 {
		return slug[:min(len(slug), maxLen)]
	}
	if len(slug) <= maxLen {
		return slug
	}
	return "..." + slug[len(slug)-maxLen+3:]
}
