package domain

import "strings"

// Tags are stored as a single comma-joined column. EncodeTags and DecodeTags
// are the only two places that know about the storage shape.

// EncodeTags joins tags into the stored scalar. Empty and whitespace-only
// items are dropped; an empty result encodes as nil.
func EncodeTags(tags []string) *string {
	var kept []string
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		kept = append(kept, t)
	}
	if len(kept) == 0 {
		return nil
	}
	s := strings.Join(kept, ",")
	return &s
}

// DecodeTags splits the stored scalar back into a tag list.
// nil decodes as an empty slice, never nil.
func DecodeTags(s *string) []string {
	if s == nil {
		return []string{}
	}
	parts := strings.Split(*s, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		tags = append(tags, p)
	}
	return tags
}
