package sqlite

import (
	"strings"

	"github.com/dukaforge/tidy/pkg/types"
)

// Tags are stored as a comma-joined string. Tag normalization forbids
// commas, so the join is unambiguous.

func joinTags(tags []types.Tag) string {
	if len(tags) == 0 {
		return ""
	}
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = t.String()
	}
	return strings.Join(parts, ",")
}

func splitTags(s string) ([]types.Tag, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	tags := make([]types.Tag, 0, len(parts))
	for _, p := range parts {
		tag, err := types.ParseTag(p)
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return types.NormalizeTags(tags), nil
}
