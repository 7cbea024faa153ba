package service

import (
	"context"
	"sort"

	"github.com/example/qa-board/internal/models"
)

type TagService struct {
	tags  TagStore
	cache Cache
}

func NewTagService(tags TagStore, cache Cache) *TagService {
	return &TagService{tags: tags, cache: cache}
}

// CountsByTag returns every known tag with the number of questions
// referencing it, sorted by name. Served from cache when warm; a cold or
// unreachable cache falls through to storage.
func (s *TagService) CountsByTag(ctx context.Context) ([]models.TagCount, error) {
	var cached []models.TagCount
	if found, err := s.cache.GetJSON(ctx, tagCountsCacheKey, &cached); err == nil && found {
		return cached, nil
	}

	counts, err := s.tags.UsageCounts(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.TagCount, 0, len(counts))
	for name, n := range counts {
		out = append(out, models.TagCount{Name: name, Qcnt: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	_ = s.cache.SetJSON(ctx, tagCountsCacheKey, out)
	return out, nil
}
