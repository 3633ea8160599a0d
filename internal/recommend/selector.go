// Package recommend picks related articles for a story page by weighted tag
// overlap: the more tags an article shares with the one being read, the more
// likely it is to appear, with a little randomness so the rail isn't static.
package recommend

import (
	"math"
	"math/rand"
	"sort"
	"strings"
	"time"

	"media-service/internal/models"
)

type WeightedArticle struct {
	Article     models.Article
	Weight      float64
	TagMatches  int
	MatchedTags []string
}

type Selector struct {
	rand           *rand.Rand
	weightExponent float64
}

func NewSelector() *Selector {
	return &Selector{
		rand:           rand.New(rand.NewSource(time.Now().UnixNano())),
		weightExponent: 2.0,
	}
}

// Related returns up to count articles related to subject, best matches
// favored. The subject itself and unpublished articles are excluded.
func (s *Selector) Related(subject *models.Article, candidates []models.Article, count int) []models.Article {
	weighted := s.weigh(subject, candidates)
	if len(weighted) == 0 || count <= 0 {
		return nil
	}

	sort.SliceStable(weighted, func(i, j int) bool {
		return weighted[i].Weight > weighted[j].Weight
	})

	// Draw from a pool somewhat larger than needed so ties and near-ties
	// rotate between page loads.
	poolSize := count * 2
	if poolSize > len(weighted) {
		poolSize = len(weighted)
	}
	pool := weighted[:poolSize]

	selected := make([]models.Article, 0, count)
	used := make(map[int]bool)
	for len(selected) < count && len(used) < len(pool) {
		idx := s.weightedDraw(pool, used)
		used[idx] = true
		selected = append(selected, pool[idx].Article)
	}
	return selected
}

func (s *Selector) weigh(subject *models.Article, candidates []models.Article) []WeightedArticle {
	subjectTags := make(map[string]bool)
	for _, tag := range subject.Tags {
		subjectTags[strings.ToLower(tag)] = true
	}

	var weighted []WeightedArticle
	for _, candidate := range candidates {
		if candidate.ID == subject.ID || !candidate.Published || candidate.Status == "deleted" {
			continue
		}
		matches := 0
		var matched []string
		for _, tag := range candidate.Tags {
			if subjectTags[strings.ToLower(tag)] {
				matches++
				matched = append(matched, tag)
			}
		}
		if matches == 0 && candidate.Section != subject.Section {
			continue
		}
		// Same-section articles keep a floor weight even without tag overlap.
		weight := math.Pow(float64(matches)+0.5, s.weightExponent)
		weighted = append(weighted, WeightedArticle{
			Article:     candidate,
			Weight:      weight,
			TagMatches:  matches,
			MatchedTags: matched,
		})
	}
	return weighted
}

func (s *Selector) weightedDraw(pool []WeightedArticle, used map[int]bool) int {
	total := 0.0
	for i, w := range pool {
		if !used[i] {
			total += w.Weight
		}
	}
	target := s.rand.Float64() * total
	running := 0.0
	for i, w := range pool {
		if used[i] {
			continue
		}
		running += w.Weight
		if running >= target {
			return i
		}
	}
	// Rounding slack: fall back to the first unused entry.
	for i := range pool {
		if !used[i] {
			return i
		}
	}
	return 0
}
