package recommend

import (
	"testing"

	"media-service/internal/models"
)

func article(id, section string, published bool, tags ...string) models.Article {
	return models.Article{ID: id, Section: section, Published: published, Tags: tags, Status: "active"}
}

func TestRelatedExcludesSubjectAndUnpublished(t *testing.T) {
	subject := article("a1", "news", true, "sports", "campus")
	candidates := []models.Article{
		subject,
		article("a2", "news", true, "sports"),
		article("a3", "news", false, "sports", "campus"),
	}

	selector := NewSelector()
	related := selector.Related(&subject, candidates, 5)

	for _, a := range related {
		if a.ID == "a1" {
			t.Error("Subject article appeared in its own related list")
		}
		if a.ID == "a3" {
			t.Error("Unpublished article appeared in related list")
		}
	}
	if len(related) != 1 {
		t.Errorf("Expected 1 related article, got %d", len(related))
	}
}

func TestRelatedPrefersTagOverlap(t *testing.T) {
	subject := article("a1", "news", true, "sports", "basketball", "campus")
	heavy := article("a2", "news", true, "sports", "basketball", "campus")
	light := article("a3", "opinion", true, "sports")

	selector := NewSelector()
	weighted := selector.weigh(&subject, []models.Article{heavy, light})

	if len(weighted) != 2 {
		t.Fatalf("Expected 2 weighted candidates, got %d", len(weighted))
	}
	var heavyWeight, lightWeight float64
	for _, w := range weighted {
		switch w.Article.ID {
		case "a2":
			heavyWeight = w.Weight
		case "a3":
			lightWeight = w.Weight
		}
	}
	if heavyWeight <= lightWeight {
		t.Errorf("Expected 3-tag match to outweigh 1-tag match: %.2f vs %.2f", heavyWeight, lightWeight)
	}
}

func TestRelatedSameSectionFloor(t *testing.T) {
	subject := article("a1", "news", true, "economy")
	sameSection := article("a2", "news", true, "weather")
	otherSection := article("a3", "opinion", true, "weather")

	selector := NewSelector()
	weighted := selector.weigh(&subject, []models.Article{sameSection, otherSection})

	if len(weighted) != 1 {
		t.Fatalf("Expected only the same-section candidate, got %d", len(weighted))
	}
	if weighted[0].Article.ID != "a2" {
		t.Errorf("Expected a2 to survive the filter, got %s", weighted[0].Article.ID)
	}
}

func TestRelatedRespectsCount(t *testing.T) {
	subject := article("a1", "news", true, "sports")
	var candidates []models.Article
	for _, id := range []string{"b1", "b2", "b3", "b4", "b5"} {
		candidates = append(candidates, article(id, "news", true, "sports"))
	}

	selector := NewSelector()
	related := selector.Related(&subject, candidates, 3)
	if len(related) != 3 {
		t.Errorf("Expected 3 related articles, got %d", len(related))
	}
	seen := make(map[string]bool)
	for _, a := range related {
		if seen[a.ID] {
			t.Errorf("Article %s selected twice", a.ID)
		}
		seen[a.ID] = true
	}
}
