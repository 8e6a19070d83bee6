package repository

import (
	"context"
	"testing"
	"time"

	"github.com/folio/folio-go/internal/model"
)

func TestProjectRepository_ListPublishedOrdering(t *testing.T) {
	db := newTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	mk := func(id string, featured bool, position int, createdAt time.Time, published bool) *model.Project {
		return &model.Project{
			ID:          id,
			Title:       "Project " + id,
			Description: "Description " + id,
			Tags:        []string{"go"},
			Skills:      []string{"sql", "http"},
			Featured:    featured,
			Published:   published,
			Position:    position,
			CreatedAt:   createdAt,
			UserID:      "u1",
		}
	}

	seed := []*model.Project{
		mk("b", false, 1, baseTime, true),
		mk("a", false, 0, baseTime, true),
		mk("c", true, 5, baseTime, true),
		mk("d", false, 1, baseTime.Add(time.Hour), true),
		mk("hidden", true, 0, baseTime, false),
	}
	seed[0].LiveURL = strPtr("https://example.com/b")
	for _, p := range seed {
		if err := repo.Create(ctx, p); err != nil {
			t.Fatalf("Create(%s): %v", p.ID, err)
		}
	}

	got, err := repo.ListPublished(ctx)
	if err != nil {
		t.Fatalf("ListPublished: %v", err)
	}
	want := []string{"c", "a", "d", "b"}
	if len(got) != len(want) {
		t.Fatalf("got %d projects, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("position %d: got %q, want %q", i, got[i].ID, id)
		}
	}

	last := got[3]
	if last.LiveURL == nil || *last.LiveURL != "https://example.com/b" {
		t.Errorf("live url not round-tripped: %v", last.LiveURL)
	}
	if last.GithubURL != nil {
		t.Errorf("expected nil github url, got %q", *last.GithubURL)
	}
	if len(last.Skills) != 2 || last.Skills[1] != "http" {
		t.Errorf("skills = %v", last.Skills)
	}
}
