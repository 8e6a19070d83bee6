package showcase

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/folio/folio-go/internal/model"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type stubSource struct {
	posts    []model.BlogPostSummary
	projects []model.Project
	err      error
	calls    int
}

func (s *stubSource) Posts(context.Context) ([]model.BlogPostSummary, error) {
	s.calls++
	return s.posts, s.err
}

func (s *stubSource) Projects(context.Context) ([]model.Project, error) {
	s.calls++
	return s.projects, s.err
}

var errDown = errors.New("database is down")

func TestTiered_PrimaryHealthy(t *testing.T) {
	primary := &stubSource{posts: []model.BlogPostSummary{{Slug: "live-post"}}}
	tiered := &Tiered{Primary: primary, Fallback: StaticSource{}, Probe: func(context.Context) error { return nil }}

	got := tiered.Posts(context.Background())
	if got.Source != OriginLive {
		t.Fatalf("source = %q, want live", got.Source)
	}
	if len(got.Items) != 1 || got.Items[0].Slug != "live-post" {
		t.Fatalf("items = %+v", got.Items)
	}
	if primary.calls != 1 {
		t.Fatalf("primary called %d times, want 1", primary.calls)
	}
}

func TestTiered_EmptyLiveListStaysLive(t *testing.T) {
	tiered := &Tiered{Primary: &stubSource{}, Fallback: StaticSource{}}

	got := tiered.Projects(context.Background())
	if got.Source != OriginLive {
		t.Fatalf("source = %q, want live", got.Source)
	}
	if got.Items == nil || len(got.Items) != 0 {
		t.Fatalf("items = %#v, want empty non-nil", got.Items)
	}
}

func TestTiered_ProbeFailureSkipsPrimary(t *testing.T) {
	primary := &stubSource{posts: []model.BlogPostSummary{{Slug: "live-post"}}}
	tiered := &Tiered{
		Primary:  primary,
		Fallback: StaticSource{},
		Probe:    func(context.Context) error { return errDown },
	}

	got := tiered.Posts(context.Background())
	if got.Source != OriginDemo {
		t.Fatalf("source = %q, want demo", got.Source)
	}
	if len(got.Items) != 3 {
		t.Fatalf("got %d demo posts, want 3", len(got.Items))
	}
	if primary.calls != 0 {
		t.Fatalf("primary called %d times after failed probe", primary.calls)
	}
}

func TestTiered_PrimaryFailureServesWholeFallback(t *testing.T) {
	primary := &stubSource{
		projects: []model.Project{{ID: "partial"}},
		err:      errDown,
	}
	tiered := &Tiered{Primary: primary, Fallback: StaticSource{}}

	got := tiered.Projects(context.Background())
	if got.Source != OriginDemo {
		t.Fatalf("source = %q, want demo", got.Source)
	}
	if len(got.Items) != 3 {
		t.Fatalf("got %d projects, want the 3 demo projects", len(got.Items))
	}
	for _, p := range got.Items {
		if p.ID == "partial" {
			t.Fatal("live and demo results must not be merged")
		}
	}
}

func TestTiered_FallbackFailureYieldsEmptyList(t *testing.T) {
	tiered := &Tiered{Primary: &stubSource{err: errDown}, Fallback: &stubSource{err: errDown}}

	got := tiered.Posts(context.Background())
	if got.Source != OriginDemo || got.Items == nil || len(got.Items) != 0 {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestStaticSource_PostDates(t *testing.T) {
	now := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	posts, err := StaticSource{Now: func() time.Time { return now }}.Posts(context.Background())
	if err != nil {
		t.Fatalf("Posts: %v", err)
	}
	if !posts[0].CreatedAt.Equal(now) || !posts[2].CreatedAt.Equal(now.AddDate(0, 0, -14)) {
		t.Fatalf("unexpected dates: %v, %v", posts[0].CreatedAt, posts[2].CreatedAt)
	}
	for i := 1; i < len(posts); i++ {
		if posts[i].CreatedAt.After(posts[i-1].CreatedAt) {
			t.Fatal("demo posts should be newest first")
		}
	}
}

func TestStaticSource_ProjectOrder(t *testing.T) {
	projects, err := StaticSource{}.Projects(context.Background())
	if err != nil {
		t.Fatalf("Projects: %v", err)
	}
	for i := 1; i < len(projects); i++ {
		prev, cur := projects[i-1], projects[i]
		if !prev.Featured && cur.Featured {
			t.Fatalf("featured project %q listed after non-featured %q", cur.Title, prev.Title)
		}
		if prev.Featured == cur.Featured && prev.Position > cur.Position {
			t.Fatalf("position order broken at %q", cur.Title)
		}
	}
}

type postLister func(context.Context) ([]model.BlogPostSummary, error)

func (f postLister) ListPublished(ctx context.Context) ([]model.BlogPostSummary, error) { return f(ctx) }

type projectLister func(context.Context) ([]model.Project, error)

func (f projectLister) ListPublished(ctx context.Context) ([]model.Project, error) { return f(ctx) }

func TestServiceSource(t *testing.T) {
	src := ServiceSource{
		Blog: postLister(func(context.Context) ([]model.BlogPostSummary, error) {
			return []model.BlogPostSummary{{Slug: "a"}}, nil
		}),
		Portfolio: projectLister(func(context.Context) ([]model.Project, error) {
			return nil, errDown
		}),
	}

	posts, err := src.Posts(context.Background())
	if err != nil || len(posts) != 1 {
		t.Fatalf("Posts = %v, %v", posts, err)
	}
	if _, err := src.Projects(context.Background()); !errors.Is(err, errDown) {
		t.Fatalf("Projects error = %v", err)
	}
}
