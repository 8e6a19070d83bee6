// Package showcase feeds the public listing pages. Live content comes from
// the content services; when the store is unreachable or a live read fails,
// a fixed set of demo records is served instead.
package showcase

import (
	"context"
	"log/slog"

	"github.com/folio/folio-go/internal/model"
)

// Origin tells clients whether a listing is live data or demo data.
type Origin string

const (
	OriginLive Origin = "live"
	OriginDemo Origin = "demo"
)

// Source provides the records shown on the listing pages.
type Source interface {
	Posts(ctx context.Context) ([]model.BlogPostSummary, error)
	Projects(ctx context.Context) ([]model.Project, error)
}

// Result is a listing together with where it came from.
type Result[T any] struct {
	Source Origin `json:"source"`
	Items  []T    `json:"items"`
}

// Tiered serves Primary unless Probe reports the backing store unavailable
// or Primary itself fails, in which case the whole Fallback listing is
// served. Results from the two sources are never merged.
type Tiered struct {
	Primary  Source
	Fallback Source
	// Probe is the capability check run before touching Primary. A nil
	// Probe always passes.
	Probe func(ctx context.Context) error
}

// Posts returns blog post summaries from the first usable tier.
func (t *Tiered) Posts(ctx context.Context) Result[model.BlogPostSummary] {
	return pick(ctx, t, "posts", Source.Posts)
}

// Projects returns projects from the first usable tier.
func (t *Tiered) Projects(ctx context.Context) Result[model.Project] {
	return pick(ctx, t, "projects", Source.Projects)
}

func pick[T any](ctx context.Context, t *Tiered, kind string, list func(Source, context.Context) ([]T, error)) Result[T] {
	if t.Probe == nil || probe(ctx, t.Probe, kind) {
		items, err := list(t.Primary, ctx)
		if err == nil {
			if items == nil {
				items = []T{}
			}
			return Result[T]{Source: OriginLive, Items: items}
		}
		slog.Warn("showcase primary failed, serving demo data", "kind", kind, "error", err)
	}

	items, err := list(t.Fallback, ctx)
	if err != nil || items == nil {
		if err != nil {
			slog.Error("showcase fallback failed", "kind", kind, "error", err)
		}
		items = []T{}
	}
	return Result[T]{Source: OriginDemo, Items: items}
}

func probe(ctx context.Context, check func(context.Context) error, kind string) bool {
	if err := check(ctx); err != nil {
		slog.Warn("showcase store unavailable, serving demo data", "kind", kind, "error", err)
		return false
	}
	return true
}
