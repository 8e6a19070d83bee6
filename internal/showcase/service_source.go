package showcase

import (
	"context"

	"github.com/folio/folio-go/internal/model"
)

// PostLister is the part of the blog service the showcase reads.
type PostLister interface {
	ListPublished(ctx context.Context) ([]model.BlogPostSummary, error)
}

// ProjectLister is the part of the project service the showcase reads.
type ProjectLister interface {
	ListPublished(ctx context.Context) ([]model.Project, error)
}

// ServiceSource reads live published content.
type ServiceSource struct {
	Blog      PostLister
	Portfolio ProjectLister
}

func (s ServiceSource) Posts(ctx context.Context) ([]model.BlogPostSummary, error) {
	return s.Blog.ListPublished(ctx)
}

func (s ServiceSource) Projects(ctx context.Context) ([]model.Project, error) {
	return s.Portfolio.ListPublished(ctx)
}
