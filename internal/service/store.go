package service

import (
	"context"

	"github.com/folio/folio-go/internal/model"
)

// The store interfaces are satisfied by the repository package and by the
// in-memory fakes used in tests.

type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	UpdatePassword(ctx context.Context, id, hash string) error
}

type BlogStore interface {
	ListPublished(ctx context.Context) ([]model.BlogPostSummary, error)
	GetBySlug(ctx context.Context, slug string) (*model.BlogPost, error)
	GetDetailBySlug(ctx context.Context, slug string) (*model.BlogPostDetail, error)
	Create(ctx context.Context, post *model.BlogPost) error
	Update(ctx context.Context, slug string, patch model.BlogPostPatch) (*model.BlogPost, error)
	Delete(ctx context.Context, slug string) error
	IncrementViews(ctx context.Context, slug string) error
}

type ProjectStore interface {
	ListPublished(ctx context.Context) ([]model.Project, error)
	Create(ctx context.Context, project *model.Project) error
}

type MessageStore interface {
	Create(ctx context.Context, msg *model.Message) error
	ListRecent(ctx context.Context, limit int) ([]model.Message, error)
}
