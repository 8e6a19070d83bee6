package service

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/folio/folio-go/internal/model"
	"github.com/folio/folio-go/internal/repository"
)

const defaultReadTime = 5

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// BlogService holds the blog post rules: defaults, slug checks and the
// view counter.
type BlogService struct {
	posts BlogStore
	users UserStore
	now   func() time.Time
}

// NewBlogService creates a new BlogService.
func NewBlogService(posts BlogStore, users UserStore) *BlogService {
	return &BlogService{posts: posts, users: users, now: time.Now}
}

// ListPublished returns summaries of all published posts, featured first.
func (s *BlogService) ListPublished(ctx context.Context) ([]model.BlogPostSummary, error) {
	posts, err := s.posts.ListPublished(ctx)
	if err != nil {
		return nil, storageErr("list blog posts", err)
	}
	return posts, nil
}

// GetBySlug returns a post with its author, then counts the view. The
// returned post carries the count from before this view. A failed increment
// is logged and never turns a successful read into an error.
func (s *BlogService) GetBySlug(ctx context.Context, slug string) (*model.BlogPostDetail, error) {
	post, err := s.posts.GetDetailBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, storageErr("get blog post", err)
	}

	if err := s.posts.IncrementViews(ctx, slug); err != nil {
		slog.Warn("failed to increment post views", "slug", slug, "error", err)
	}

	return post, nil
}

// Create validates and stores a new post, applying defaults for omitted
// fields.
func (s *BlogService) Create(ctx context.Context, req model.CreateBlogPostRequest) (*model.BlogPost, error) {
	title := strings.TrimSpace(req.Title)
	slug := strings.TrimSpace(req.Slug)
	if title == "" || slug == "" || strings.TrimSpace(req.Excerpt) == "" ||
		strings.TrimSpace(req.Content) == "" || req.UserID == "" {
		return nil, ErrMissingFields
	}
	if !slugPattern.MatchString(slug) {
		return nil, ErrInvalidSlug
	}
	if req.ReadTime != nil && *req.ReadTime < 0 {
		return nil, ErrInvalidReadTime
	}

	if _, err := s.users.GetByID(ctx, req.UserID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnknownAuthor
		}
		return nil, storageErr("look up author", err)
	}

	post := &model.BlogPost{
		ID:        uuid.NewString(),
		Slug:      slug,
		Title:     title,
		Excerpt:   req.Excerpt,
		Content:   req.Content,
		Image:     emptyToNil(req.Image),
		ImageAlt:  emptyToNil(req.ImageAlt),
		Tags:      nonNil(req.Tags),
		ReadTime:  defaultReadTime,
		Published: boolOr(req.Published, true),
		Featured:  boolOr(req.Featured, false),
		CreatedAt: s.now().UTC(),
		UserID:    req.UserID,
	}
	if req.ReadTime != nil && *req.ReadTime > 0 {
		post.ReadTime = *req.ReadTime
	}

	if err := s.posts.Create(ctx, post); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrSlugTaken
		}
		return nil, storageErr("create blog post", err)
	}

	slog.Info("blog post created", "slug", post.Slug, "id", post.ID)
	return post, nil
}

// Update applies patch to the post identified by slug. Absent fields are
// left untouched.
func (s *BlogService) Update(ctx context.Context, slug string, patch model.BlogPostPatch) (*model.BlogPost, error) {
	if patch.Title != nil {
		t := strings.TrimSpace(*patch.Title)
		if t == "" {
			return nil, ErrBlankTitle
		}
		patch.Title = &t
	}
	if patch.ReadTime != nil && *patch.ReadTime < 0 {
		return nil, ErrInvalidReadTime
	}
	if patch.Tags != nil && *patch.Tags == nil {
		empty := []string{}
		patch.Tags = &empty
	}

	post, err := s.posts.Update(ctx, slug, patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, storageErr("update blog post", err)
	}
	return post, nil
}

// Delete removes the post identified by slug.
func (s *BlogService) Delete(ctx context.Context, slug string) error {
	if err := s.posts.Delete(ctx, slug); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPostNotFound
		}
		return storageErr("delete blog post", err)
	}
	slog.Info("blog post deleted", "slug", slug)
	return nil
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func emptyToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
