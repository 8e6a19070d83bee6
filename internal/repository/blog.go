package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/folio/folio-go/internal/model"
)

// BlogRepository handles blog post persistence operations.
type BlogRepository struct {
	db *sql.DB
}

// NewBlogRepository creates a new BlogRepository.
func NewBlogRepository(db *sql.DB) *BlogRepository {
	return &BlogRepository{db: db}
}

const (
	postColumns = `p.id, p.slug, p.title, p.excerpt, p.content, p.image, p.image_alt,
		p.tags, p.read_time, p.published, p.featured, p.views, p.created_at, p.user_id`

	summaryColumns = `p.id, p.slug, p.title, p.excerpt, p.image, p.image_alt,
		p.tags, p.read_time, p.featured, p.views, p.created_at`
)

// ListPublished returns summaries of every published post, featured posts
// first and newest first within each group.
func (r *BlogRepository) ListPublished(ctx context.Context) ([]model.BlogPostSummary, error) {
	query := `SELECT ` + summaryColumns + ` FROM blog_posts p
		WHERE p.published = ? ORDER BY p.featured DESC, p.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, true)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []model.BlogPostSummary{}
	for rows.Next() {
		var s model.BlogPostSummary
		var tags stringList
		if err := rows.Scan(
			&s.ID, &s.Slug, &s.Title, &s.Excerpt, &s.Image, &s.ImageAlt,
			&tags, &s.ReadTime, &s.Featured, &s.Views, &s.CreatedAt,
		); err != nil {
			return nil, err
		}
		s.Tags = tags
		posts = append(posts, s)
	}

	return posts, rows.Err()
}

// GetBySlug retrieves a post by slug regardless of its published flag.
func (r *BlogRepository) GetBySlug(ctx context.Context, slug string) (*model.BlogPost, error) {
	query := `SELECT ` + postColumns + ` FROM blog_posts p WHERE p.slug = ?`

	post := &model.BlogPost{}
	if err := scanPost(r.db.QueryRowContext(ctx, query, slug), post); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return post, nil
}

// GetDetailBySlug retrieves a post together with its author's public fields.
func (r *BlogRepository) GetDetailBySlug(ctx context.Context, slug string) (*model.BlogPostDetail, error) {
	query := `SELECT ` + postColumns + `, COALESCE(u.name, ''), u.avatar
		FROM blog_posts p LEFT JOIN users u ON u.id = p.user_id
		WHERE p.slug = ?`

	detail := &model.BlogPostDetail{}
	if err := scanPost(r.db.QueryRowContext(ctx, query, slug), &detail.BlogPost, &detail.User.Name, &detail.User.Avatar); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	detail.User.ID = detail.UserID
	return detail, nil
}

// Create inserts a post. A slug collision yields ErrDuplicate and no row.
func (r *BlogRepository) Create(ctx context.Context, post *model.BlogPost) error {
	query := `INSERT INTO blog_posts (id, slug, title, excerpt, content, image, image_alt,
		tags, read_time, published, featured, views, created_at, user_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		post.ID, post.Slug, post.Title, post.Excerpt, post.Content,
		nullable(post.Image), nullable(post.ImageAlt), stringList(post.Tags),
		post.ReadTime, post.Published, post.Featured, post.Views,
		post.CreatedAt, post.UserID,
	)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// Update applies the non-nil fields of patch to the post and returns the
// stored result. An empty patch only reads the post back.
func (r *BlogRepository) Update(ctx context.Context, slug string, patch model.BlogPostPatch) (*model.BlogPost, error) {
	sets, args := patchAssignments(patch)
	if len(sets) > 0 {
		query := `UPDATE blog_posts SET ` + strings.Join(sets, ", ") + ` WHERE slug = ?`
		args = append(args, slug)
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			return nil, err
		}
	}
	return r.GetBySlug(ctx, slug)
}

// Delete removes a post by slug.
func (r *BlogRepository) Delete(ctx context.Context, slug string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM blog_posts WHERE slug = ?`, slug)
	if err != nil {
		return err
	}
	return expectAffected(result)
}

// IncrementViews bumps the view counter in a single statement so concurrent
// readers never lose an increment.
func (r *BlogRepository) IncrementViews(ctx context.Context, slug string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE blog_posts SET views = views + 1 WHERE slug = ?`, slug)
	if err != nil {
		return err
	}
	return expectAffected(result)
}

func patchAssignments(p model.BlogPostPatch) ([]string, []any) {
	var sets []string
	var args []any
	add := func(column string, v any) {
		sets = append(sets, column+" = ?")
		args = append(args, v)
	}

	if p.Title != nil {
		add("title", *p.Title)
	}
	if p.Excerpt != nil {
		add("excerpt", *p.Excerpt)
	}
	if p.Content != nil {
		add("content", *p.Content)
	}
	if p.Image != nil {
		add("image", nullable(p.Image))
	}
	if p.ImageAlt != nil {
		add("image_alt", nullable(p.ImageAlt))
	}
	if p.Published != nil {
		add("published", *p.Published)
	}
	if p.Featured != nil {
		add("featured", *p.Featured)
	}
	if p.Tags != nil {
		add("tags", stringList(*p.Tags))
	}
	if p.ReadTime != nil {
		add("read_time", *p.ReadTime)
	}
	return sets, args
}

func scanPost(row scanner, post *model.BlogPost, extra ...any) error {
	var tags stringList
	dest := []any{
		&post.ID, &post.Slug, &post.Title, &post.Excerpt, &post.Content,
		&post.Image, &post.ImageAlt, &tags, &post.ReadTime, &post.Published,
		&post.Featured, &post.Views, &post.CreatedAt, &post.UserID,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return err
	}
	post.Tags = tags
	return nil
}

func expectAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
