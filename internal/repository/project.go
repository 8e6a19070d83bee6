package repository

import (
	"context"
	"database/sql"

	"github.com/folio/folio-go/internal/model"
)

// ProjectRepository handles project persistence operations.
type ProjectRepository struct {
	db *sql.DB
}

// NewProjectRepository creates a new ProjectRepository.
func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

const projectColumns = `id, title, description, content, image, image_alt, tags, skills,
	featured, live_url, github_url, published, position, created_at, user_id`

// ListPublished returns published projects: featured first, then by
// position, then newest first.
func (r *ProjectRepository) ListPublished(ctx context.Context) ([]model.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects
		WHERE published = ? ORDER BY featured DESC, position ASC, created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, true)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := []model.Project{}
	for rows.Next() {
		var p model.Project
		var tags, skills stringList
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Description, &p.Content, &p.Image, &p.ImageAlt,
			&tags, &skills, &p.Featured, &p.LiveURL, &p.GithubURL,
			&p.Published, &p.Position, &p.CreatedAt, &p.UserID,
		); err != nil {
			return nil, err
		}
		p.Tags = tags
		p.Skills = skills
		projects = append(projects, p)
	}

	return projects, rows.Err()
}

// Create inserts a project.
func (r *ProjectRepository) Create(ctx context.Context, p *model.Project) error {
	query := `INSERT INTO projects (` + projectColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.Title, p.Description, nullable(p.Content), nullable(p.Image),
		nullable(p.ImageAlt), stringList(p.Tags), stringList(p.Skills), p.Featured,
		nullable(p.LiveURL), nullable(p.GithubURL), p.Published, p.Position,
		p.CreatedAt, p.UserID,
	)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}
