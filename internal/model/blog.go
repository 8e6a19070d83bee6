package model

import "time"

// BlogPost represents a blog post row.
type BlogPost struct {
	ID        string    `json:"id"`
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Excerpt   string    `json:"excerpt"`
	Content   string    `json:"content"`
	Image     *string   `json:"image,omitempty"`
	ImageAlt  *string   `json:"imageAlt,omitempty"`
	Tags      []string  `json:"tags"`
	ReadTime  int       `json:"readTime"`
	Published bool      `json:"published"`
	Featured  bool      `json:"featured"`
	Views     int64     `json:"views"`
	CreatedAt time.Time `json:"createdAt"`
	UserID    string    `json:"userId"`
}

// BlogPostSummary is the list projection of a post. It never carries the content.
type BlogPostSummary struct {
	ID        string    `json:"id"`
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Excerpt   string    `json:"excerpt"`
	Image     *string   `json:"image,omitempty"`
	ImageAlt  *string   `json:"imageAlt,omitempty"`
	Tags      []string  `json:"tags"`
	ReadTime  int       `json:"readTime"`
	Featured  bool      `json:"featured"`
	Views     int64     `json:"views"`
	CreatedAt time.Time `json:"createdAt"`
}

// BlogPostDetail is a single post together with its author.
type BlogPostDetail struct {
	BlogPost
	User Author `json:"user"`
}

// CreateBlogPostRequest carries the fields accepted when creating a post.
// Pointer fields distinguish "omitted" from an explicit zero value.
type CreateBlogPostRequest struct {
	Title     string   `json:"title"`
	Slug      string   `json:"slug"`
	Excerpt   string   `json:"excerpt"`
	Content   string   `json:"content"`
	Image     *string  `json:"image"`
	ImageAlt  *string  `json:"imageAlt"`
	Published *bool    `json:"published"`
	Featured  *bool    `json:"featured"`
	Tags      []string `json:"tags"`
	ReadTime  *int     `json:"readTime"`
	UserID    string   `json:"userId"`
}

// BlogPostPatch lists every field an update may touch. A nil field is left
// unchanged; an empty Image or ImageAlt clears the stored value.
type BlogPostPatch struct {
	Title     *string   `json:"title"`
	Excerpt   *string   `json:"excerpt"`
	Content   *string   `json:"content"`
	Image     *string   `json:"image"`
	ImageAlt  *string   `json:"imageAlt"`
	Published *bool     `json:"published"`
	Featured  *bool     `json:"featured"`
	Tags      *[]string `json:"tags"`
	ReadTime  *int      `json:"readTime"`
}

// Empty reports whether the patch changes nothing.
func (p BlogPostPatch) Empty() bool {
	return p.Title == nil && p.Excerpt == nil && p.Content == nil &&
		p.Image == nil && p.ImageAlt == nil && p.Published == nil &&
		p.Featured == nil && p.Tags == nil && p.ReadTime == nil
}

// Summary projects a post onto its list representation.
func (p BlogPost) Summary() BlogPostSummary {
	return BlogPostSummary{
		ID:        p.ID,
		Slug:      p.Slug,
		Title:     p.Title,
		Excerpt:   p.Excerpt,
		Image:     p.Image,
		ImageAlt:  p.ImageAlt,
		Tags:      p.Tags,
		ReadTime:  p.ReadTime,
		Featured:  p.Featured,
		Views:     p.Views,
		CreatedAt: p.CreatedAt,
	}
}
