package showcase

import (
	"context"
	"time"

	"github.com/folio/folio-go/internal/model"
)

// StaticSource serves a fixed set of demo records. Post dates are relative
// to Now so the demo listing always looks recent.
type StaticSource struct {
	Now func() time.Time
}

func (s StaticSource) now() time.Time {
	if s.Now == nil {
		return time.Now().UTC()
	}
	return s.Now().UTC()
}

func (s StaticSource) Posts(context.Context) ([]model.BlogPostSummary, error) {
	now := s.now()
	day := 24 * time.Hour

	return []model.BlogPostSummary{
		{
			ID:        "1",
			Slug:      "getting-started-with-nextjs",
			Title:     "Getting Started with Next.js 14",
			Excerpt:   "A comprehensive guide to setting up a modern Next.js project with TypeScript, Tailwind CSS, and best practices.",
			Tags:      []string{"Next.js", "React", "TypeScript"},
			ReadTime:  8,
			CreatedAt: now,
		},
		{
			ID:        "2",
			Slug:      "building-scalable-databases",
			Title:     "Building Scalable Database Architectures",
			Excerpt:   "Tips and tricks for designing PostgreSQL databases that can handle millions of queries efficiently.",
			Tags:      []string{"PostgreSQL", "Architecture", "Backend"},
			ReadTime:  12,
			CreatedAt: now.Add(-7 * day),
		},
		{
			ID:        "3",
			Slug:      "react-performance-optimization",
			Title:     "React Performance Optimization Techniques",
			Excerpt:   "Deep dive into memoization, code splitting, and lazy loading to make your React apps lightning fast.",
			Tags:      []string{"React", "Performance", "Frontend"},
			ReadTime:  10,
			CreatedAt: now.Add(-14 * day),
		},
	}, nil
}

func (s StaticSource) Projects(context.Context) ([]model.Project, error) {
	return []model.Project{
		{
			ID:          "1",
			Title:       "E-Commerce Platform",
			Description: "A full-featured e-commerce platform built with Next.js and Stripe integration.",
			Tags:        []string{"React", "Next.js", "Stripe", "PostgreSQL"},
			Skills:      []string{},
			Featured:    true,
			Published:   true,
		},
		{
			ID:          "2",
			Title:       "Content Management System",
			Description: "A headless CMS with rich text editing capabilities and real-time collaboration.",
			Tags:        []string{"React", "Node.js", "MongoDB", "WebSockets"},
			Skills:      []string{},
			Featured:    true,
			Published:   true,
			Position:    1,
		},
		{
			ID:          "3",
			Title:       "Analytics Dashboard",
			Description: "Real-time analytics dashboard with interactive charts and data visualizations.",
			Tags:        []string{"React", "D3.js", "API", "TypeScript"},
			Skills:      []string{},
			Published:   true,
			Position:    2,
		},
	}, nil
}
