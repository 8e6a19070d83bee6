package model

import "time"

// Project represents a portfolio project row.
type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     *string   `json:"content,omitempty"`
	Image       *string   `json:"image,omitempty"`
	ImageAlt    *string   `json:"imageAlt,omitempty"`
	Tags        []string  `json:"tags"`
	Skills      []string  `json:"skills"`
	Featured    bool      `json:"featured"`
	LiveURL     *string   `json:"liveUrl,omitempty"`
	GithubURL   *string   `json:"githubUrl,omitempty"`
	Published   bool      `json:"published"`
	Position    int       `json:"position"`
	CreatedAt   time.Time `json:"createdAt"`
	UserID      string    `json:"userId"`
}

// CreateProjectRequest carries the fields accepted when creating a project.
type CreateProjectRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Content     *string  `json:"content"`
	Image       *string  `json:"image"`
	ImageAlt    *string  `json:"imageAlt"`
	Tags        []string `json:"tags"`
	Skills      []string `json:"skills"`
	Featured    *bool    `json:"featured"`
	LiveURL     *string  `json:"liveUrl"`
	GithubURL   *string  `json:"githubUrl"`
	Published   *bool    `json:"published"`
	Position    *int     `json:"position"`
	UserID      string   `json:"userId"`
}
