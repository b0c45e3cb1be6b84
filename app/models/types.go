package models

import "time"

// User represents a registered account. Name is unique across all users.
// IDs are assigned by storage, so a record validates before it has one.
type User struct {
	ID     int    `validate:"gte=0"`
	Name   string `validate:"required,min=3,max=20"`
	PwHash string `validate:"required"`
	Email  string `validate:"omitempty,email"`
}

// Post represents a blog post with embedded comments and a like ledger.
type Post struct {
	ID           int       `validate:"gte=0"`
	Subject      string    `validate:"required,min=1,max=100"`
	Content      string    `validate:"required,min=1"`
	Created      time.Time `validate:"required"`
	LastModified time.Time `validate:"-"`
	PosterID     int       `validate:"required,gte=0"`
	PosterName   string    `validate:"required"`
	LikesCounter int       `validate:"gte=0"`
	LikesAuthors []string  `validate:"-"`
	Comments     []Comment `validate:"-"`
}

// Comment lives inside its parent post's Comments sequence and has no
// independent lifecycle.
type Comment struct {
	Comment      string    `validate:"required,min=1,max=500"`
	Created      time.Time `validate:"required"`
	LastModified time.Time `validate:"-"`
	AuthorID     int       `validate:"required,gte=0"`
	AuthorName   string    `validate:"required"`
}
