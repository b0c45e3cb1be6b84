package models

import (
	"errors"
	"time"
)

// Validate checks if the post meets all validation requirements
func (p *Post) Validate() error {
	if err := validate.Struct(p); err != nil {
		return err
	}

	if p.Created.IsZero() {
		return errors.New("created cannot be zero")
	}

	if p.LikesCounter != len(p.LikesAuthors) {
		return errors.New("likes counter does not match likes authors")
	}

	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (p *Post) BeforeCreate() {
	now := time.Now()
	if p.Created.IsZero() {
		p.Created = now
	}
	p.LastModified = now
}

// Touch updates the modification timestamp, leaving Created untouched.
func (p *Post) Touch() {
	p.LastModified = time.Now()
}

// AddComment appends a comment to the end of the post's comment sequence.
func (p *Post) AddComment(comment Comment) error {
	if comment.Comment == "" {
		return errors.New("comment cannot be empty")
	}
	p.Comments = append(p.Comments, comment)
	return nil
}

// LikedBy reports whether name is in the post's like ledger.
func (p *Post) LikedBy(name string) bool {
	for _, a := range p.LikesAuthors {
		if a == name {
			return true
		}
	}
	return false
}

// AddLike records a like from name. It returns false if name already
// liked the post; the counter stays equal to the author set size.
func (p *Post) AddLike(name string) bool {
	if p.LikedBy(name) {
		return false
	}
	p.LikesAuthors = append(p.LikesAuthors, name)
	p.LikesCounter = len(p.LikesAuthors)
	return true
}

// RemoveLike withdraws a like from name. It returns false if name had
// not liked the post.
func (p *Post) RemoveLike(name string) bool {
	for i, a := range p.LikesAuthors {
		if a == name {
			p.LikesAuthors = append(p.LikesAuthors[:i], p.LikesAuthors[i+1:]...)
			p.LikesCounter = len(p.LikesAuthors)
			return true
		}
	}
	return false
}
