package services

import (
	"fmt"

	"inkwell/app/models"
	"inkwell/app/repositories"
)

// CommentService handles business logic for comments
type CommentService struct {
	postRepo repositories.PostRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(postRepo repositories.PostRepository) *CommentService {
	return &CommentService{postRepo: postRepo}
}

// AddComment appends a comment to the end of the post's comment sequence.
// The append happens inside the post's storage transaction, so a missing
// post can never leave an orphan comment behind.
func (s *CommentService) AddComment(postID int, text string, author *models.User) (*models.Comment, error) {
	if author == nil {
		return nil, ErrForbidden
	}
	if text == "" {
		return nil, ErrValidation
	}

	comment := models.Comment{
		Comment:    text,
		AuthorID:   author.ID,
		AuthorName: author.Name,
	}
	comment.BeforeCreate()

	if err := comment.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if _, err := s.postRepo.Mutate(postID, func(p *models.Post) error {
		return p.AddComment(comment)
	}); err != nil {
		return nil, err
	}
	return &comment, nil
}
