package services

import (
	"fmt"

	"inkwell/app/models"
	"inkwell/app/repositories"
)

// PostService handles business logic for blog posts
type PostService struct {
	postRepo repositories.PostRepository
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// CreatePost creates a new blog post owned by owner
func (s *PostService) CreatePost(subject, content string, owner *models.User) (*models.Post, error) {
	if owner == nil {
		return nil, ErrForbidden
	}
	if subject == "" || content == "" {
		return nil, ErrValidation
	}

	post := &models.Post{
		Subject:    subject,
		Content:    content,
		PosterID:   owner.ID,
		PosterName: owner.Name,
	}
	post.BeforeCreate()

	if err := post.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

// GetPost retrieves a post by ID
func (s *PostService) GetPost(id int) (*models.Post, error) {
	return s.postRepo.GetByID(id)
}

// ListPosts retrieves all posts, most recent first
func (s *PostService) ListPosts() ([]*models.Post, error) {
	return s.postRepo.List()
}

// UpdatePost edits a post's subject and content. Only the owner may edit;
// the ownership check runs before validation so a non-owner always gets
// ErrForbidden regardless of payload.
func (s *PostService) UpdatePost(id int, subject, content string, requester *models.User) (*models.Post, error) {
	if requester == nil {
		return nil, ErrForbidden
	}

	return s.postRepo.Mutate(id, func(p *models.Post) error {
		if p.PosterID != requester.ID {
			return ErrForbidden
		}
		if subject == "" || content == "" {
			return ErrValidation
		}
		p.Subject = subject
		p.Content = content
		if err := p.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrValidation, err)
		}
		return nil
	})
}

// DeletePost removes a post and its embedded comments. Only the owner
// may delete.
func (s *PostService) DeletePost(id int, requester *models.User) error {
	if requester == nil {
		return ErrForbidden
	}

	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return err
	}
	// Owner never changes after creation, so the check cannot go stale
	// between the read and the delete.
	if post.PosterID != requester.ID {
		return ErrForbidden
	}

	return s.postRepo.Delete(id)
}
