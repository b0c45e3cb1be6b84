package services

import (
	"inkwell/app/models"
	"inkwell/app/repositories"
)

// LikeService maintains the per-post like ledger: a counter plus the set
// of user names who liked the post, always mutated together.
type LikeService struct {
	postRepo repositories.PostRepository
}

// NewLikeService creates a new LikeService
func NewLikeService(postRepo repositories.PostRepository) *LikeService {
	return &LikeService{postRepo: postRepo}
}

// Toggle adds userName's like when currentlyLiked is false and the user
// has not liked the post yet; any other combination is treated as an
// unlike. Unliking a post the user never liked is a no-op: the stored
// set decides, not the client's hint, so a stale hint cannot push the
// counter below the set size. Returns the new counter value.
func (s *LikeService) Toggle(postID int, userName string, currentlyLiked bool) (int, error) {
	if userName == "" {
		return 0, ErrForbidden
	}

	post, err := s.postRepo.Mutate(postID, func(p *models.Post) error {
		if !currentlyLiked && !p.LikedBy(userName) {
			p.AddLike(userName)
		} else {
			p.RemoveLike(userName)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return post.LikesCounter, nil
}
