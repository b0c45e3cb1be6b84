package repositories

import "inkwell/app/models"

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id int) (*models.User, error)
	GetByName(name string) (*models.User, error)
}

// PostRepository defines the interface for post data access.
// Mutate is the only write path for existing posts so that every
// read-modify-write happens inside a single storage transaction.
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id int) (*models.Post, error)
	List() ([]*models.Post, error)
	Mutate(id int, fn func(*models.Post) error) (*models.Post, error)
	Delete(id int) error
}
