package services

import (
	"sort"

	"inkwell/app/models"
	"inkwell/app/repositories"
)

type mockUserRepo struct {
	users  map[int]*models.User
	byName map[string]int
	nextID int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		users:  make(map[int]*models.User),
		byName: make(map[string]int),
		nextID: 1,
	}
}

func (m *mockUserRepo) Create(user *models.User) error {
	if _, exists := m.byName[user.Name]; exists {
		return repositories.ErrDuplicate
	}
	user.ID = m.nextID
	m.nextID++
	m.users[user.ID] = user
	m.byName[user.Name] = user.ID
	return nil
}

func (m *mockUserRepo) GetByID(id int) (*models.User, error) {
	user, exists := m.users[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return user, nil
}

func (m *mockUserRepo) GetByName(name string) (*models.User, error) {
	id, exists := m.byName[name]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return m.users[id], nil
}

type mockPostRepo struct {
	posts  map[int]*models.Post
	nextID int
}

func newMockPostRepo() *mockPostRepo {
	return &mockPostRepo{
		posts:  make(map[int]*models.Post),
		nextID: 1,
	}
}

func (m *mockPostRepo) Create(post *models.Post) error {
	post.ID = m.nextID
	m.nextID++
	m.posts[post.ID] = post
	return nil
}

func (m *mockPostRepo) GetByID(id int) (*models.Post, error) {
	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return post, nil
}

func (m *mockPostRepo) List() ([]*models.Post, error) {
	var posts []*models.Post
	for _, post := range m.posts {
		posts = append(posts, post)
	}
	sort.Slice(posts, func(i, j int) bool {
		if !posts[i].Created.Equal(posts[j].Created) {
			return posts[i].Created.After(posts[j].Created)
		}
		return posts[i].ID > posts[j].ID
	})
	return posts, nil
}

func (m *mockPostRepo) Mutate(id int, fn func(*models.Post) error) (*models.Post, error) {
	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	// Work on a copy so a failing fn leaves the stored post untouched,
	// matching the transactional repository.
	updated := *post
	if err := fn(&updated); err != nil {
		return nil, err
	}
	updated.Touch()
	m.posts[id] = &updated
	return &updated, nil
}

func (m *mockPostRepo) Delete(id int) error {
	if _, exists := m.posts[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.posts, id)
	return nil
}
