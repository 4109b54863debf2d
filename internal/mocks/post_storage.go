package mocks

import (
	"sync"

	"github.com/VitaminP8/blogery/api"
	"github.com/VitaminP8/blogery/internal/post"
	"github.com/VitaminP8/blogery/internal/user"
)

// MockPostStorage реализует интерфейс post.PostStorage для тестирования
type MockPostStorage struct {
	mu     sync.Mutex
	posts  map[uint]*api.Post
	nextID uint
	users  user.UserStorage
}

func NewMockPostStorage(users user.UserStorage) *MockPostStorage {
	return &MockPostStorage{
		posts:  make(map[uint]*api.Post),
		nextID: 1,
		users:  users,
	}
}

func (m *MockPostStorage) CreatePost(title, content string, authorID uint, category string) (*api.Post, error) {
	if _, err := m.users.GetUserById(authorID); err != nil {
		return nil, post.ErrAuthorNotFound
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++

	p := &api.Post{
		ID:       id,
		Title:    title,
		Content:  content,
		AuthorID: authorID,
		Category: category,
	}
	m.posts[id] = p
	return p, nil
}

func (m *MockPostStorage) GetPostById(id uint) (*api.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.posts[id]
	if !ok {
		return nil, post.ErrPostNotFound
	}
	return p, nil
}

func (m *MockPostStorage) GetAllPosts() ([]*api.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var posts []*api.Post
	for _, p := range m.posts {
		posts = append(posts, p)
	}
	return posts, nil
}

func (m *MockPostStorage) UpdatePost(id uint, title, content string, authorID uint, category string) (*api.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// отсутствие записи важнее невалидного автора
	p, ok := m.posts[id]
	if !ok {
		return nil, post.ErrPostNotFound
	}

	if _, err := m.users.GetUserById(authorID); err != nil {
		return nil, post.ErrAuthorNotFound
	}

	p.Title = title
	p.Content = content
	p.AuthorID = authorID
	p.Category = category
	return p, nil
}

func (m *MockPostStorage) DeletePostById(id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.posts[id]; !ok {
		return post.ErrPostNotFound
	}

	delete(m.posts, id)
	return nil
}
