package mocks

import (
	"sync"

	"github.com/VitaminP8/blogery/api"
	"github.com/VitaminP8/blogery/internal/comment"
	"github.com/VitaminP8/blogery/internal/post"
)

// MockCommentStorage реализует интерфейс comment.CommentStorage для тестирования
type MockCommentStorage struct {
	mu       sync.Mutex
	comments map[uint]*api.Comment
	nextID   uint
	posts    post.PostStorage
}

func NewMockCommentStorage(posts post.PostStorage) *MockCommentStorage {
	return &MockCommentStorage{
		comments: make(map[uint]*api.Comment),
		nextID:   1,
		posts:    posts,
	}
}

func (m *MockCommentStorage) CreateComment(postID uint, authorName, content string) (*api.Comment, error) {
	if _, err := m.posts.GetPostById(postID); err != nil {
		return nil, post.ErrPostNotFound
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++

	c := &api.Comment{
		ID:         id,
		PostID:     postID,
		AuthorName: authorName,
		Content:    content,
	}
	m.comments[id] = c
	return c, nil
}

func (m *MockCommentStorage) GetCommentById(id uint) (*api.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.comments[id]
	if !ok {
		return nil, comment.ErrCommentNotFound
	}
	return c, nil
}

func (m *MockCommentStorage) GetAllComments() ([]*api.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var comments []*api.Comment
	for _, c := range m.comments {
		comments = append(comments, c)
	}
	return comments, nil
}

func (m *MockCommentStorage) UpdateComment(id, postID uint, authorName, content string) (*api.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// отсутствие записи важнее невалидного поста
	c, ok := m.comments[id]
	if !ok {
		return nil, comment.ErrCommentNotFound
	}

	if _, err := m.posts.GetPostById(postID); err != nil {
		return nil, post.ErrPostNotFound
	}

	c.PostID = postID
	c.AuthorName = authorName
	c.Content = content
	return c, nil
}

func (m *MockCommentStorage) DeleteCommentById(id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.comments[id]; !ok {
		return comment.ErrCommentNotFound
	}

	delete(m.comments, id)
	return nil
}
