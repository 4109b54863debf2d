package memory

import (
	"fmt"
	"sort"
	"sync"

	"github.com/VitaminP8/blogery/api"
	"github.com/VitaminP8/blogery/internal/comment"
	"github.com/VitaminP8/blogery/internal/post"
)

type CommentMemoryStorage struct {
	mu          sync.Mutex
	comments    map[uint]*api.Comment
	nextId      uint
	postStorage post.PostStorage // Хранилище постов (внедрение зависимости (DI))
}

func NewCommentMemoryStorage(postStore post.PostStorage) *CommentMemoryStorage {
	return &CommentMemoryStorage{
		comments:    make(map[uint]*api.Comment),
		nextId:      1,
		postStorage: postStore,
	}
}

func (s *CommentMemoryStorage) CreateComment(postID uint, authorName, content string) (*api.Comment, error) {
	// комментарий обязан ссылаться на существующий пост
	if _, err := s.postStorage.GetPostById(postID); err != nil {
		return nil, fmt.Errorf("post %d: %w", postID, post.ErrPostNotFound)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextId
	s.nextId++

	c := &api.Comment{
		ID:         id,
		PostID:     postID,
		AuthorName: authorName,
		Content:    content,
	}

	s.comments[id] = c

	cp := *c
	return &cp, nil
}

func (s *CommentMemoryStorage) GetCommentById(id uint) (*api.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, exists := s.comments[id]
	if !exists {
		return nil, comment.ErrCommentNotFound
	}

	// наружу отдаем копию, чтобы вызывающий не менял хранилище напрямую
	cp := *c
	return &cp, nil
}

func (s *CommentMemoryStorage) GetAllComments() ([]*api.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var comments []*api.Comment
	for _, c := range s.comments {
		cp := *c
		comments = append(comments, &cp)
	}

	sort.Slice(comments, func(i, j int) bool {
		return comments[i].ID < comments[j].ID
	})

	return comments, nil
}

func (s *CommentMemoryStorage) UpdateComment(id, postID uint, authorName, content string) (*api.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// отсутствие записи важнее невалидного поста
	c, exists := s.comments[id]
	if !exists {
		return nil, comment.ErrCommentNotFound
	}

	if _, err := s.postStorage.GetPostById(postID); err != nil {
		return nil, fmt.Errorf("post %d: %w", postID, post.ErrPostNotFound)
	}

	c.PostID = postID
	c.AuthorName = authorName
	c.Content = content

	cp := *c
	return &cp, nil
}

func (s *CommentMemoryStorage) DeleteCommentById(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, exists := s.comments[id]
	if !exists {
		return comment.ErrCommentNotFound
	}

	delete(s.comments, id)
	return nil
}
