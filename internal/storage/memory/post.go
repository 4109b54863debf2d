package memory

import (
	"fmt"
	"sort"
	"sync"

	"github.com/VitaminP8/blogery/api"
	"github.com/VitaminP8/blogery/internal/post"
	"github.com/VitaminP8/blogery/internal/user"
)

type PostMemoryStorage struct {
	mu          sync.Mutex
	posts       map[uint]*api.Post
	nextId      uint             // Для хранения актуального ID (можно было использовать UUID)
	userStorage user.UserStorage // Хранилище пользователей (внедрение зависимости (DI))
}

func NewPostMemoryStorage(userStore user.UserStorage) *PostMemoryStorage {
	return &PostMemoryStorage{
		posts:       make(map[uint]*api.Post),
		nextId:      1,
		userStorage: userStore,
	}
}

func (s *PostMemoryStorage) CreatePost(title, content string, authorID uint, category string) (*api.Post, error) {
	// автор должен существовать
	if _, err := s.userStorage.GetUserById(authorID); err != nil {
		return nil, fmt.Errorf("author %d: %w", authorID, post.ErrAuthorNotFound)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextId
	s.nextId++

	p := &api.Post{
		ID:       id,
		Title:    title,
		Content:  content,
		AuthorID: authorID,
		Category: category,
	}

	s.posts[id] = p

	cp := *p
	return &cp, nil
}

func (s *PostMemoryStorage) GetPostById(id uint) (*api.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, exists := s.posts[id]
	if !exists {
		return nil, post.ErrPostNotFound
	}

	// наружу отдаем копию, чтобы вызывающий не менял хранилище напрямую
	cp := *p
	return &cp, nil
}

func (s *PostMemoryStorage) GetAllPosts() ([]*api.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var posts []*api.Post
	for _, p := range s.posts {
		cp := *p
		posts = append(posts, &cp)
	}

	// порядок как в БД - по возрастанию id
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].ID < posts[j].ID
	})

	return posts, nil
}

func (s *PostMemoryStorage) UpdatePost(id uint, title, content string, authorID uint, category string) (*api.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// отсутствие записи важнее невалидного автора
	p, exists := s.posts[id]
	if !exists {
		return nil, post.ErrPostNotFound
	}

	if _, err := s.userStorage.GetUserById(authorID); err != nil {
		return nil, fmt.Errorf("author %d: %w", authorID, post.ErrAuthorNotFound)
	}

	// полная замена записи, частичных обновлений нет
	p.Title = title
	p.Content = content
	p.AuthorID = authorID
	p.Category = category

	cp := *p
	return &cp, nil
}

func (s *PostMemoryStorage) DeletePostById(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, exists := s.posts[id]
	if !exists {
		return post.ErrPostNotFound
	}

	delete(s.posts, id)
	return nil
}
