package postgres

import (
	"fmt"

	"github.com/VitaminP8/blogery/api"
	"github.com/VitaminP8/blogery/internal/post"
	"github.com/VitaminP8/blogery/models"
)

type PostPostgresStorage struct{}

func NewPostPostgresStorage() *PostPostgresStorage {
	return &PostPostgresStorage{}
}

func (s *PostPostgresStorage) CreatePost(title, content string, authorID uint, category string) (*api.Post, error) {
	// автор должен существовать
	var author models.User
	err := DB.First(&author, authorID).Error
	if err != nil {
		return nil, fmt.Errorf("author %d: %w", authorID, post.ErrAuthorNotFound)
	}

	p := &models.Post{
		Title:    title,
		Content:  content,
		Category: category,
		UserID:   authorID,
	}

	err = DB.Create(p).Error
	if err != nil {
		return nil, fmt.Errorf("could not create post: %w", err)
	}

	return toApiPost(p), nil
}

func (s *PostPostgresStorage) GetPostById(id uint) (*api.Post, error) {
	var p models.Post
	err := DB.First(&p, id).Error
	if err != nil {
		return nil, post.ErrPostNotFound
	}

	return toApiPost(&p), nil
}

func (s *PostPostgresStorage) GetAllPosts() ([]*api.Post, error) {
	var posts []models.Post
	err := DB.Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("could not get posts: %w", err)
	}

	var results []*api.Post
	for i := range posts {
		results = append(results, toApiPost(&posts[i]))
	}

	return results, nil
}

func (s *PostPostgresStorage) UpdatePost(id uint, title, content string, authorID uint, category string) (*api.Post, error) {
	// отсутствие записи важнее невалидного автора
	var p models.Post
	err := DB.First(&p, id).Error
	if err != nil {
		return nil, post.ErrPostNotFound
	}

	var author models.User
	err = DB.First(&author, authorID).Error
	if err != nil {
		return nil, fmt.Errorf("author %d: %w", authorID, post.ErrAuthorNotFound)
	}

	// полная замена записи
	p.Title = title
	p.Content = content
	p.UserID = authorID
	p.Category = category

	err = DB.Save(&p).Error
	if err != nil {
		return nil, fmt.Errorf("could not update post: %w", err)
	}

	return toApiPost(&p), nil
}

func (s *PostPostgresStorage) DeletePostById(id uint) error {
	var p models.Post
	err := DB.First(&p, id).Error
	if err != nil {
		return post.ErrPostNotFound
	}

	err = DB.Delete(&p).Error
	if err != nil {
		return fmt.Errorf("could not delete post: %w", err)
	}

	return nil
}

func toApiPost(p *models.Post) *api.Post {
	return &api.Post{
		ID:       p.ID,
		Title:    p.Title,
		Content:  p.Content,
		AuthorID: p.UserID,
		Category: p.Category,
	}
}
