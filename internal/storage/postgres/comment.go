package postgres

import (
	"fmt"

	"github.com/VitaminP8/blogery/api"
	"github.com/VitaminP8/blogery/internal/comment"
	"github.com/VitaminP8/blogery/internal/post"
	"github.com/VitaminP8/blogery/models"
)

type CommentPostgresStorage struct{}

func NewCommentPostgresStorage() *CommentPostgresStorage {
	return &CommentPostgresStorage{}
}

func (s *CommentPostgresStorage) CreateComment(postID uint, authorName, content string) (*api.Comment, error) {
	// комментарий обязан ссылаться на существующий пост
	var p models.Post
	err := DB.First(&p, postID).Error
	if err != nil {
		return nil, fmt.Errorf("post %d: %w", postID, post.ErrPostNotFound)
	}

	c := &models.Comment{
		PostID:     postID,
		AuthorName: authorName,
		Content:    content,
	}

	err = DB.Create(c).Error
	if err != nil {
		return nil, fmt.Errorf("could not create comment: %w", err)
	}

	return toApiComment(c), nil
}

func (s *CommentPostgresStorage) GetCommentById(id uint) (*api.Comment, error) {
	var c models.Comment
	err := DB.First(&c, id).Error
	if err != nil {
		return nil, comment.ErrCommentNotFound
	}

	return toApiComment(&c), nil
}

func (s *CommentPostgresStorage) GetAllComments() ([]*api.Comment, error) {
	var comments []models.Comment
	err := DB.Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("could not get comments: %w", err)
	}

	var results []*api.Comment
	for i := range comments {
		results = append(results, toApiComment(&comments[i]))
	}

	return results, nil
}

func (s *CommentPostgresStorage) UpdateComment(id, postID uint, authorName, content string) (*api.Comment, error) {
	// отсутствие записи важнее невалидного поста
	var c models.Comment
	err := DB.First(&c, id).Error
	if err != nil {
		return nil, comment.ErrCommentNotFound
	}

	var p models.Post
	err = DB.First(&p, postID).Error
	if err != nil {
		return nil, fmt.Errorf("post %d: %w", postID, post.ErrPostNotFound)
	}

	// полная замена записи
	c.PostID = postID
	c.AuthorName = authorName
	c.Content = content

	err = DB.Save(&c).Error
	if err != nil {
		return nil, fmt.Errorf("could not update comment: %w", err)
	}

	return toApiComment(&c), nil
}

func (s *CommentPostgresStorage) DeleteCommentById(id uint) error {
	var c models.Comment
	err := DB.First(&c, id).Error
	if err != nil {
		return comment.ErrCommentNotFound
	}

	err = DB.Delete(&c).Error
	if err != nil {
		return fmt.Errorf("could not delete comment: %w", err)
	}

	return nil
}

func toApiComment(c *models.Comment) *api.Comment {
	return &api.Comment{
		ID:         c.ID,
		PostID:     c.PostID,
		AuthorName: c.AuthorName,
		Content:    c.Content,
	}
}
