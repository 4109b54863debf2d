package post

import (
	"errors"

	"github.com/VitaminP8/blogery/api"
)

var (
	ErrPostNotFound   = errors.New("post not found")
	ErrAuthorNotFound = errors.New("author not found")
)

type PostStorage interface {
	CreatePost(title, content string, authorID uint, category string) (*api.Post, error)
	GetPostById(id uint) (*api.Post, error)
	GetAllPosts() ([]*api.Post, error)
	UpdatePost(id uint, title, content string, authorID uint, category string) (*api.Post, error)
	DeletePostById(id uint) error
}
