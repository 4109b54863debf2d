package comment

import (
	"errors"

	"github.com/VitaminP8/blogery/api"
)

var ErrCommentNotFound = errors.New("comment not found")

type CommentStorage interface {
	CreateComment(postID uint, authorName, content string) (*api.Comment, error)
	GetCommentById(id uint) (*api.Comment, error)
	GetAllComments() ([]*api.Comment, error)
	UpdateComment(id, postID uint, authorName, content string) (*api.Comment, error)
	DeleteCommentById(id uint) error
}
