package user

import (
	"errors"

	"github.com/VitaminP8/blogery/api"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type UserStorage interface {
	RegisterUser(username, email, password string) (*api.User, error)
	LoginUser(username, password string) (*api.TokenPair, error)
	GetUserById(id uint) (*api.User, error)
}
