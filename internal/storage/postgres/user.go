package postgres

import (
	"fmt"

	"github.com/jinzhu/gorm"
	"golang.org/x/crypto/bcrypt"

	"github.com/VitaminP8/blogery/api"
	"github.com/VitaminP8/blogery/internal/auth"
	"github.com/VitaminP8/blogery/internal/user"
	"github.com/VitaminP8/blogery/models"
)

type UserPostgresStorage struct{}

func NewUserPostgresStorage() *UserPostgresStorage {
	return &UserPostgresStorage{}
}

func (s *UserPostgresStorage) RegisterUser(username, email, password string) (*api.User, error) {
	// проверка - существует ли такой пользователь
	var existUser models.User
	err := DB.Where("username = ?", username).First(&existUser).Error
	if err == nil {
		return nil, fmt.Errorf("user %s: %w", username, user.ErrUserExists)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &models.User{
		Username: username,
		Email:    email,
		Password: string(hashedPassword),
	}

	err = DB.Create(u).Error
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &api.User{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		IsStaff:  u.IsStaff,
	}, nil
}

func (s *UserPostgresStorage) LoginUser(username, password string) (*api.TokenPair, error) {
	// одинаковая ошибка для неизвестного username и неверного пароля
	var u models.User
	err := DB.Where("username = ?", username).First(&u).Error
	if err != nil {
		return nil, user.ErrInvalidCredentials
	}

	err = bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	if err != nil {
		return nil, user.ErrInvalidCredentials
	}

	pair, err := auth.GenerateTokenPair(u.ID, u.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token pair: %w", err)
	}

	return pair, nil
}

func (s *UserPostgresStorage) GetUserById(id uint) (*api.User, error) {
	var u models.User
	err := DB.First(&u, id).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, user.ErrUserNotFound
	}
	if err != nil {
		// сбой хранилища не выдаем за отсутствие пользователя
		return nil, fmt.Errorf("could not get user %d: %w", id, err)
	}

	return &api.User{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		IsStaff:  u.IsStaff,
	}, nil
}

// SetStaff выставляет флаг is_staff (операция уровня администрирования, без HTTP эндпоинта)
func (s *UserPostgresStorage) SetStaff(username string, staff bool) error {
	var u models.User
	err := DB.Where("username = ?", username).First(&u).Error
	if err != nil {
		return user.ErrUserNotFound
	}

	err = DB.Model(&u).Update("is_staff", staff).Error
	if err != nil {
		return fmt.Errorf("could not update is_staff: %w", err)
	}

	return nil
}
