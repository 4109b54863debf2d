package memory

import (
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/VitaminP8/blogery/api"
	"github.com/VitaminP8/blogery/internal/auth"
	"github.com/VitaminP8/blogery/internal/user"
)

type UserMemoryStorage struct {
	mu        sync.Mutex
	users     map[string]*api.User
	passwords map[string]string
	nextId    uint
}

func NewUserMemoryStorage() *UserMemoryStorage {
	return &UserMemoryStorage{
		users:     make(map[string]*api.User),
		passwords: make(map[string]string),
		nextId:    1,
	}
}

func (s *UserMemoryStorage) RegisterUser(username, email, password string) (*api.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, exists := s.users[username]
	if exists {
		return nil, fmt.Errorf("user %s: %w", username, user.ErrUserExists)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	id := s.nextId
	s.nextId++

	u := &api.User{
		ID:       id,
		Username: username,
		Email:    email,
	}

	s.users[username] = u
	s.passwords[username] = string(hashedPassword)

	return u, nil
}

func (s *UserMemoryStorage) LoginUser(username, password string) (*api.TokenPair, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// одинаковая ошибка для неизвестного username и неверного пароля
	u, exists := s.users[username]
	if !exists {
		return nil, user.ErrInvalidCredentials
	}

	hashedPassword, ok := s.passwords[username]
	if !ok {
		return nil, user.ErrInvalidCredentials
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	if err != nil {
		return nil, user.ErrInvalidCredentials
	}

	pair, err := auth.GenerateTokenPair(u.ID, u.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token pair: %w", err)
	}

	return pair, nil
}

func (s *UserMemoryStorage) GetUserById(id uint) (*api.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}

	return nil, user.ErrUserNotFound
}

// SetStaff выставляет флаг is_staff. HTTP эндпоинта для этого нет -
// флаг меняется только операциями уровня администрирования хранилища.
func (s *UserMemoryStorage) SetStaff(username string, staff bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, exists := s.users[username]
	if !exists {
		return user.ErrUserNotFound
	}

	u.IsStaff = staff
	return nil
}
