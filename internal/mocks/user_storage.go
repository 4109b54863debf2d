package mocks

import (
	"sync"

	"github.com/VitaminP8/blogery/api"
	"github.com/VitaminP8/blogery/internal/auth"
	"github.com/VitaminP8/blogery/internal/user"
)

// MockUserStorage реализует интерфейс user.UserStorage для тестирования.
// Пароли хранятся открытым текстом (bcrypt в тестах не нужен),
// токены при этом настоящие - иначе middleware их не примет.
type MockUserStorage struct {
	mu        sync.Mutex
	users     map[string]*api.User // username -> user
	passwords map[string]string    // username -> password
	nextID    uint
}

func NewMockUserStorage() *MockUserStorage {
	return &MockUserStorage{
		users:     make(map[string]*api.User),
		passwords: make(map[string]string),
		nextID:    1,
	}
}

func (m *MockUserStorage) RegisterUser(username, email, password string) (*api.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.users[username]; exists {
		return nil, user.ErrUserExists
	}

	id := m.nextID
	m.nextID++

	u := &api.User{
		ID:       id,
		Username: username,
		Email:    email,
	}

	m.users[username] = u
	m.passwords[username] = password

	return u, nil
}

func (m *MockUserStorage) LoginUser(username, password string) (*api.TokenPair, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, exists := m.users[username]
	if !exists {
		return nil, user.ErrInvalidCredentials
	}

	storedPassword, exists := m.passwords[username]
	if !exists || storedPassword != password {
		return nil, user.ErrInvalidCredentials
	}

	return auth.GenerateTokenPair(u.ID, u.Username)
}

func (m *MockUserStorage) GetUserById(id uint) (*api.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}

	return nil, user.ErrUserNotFound
}

// SetStaff вспомогательный метод для тестирования admin-only гейта
func (m *MockUserStorage) SetStaff(username string, staff bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, exists := m.users[username]
	if !exists {
		return user.ErrUserNotFound
	}

	u.IsStaff = staff
	return nil
}

// GetUserByUsername вспомогательный метод для тестирования
func (m *MockUserStorage) GetUserByUsername(username string) (*api.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, exists := m.users[username]
	if !exists {
		return nil, user.ErrUserNotFound
	}

	return u, nil
}
