package mocks

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"

	"github.com/VitaminP8/bloccit/api/model"
	"github.com/VitaminP8/bloccit/internal/auth"
	"github.com/VitaminP8/bloccit/internal/storage"
	"github.com/VitaminP8/bloccit/internal/user"
)

// MockUserStorage реализует интерфейс user.UserStorage для тестирования
type MockUserStorage struct {
	mu        sync.Mutex
	users     map[string]*model.User // id -> user
	passwords map[string]string      // id -> password
	nextID    int
}

// NewMockUserStorage создает новый экземпляр мока для хранилища пользователей
func NewMockUserStorage() *MockUserStorage {
	return &MockUserStorage{
		users:     make(map[string]*model.User),
		passwords: make(map[string]string),
		nextID:    1,
	}
}

func (m *MockUserStorage) findByUsername(username string) *model.User {
	for _, u := range m.users {
		if u.Username == username {
			return u
		}
	}
	return nil
}

// RegisterUser имитирует регистрацию пользователя (пароль хранится как есть)
func (m *MockUserStorage) RegisterUser(username, email, password string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.findByUsername(username) != nil {
		return nil, fmt.Errorf("user %s: %w", username, storage.ErrAlreadyExists)
	}

	user := &model.User{
		ID:       strconv.Itoa(m.nextID),
		Username: username,
		Email:    email,
	}
	m.nextID++

	m.users[user.ID] = user
	m.passwords[user.ID] = password

	return user, nil
}

// LoginUser имитирует авторизацию и возвращает настоящий JWT
func (m *MockUserStorage) LoginUser(username, password string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user := m.findByUsername(username)
	if user == nil || m.passwords[user.ID] != password {
		return "", fmt.Errorf("invalid password or username: %w", auth.ErrUnauthorized)
	}

	return auth.IssueToken(user.ID, user.Username)
}

func (m *MockUserStorage) GetUserById(id string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, storage.ErrNotFound)
	}
	return user, nil
}

func (m *MockUserStorage) GetAllUsers() ([]*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	users := make([]*model.User, 0, len(m.users))
	for _, u := range m.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool {
		a, _ := strconv.Atoi(users[i].ID)
		b, _ := strconv.Atoi(users[j].ID)
		return a < b
	})
	return users, nil
}

func (m *MockUserStorage) UpdateUser(ctx context.Context, id, username, email string) (*model.User, error) {
	userID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := user.ValidateProfile(username, email); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, storage.ErrNotFound)
	}
	if userID != id {
		return nil, auth.ErrForbidden
	}

	if username != "" {
		u.Username = username
	}
	if email != "" {
		u.Email = email
	}
	return u, nil
}

func (m *MockUserStorage) DeleteUserById(ctx context.Context, id string) error {
	userID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[id]; !ok {
		return fmt.Errorf("user %s: %w", id, storage.ErrNotFound)
	}
	if userID != id {
		return auth.ErrForbidden
	}

	delete(m.users, id)
	delete(m.passwords, id)
	return nil
}
