package memory

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

	"golang.org/x/crypto/bcrypt"
)

type UserMemoryStorage struct {
	mu        sync.Mutex
	users     map[string]*model.User // id -> user
	passwords map[string]string      // id -> bcrypt hash
	nextId    int
}

func NewUserMemoryStorage() *UserMemoryStorage {
	return &UserMemoryStorage{
		users:     make(map[string]*model.User),
		passwords: make(map[string]string),
		nextId:    1,
	}
}

func (s *UserMemoryStorage) findByUsername(username string) *model.User {
	for _, u := range s.users {
		if u.Username == username {
			return u
		}
	}
	return nil
}

func (s *UserMemoryStorage) findByEmail(email string) *model.User {
	for _, u := range s.users {
		if u.Email == email {
			return u
		}
	}
	return nil
}

func (s *UserMemoryStorage) RegisterUser(username, email, password string) (*model.User, error) {
	err := user.ValidateRegistration(username, email, password)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findByUsername(username) != nil {
		return nil, fmt.Errorf("user %s: %w", username, storage.ErrAlreadyExists)
	}
	if s.findByEmail(email) != nil {
		return nil, fmt.Errorf("email %s: %w", email, storage.ErrAlreadyExists)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	id := strconv.Itoa(s.nextId)
	s.nextId++

	u := &model.User{
		ID:       id,
		Username: username,
		Email:    email,
	}

	s.users[id] = u
	s.passwords[id] = string(hashedPassword)

	return copyUser(u), nil
}

func (s *UserMemoryStorage) LoginUser(username, password string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.findByUsername(username)
	if u == nil {
		return "", fmt.Errorf("user %s not found: %w", username, auth.ErrUnauthorized)
	}

	err := bcrypt.CompareHashAndPassword([]byte(s.passwords[u.ID]), []byte(password))
	if err != nil {
		return "", fmt.Errorf("password for user %s is incorrect: %w", username, auth.ErrUnauthorized)
	}

	return auth.IssueToken(u.ID, u.Username)
}

func (s *UserMemoryStorage) GetUserById(id string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, exists := s.users[id]
	if !exists {
		return nil, fmt.Errorf("user %s: %w", id, storage.ErrNotFound)
	}

	return copyUser(u), nil
}

func (s *UserMemoryStorage) GetAllUsers() ([]*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]*model.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, copyUser(u))
	}
	sort.Slice(users, func(i, j int) bool {
		return lessID(users[i].ID, users[j].ID)
	})

	return users, nil
}

func (s *UserMemoryStorage) UpdateUser(ctx context.Context, id, username, email string) (*model.User, error) {
	userID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not update user: %w", err)
	}

	err = user.ValidateProfile(username, email)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u, exists := s.users[id]
	if !exists {
		return nil, fmt.Errorf("user %s: %w", id, storage.ErrNotFound)
	}
	if userID != id {
		return nil, fmt.Errorf("not your account: %w", auth.ErrForbidden)
	}

	if username != "" && username != u.Username {
		if s.findByUsername(username) != nil {
			return nil, fmt.Errorf("user %s: %w", username, storage.ErrAlreadyExists)
		}
		u.Username = username
	}
	if email != "" && email != u.Email {
		if s.findByEmail(email) != nil {
			return nil, fmt.Errorf("email %s: %w", email, storage.ErrAlreadyExists)
		}
		u.Email = email
	}

	return copyUser(u), nil
}

func (s *UserMemoryStorage) DeleteUserById(ctx context.Context, id string) error {
	userID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return fmt.Errorf("could not delete user: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[id]; !exists {
		return fmt.Errorf("user %s: %w", id, storage.ErrNotFound)
	}
	if userID != id {
		return fmt.Errorf("not your account: %w", auth.ErrForbidden)
	}

	delete(s.users, id)
	delete(s.passwords, id)
	return nil
}

func copyUser(u *model.User) *model.User {
	c := *u
	return &c
}

// lessID сравнивает числовые строковые ID ("2" < "10")
func lessID(a, b string) bool {
	ai, errA := strconv.Atoi(a)
	bi, errB := strconv.Atoi(b)
	if errA != nil || errB != nil {
		return a < b
	}
	return ai < bi
}
