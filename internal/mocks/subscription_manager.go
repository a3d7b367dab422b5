package mocks

import (
	"sync"

	"github.com/VitaminP8/bloccit/api/model"
)

// MockSubscriptionManager запоминает все опубликованные обновления счета
type MockSubscriptionManager struct {
	mu            sync.Mutex
	subs          map[string][]chan *model.Score // postID -> список каналов подписчиков
	notifications map[string][]*model.Score      // Для отслеживания в тестах
}

func NewMockSubscriptionManager() *MockSubscriptionManager {
	return &MockSubscriptionManager{
		subs:          make(map[string][]chan *model.Score),
		notifications: make(map[string][]*model.Score),
	}
}

func (m *MockSubscriptionManager) Subscribe(postID string) (<-chan *model.Score, func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ch := make(chan *model.Score, 16)
	m.subs[postID] = append(m.subs[postID], ch)

	cancel := func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		subscribers := m.subs[postID]
		for i, sub := range subscribers {
			if sub == ch {
				m.subs[postID] = append(subscribers[:i], subscribers[i+1:]...)
				close(ch)
				break
			}
		}
	}

	return ch, cancel
}

func (m *MockSubscriptionManager) Publish(postID string, score *model.Score) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, sub := range m.subs[postID] {
		select {
		case sub <- score:
		default:
		}
	}

	m.notifications[postID] = append(m.notifications[postID], score)
}

// GetNotificationsForPost - вспомогательный метод для тестирования,
// возвращает все уведомления для конкретного поста
func (m *MockSubscriptionManager) GetNotificationsForPost(postID string) []*model.Score {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.notifications[postID]
}
