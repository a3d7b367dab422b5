package subscription

import (
	"sync"

	"github.com/VitaminP8/bloccit/api/model"
)

// ScoreManager рассылает обновленный счет поста всем подписчикам этого поста
type ScoreManager struct {
	mu   sync.Mutex
	subs map[string][]chan *model.Score // postID -> список каналов подписчиков
}

func NewScoreManager() *ScoreManager {
	return &ScoreManager{
		subs: make(map[string][]chan *model.Score),
	}
}

func (m *ScoreManager) Subscribe(postID string) (<-chan *model.Score, func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ch := make(chan *model.Score, 1) // Буфер 1, чтобы не блокировался писатель

	m.subs[postID] = append(m.subs[postID], ch)

	// функция для отписки, повторный вызов ничего не делает
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

func (m *ScoreManager) Publish(postID string, score *model.Score) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Счет: важно только последнее значение. Если подписчик не успел забрать
	// предыдущий, вытесняем его из буфера, Publish никогда не ждет читателя
	for _, sub := range m.subs[postID] {
		select {
		case sub <- score:
			continue
		default:
		}

		select {
		case <-sub:
		default:
		}

		select {
		case sub <- score:
		default:
		}
	}
}

// Subscribers возвращает количество активных подписок на пост
func (m *ScoreManager) Subscribers(postID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.subs[postID])
}
