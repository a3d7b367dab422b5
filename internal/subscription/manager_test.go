package subscription

import (
	"sync"
	"testing"
	"time"

	"github.com/VitaminP8/bloccit/api/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreManager_Subscribe(t *testing.T) {
	t.Run("Should create a subscription channel", func(t *testing.T) {
		manager := NewScoreManager()
		postID := "123"

		ch, cancel := manager.Subscribe(postID)
		assert.NotNil(t, ch)
		assert.NotNil(t, cancel)

		assert.Equal(t, 1, manager.Subscribers(postID))

		// Вызываем отмену подписки
		cancel()

		assert.Equal(t, 0, manager.Subscribers(postID))
	})

	t.Run("Multiple subscriptions to the same post", func(t *testing.T) {
		manager := NewScoreManager()
		postID := "123"

		// Создаем 3 подписки
		_, cancel1 := manager.Subscribe(postID)
		_, cancel2 := manager.Subscribe(postID)
		_, cancel3 := manager.Subscribe(postID)

		assert.Equal(t, 3, manager.Subscribers(postID))

		// Отменяем вторую подписку
		cancel2()

		assert.Equal(t, 2, manager.Subscribers(postID))

		// Отменяем остальные подписки
		cancel1()
		cancel3()

		assert.Equal(t, 0, manager.Subscribers(postID))
	})

	t.Run("Subscriptions to different posts", func(t *testing.T) {
		manager := NewScoreManager()

		// Создаем подписки на разные посты
		_, cancel1 := manager.Subscribe("post1")
		_, cancel2 := manager.Subscribe("post2")
		_, cancel3 := manager.Subscribe("post3")

		for _, postID := range []string{"post1", "post2", "post3"} {
			assert.Equal(t, 1, manager.Subscribers(postID))
		}

		// Отменяем все подписки
		cancel1()
		cancel2()
		cancel3()

		for _, postID := range []string{"post1", "post2", "post3"} {
			assert.Zero(t, manager.Subscribers(postID))
		}
	})
}

func TestScoreManager_Publish(t *testing.T) {
	t.Run("Should send score to subscribers", func(t *testing.T) {
		manager := NewScoreManager()
		postID := "123"

		ch, cancel := manager.Subscribe(postID)
		defer cancel()

		score := &model.Score{
			PostID:    postID,
			UpVotes:   3,
			DownVotes: 2,
			Points:    1,
		}

		// Публикуем комментарий
		manager.Publish(postID, score)

		// Проверяем, что комментарий получен
		select {
		case receivedScore := <-ch:
			assert.Equal(t, score, receivedScore)
		case <-time.After(time.Second):
			t.Fatal("Timed out waiting for score")
		}
	})

	t.Run("Multiple subscribers should all receive the score", func(t *testing.T) {
		manager := NewScoreManager()
		postID := "123"

		ch1, cancel1 := manager.Subscribe(postID)
		ch2, cancel2 := manager.Subscribe(postID)
		ch3, cancel3 := manager.Subscribe(postID)
		defer cancel1()
		defer cancel2()
		defer cancel3()

		score := &model.Score{
			PostID:    postID,
			UpVotes:   3,
			DownVotes: 2,
			Points:    1,
		}

		manager.Publish(postID, score)

		for i, ch := range []<-chan *model.Score{ch1, ch2, ch3} {
			select {
			case receivedScore := <-ch:
				assert.Equal(t, score, receivedScore, "Subscriber %d did not receive correct score", i+1)
			case <-time.After(time.Second):
				t.Fatalf("Subscriber %d timed out waiting for score", i+1)
			}
		}
	})

	t.Run("Should only send to subscribers of the specific post", func(t *testing.T) {
		manager := NewScoreManager()

		ch1, cancel1 := manager.Subscribe("post1")
		ch2, cancel2 := manager.Subscribe("post2")
		defer cancel1()
		defer cancel2()

		score := &model.Score{
			PostID:    "post1",
			UpVotes:   3,
			DownVotes: 2,
			Points:    1,
		}

		manager.Publish("post1", score)

		select {
		case receivedScore := <-ch1:
			assert.Equal(t, score, receivedScore)
		case <-time.After(time.Second):
			t.Fatal("Subscriber of post1 timed out waiting for score")
		}

		select {
		case <-ch2:
			t.Fatal("Subscriber of post2 should not receive the score")
		case <-time.After(100 * time.Millisecond):
		}
	})

	t.Run("Publishing to a post with no subscribers should not panic", func(t *testing.T) {
		manager := NewScoreManager()

		score := &model.Score{
			PostID:    "post1",
			UpVotes:   3,
			DownVotes: 2,
			Points:    1,
		}

		assert.NotPanics(t, func() {
			manager.Publish("post1", score)
		})
	})
}

func TestScoreManager_SlowSubscriber(t *testing.T) {
	t.Run("Publish does not wait for a subscriber that does not read", func(t *testing.T) {
		manager := NewScoreManager()
		postID := "123"

		_, cancelStuck := manager.Subscribe(postID)
		defer cancelStuck()

		start := time.Now()
		for i := 1; i <= 10; i++ {
			manager.Publish(postID, &model.Score{PostID: postID, UpVotes: i, Points: i})
		}
		assert.Less(t, time.Since(start), 100*time.Millisecond)
	})

	t.Run("Unread score is replaced by the latest one", func(t *testing.T) {
		manager := NewScoreManager()
		postID := "123"

		ch, cancel := manager.Subscribe(postID)
		defer cancel()

		manager.Publish(postID, &model.Score{PostID: postID, UpVotes: 1, Points: 1})
		manager.Publish(postID, &model.Score{PostID: postID, UpVotes: 2, Points: 2})
		manager.Publish(postID, &model.Score{PostID: postID, UpVotes: 2, DownVotes: 1, Points: 1})

		select {
		case score := <-ch:
			assert.Equal(t, 2, score.UpVotes)
			assert.Equal(t, 1, score.DownVotes)
		case <-time.After(time.Second):
			t.Fatal("Timed out waiting for score")
		}

		select {
		case <-ch:
			t.Fatal("Stale scores should have been dropped")
		default:
		}
	})

	t.Run("Other posts are not blocked by a stuck subscriber", func(t *testing.T) {
		manager := NewScoreManager()

		_, cancelStuck := manager.Subscribe("post1")
		defer cancelStuck()
		manager.Publish("post1", &model.Score{PostID: "post1", UpVotes: 1, Points: 1})

		ch, cancel := manager.Subscribe("post2")
		defer cancel()

		done := make(chan struct{})
		go func() {
			manager.Publish("post1", &model.Score{PostID: "post1", UpVotes: 2, Points: 2})
			manager.Publish("post2", &model.Score{PostID: "post2", DownVotes: 1, Points: -1})
			close(done)
		}()

		select {
		case score := <-ch:
			assert.Equal(t, "post2", score.PostID)
		case <-time.After(time.Second):
			t.Fatal("Subscriber of post2 timed out waiting for score")
		}
		<-done
	})
}

func TestScoreManager_Concurrent(t *testing.T) {
	t.Run("Concurrent subscriptions and publications", func(t *testing.T) {
		manager := NewScoreManager()
		postID := "123"

		// Количество подписчиков и публикаций
		numSubscribers := 10
		numPublications := 5

		var wg sync.WaitGroup

		// Создаем подписчиков
		chans := make([]<-chan *model.Score, numSubscribers)
		cancels := make([]func(), numSubscribers)

		// Счетчик полученных комментариев для каждого подписчика
		received := make([]int, numSubscribers)

		var mu sync.Mutex

		for i := 0; i < numSubscribers; i++ {
			wg.Add(1)
			go func(idx int) {
				defer wg.Done()
				ch, cancel := manager.Subscribe(postID)
				chans[idx] = ch
				cancels[idx] = cancel

				// Запускаем горутину для чтения из канала
				go func(idx int, ch <-chan *model.Score) {
					for score := range ch {
						require.Equal(t, postID, score.PostID)
						mu.Lock()
						received[idx]++
						mu.Unlock()
					}
				}(idx, ch)
			}(i)
		}

		// Ожидаем завершения подписок
		wg.Wait()

		// Публикуем обновления счета
		for i := 0; i < numPublications; i++ {
			wg.Add(1)
			go func(idx int) {
				defer wg.Done()
				score := &model.Score{
					PostID:  postID,
					UpVotes: idx + 1,
					Points:  idx + 1,
				}
				manager.Publish(postID, score)
			}(i)
		}

		wg.Wait()

		// Даем время на обработку всех сообщений
		time.Sleep(1000 * time.Millisecond)

		// Отменяем все подписки
		for _, cancel := range cancels {
			cancel()
		}

		// Промежуточные счета могут быть вытеснены более свежими, но хотя бы один доходит до каждого
		mu.Lock()
		for i := 0; i < numSubscribers; i++ {
			assert.GreaterOrEqual(t, received[i], 1, "Subscriber %d received nothing", i)
			assert.LessOrEqual(t, received[i], numPublications, "Subscriber %d received extra scores", i)
		}
		mu.Unlock()
	})

	t.Run("Concurrent subscribes and unsubscribes", func(t *testing.T) {
		manager := NewScoreManager()
		postID := "123"

		var wg sync.WaitGroup
		numOperations := 100

		for i := 0; i < numOperations; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()

				// Подписываемся
				ch, cancel := manager.Subscribe(postID)

				// Небольшая задержка
				time.Sleep(5 * time.Millisecond)

				// Отписываемся
				cancel()

				// Проверяем, что канал закрыт
				_, ok := <-ch
				assert.False(t, ok, "Channel should be closed after cancel")
			}()
		}

		wg.Wait()

		// Проверяем, что все подписки были корректно удалены
		assert.Zero(t, manager.Subscribers(postID))
	})
}

func TestScoreManager_Subscribers(t *testing.T) {
	manager := NewScoreManager()

	_, cancel1 := manager.Subscribe("1")
	_, cancel2 := manager.Subscribe("1")
	assert.Equal(t, 2, manager.Subscribers("1"))
	assert.Equal(t, 0, manager.Subscribers("2"))

	cancel1()
	// повторная отписка не должна паниковать (канал уже закрыт)
	assert.NotPanics(t, cancel1)
	assert.Equal(t, 1, manager.Subscribers("1"))

	cancel2()
	assert.Equal(t, 0, manager.Subscribers("1"))
}
