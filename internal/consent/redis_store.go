package consent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/loadmatrix/driverd/internal/models"
)

const consentKeyPrefix = "driver:consent:"

// RedisStore хранит согласия в Redis. Используется в киоск-развертываниях,
// где несколько экземпляров агента делят одно состояние.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore создает хранилище согласий поверх клиента Redis
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func consentKey(userID string) string {
	return consentKeyPrefix + userID
}

// Get читает запись пользователя; redis.Nil не считается ошибкой
func (s *RedisStore) Get(ctx context.Context, userID string) (*models.ConsentRecord, error) {
	data, err := s.client.Get(ctx, consentKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("consent: could not read record from redis: %w", err)
	}

	var record models.ConsentRecord
	if err := json.Unmarshal(data, &record); err != nil {
		// Битое значение равносильно отсутствию записи
		return nil, nil
	}
	return &record, nil
}

// Set записывает запись без TTL: срок жизни - политика шлюза
func (s *RedisStore) Set(ctx context.Context, record *models.ConsentRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("consent: could not marshal record: %w", err)
	}
	if err := s.client.Set(ctx, consentKey(record.UserID), data, 0).Err(); err != nil {
		return fmt.Errorf("consent: could not write record to redis: %w", err)
	}
	return nil
}

// Delete удаляет запись пользователя
func (s *RedisStore) Delete(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, consentKey(userID)).Err(); err != nil {
		return fmt.Errorf("consent: could not delete record from redis: %w", err)
	}
	return nil
}
