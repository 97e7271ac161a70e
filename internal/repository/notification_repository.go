package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/appointment-service/internal/domain"
)

// NotificationRepository stores in-app notifications in Redis: one JSON
// value per notification plus a per-user list of ids, newest first.
type NotificationRepository interface {
	Create(ctx context.Context, notification *domain.Notification) error
	ListByUser(ctx context.Context, userID int64, limit int) ([]domain.Notification, error)
	GetByID(ctx context.Context, id string) (*domain.Notification, error)
	MarkRead(ctx context.Context, id string) (*domain.Notification, error)
}

type notificationRepository struct {
	client *redis.Client
}

// NewNotificationRepository instantiates repository.
func NewNotificationRepository(client *redis.Client) NotificationRepository {
	return &notificationRepository{client: client}
}

func notificationKey(id string) string {
	return "notification:" + id
}

func userNotificationsKey(userID int64) string {
	return fmt.Sprintf("notifications:user:%d", userID)
}

func (r *notificationRepository) Create(ctx context.Context, notification *domain.Notification) error {
	if notification.ID == "" {
		notification.ID = uuid.NewString()
	}
	payload, err := json.Marshal(notification)
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, notificationKey(notification.ID), payload, 0)
	pipe.LPush(ctx, userNotificationsKey(notification.UserID), notification.ID)
	_, err = pipe.Exec(ctx)
	return err
}

func (r *notificationRepository) ListByUser(ctx context.Context, userID int64, limit int) ([]domain.Notification, error) {
	if limit <= 0 {
		limit = 20
	}
	ids, err := r.client.LRange(ctx, userNotificationsKey(userID), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	result := make([]domain.Notification, 0, len(ids))
	for _, id := range ids {
		notification, err := r.GetByID(ctx, id)
		if err == redis.Nil {
			continue
		}
		if err != nil {
			return nil, err
		}
		result = append(result, *notification)
	}
	return result, nil
}

func (r *notificationRepository) GetByID(ctx context.Context, id string) (*domain.Notification, error) {
	raw, err := r.client.Get(ctx, notificationKey(id)).Bytes()
	if err != nil {
		return nil, err
	}
	var notification domain.Notification
	if err := json.Unmarshal(raw, &notification); err != nil {
		return nil, err
	}
	return &notification, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, id string) (*domain.Notification, error) {
	notification, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	notification.Read = true

	payload, err := json.Marshal(notification)
	if err != nil {
		return nil, err
	}
	if err := r.client.Set(ctx, notificationKey(id), payload, 0).Err(); err != nil {
		return nil, err
	}
	return notification, nil
}
