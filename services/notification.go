package services

import (
	"context"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Notification is a push notification delivered to the companion app.
type Notification struct {
	ID             string `json:"id,omitempty"`
	Provider       string `json:"provider,omitempty"`
	TargetName     string `json:"targetName"`
	MessagePayload string `json:"messagePayload"`
	Read           bool   `json:"read,omitempty"`
}

// NotificationService manages the skill's push notifications.
type NotificationService struct {
	*Client
}

// NewNotificationService creates a client for the configured notification
// service.
func NewNotificationService() (*NotificationService, error) {
	c, err := NewClient("notification")
	if err != nil {
		return nil, err
	}
	return &NotificationService{Client: c}, nil
}

// List returns the skill's pending notifications.
func (s *NotificationService) List(ctx context.Context) ([]Notification, error) {
	data, err := s.Get(ctx, "/notification", nil)
	if err != nil {
		return nil, err
	}
	var notifications []Notification
	for _, item := range gjson.GetBytes(data, "notifications").Array() {
		notifications = append(notifications, Notification{
			ID:             item.Get("id").String(),
			Provider:       item.Get("provider").String(),
			TargetName:     item.Get("targetName").String(),
			MessagePayload: item.Get("messagePayload").String(),
			Read:           item.Get("read").Bool(),
		})
	}
	return notifications, nil
}

// Add creates a notification and returns its id. The provider defaults to
// the skill's service name.
func (s *NotificationService) Add(ctx context.Context, n Notification) (string, error) {
	body, err := json.Marshal(n)
	if err != nil {
		return "", ErrRequestFailed.Err(err)
	}
	if n.Provider == "" {
		if body, err = sjson.SetBytes(body, "provider", s.Name); err != nil {
			return "", ErrRequestFailed.Err(err)
		}
	}
	data, err := s.Post(ctx, "/notification", body)
	if err != nil {
		return "", err
	}
	return gjson.GetBytes(data, "id").String(), nil
}

// MarkRead marks a notification as read.
func (s *NotificationService) MarkRead(ctx context.Context, id string) error {
	body, err := sjson.SetBytes([]byte(`{}`), "read", true)
	if err != nil {
		return ErrRequestFailed.Err(err)
	}
	_, err = s.Post(ctx, "/notification/"+id, body)
	return err
}

// Delete removes a notification.
func (s *NotificationService) Delete(ctx context.Context, id string) error {
	_, err := s.Client.Delete(ctx, "/notification/"+id)
	return err
}
