package service

import "context"

// PushNotification is a push message. Exactly one of Token or Topic must be
// set; user-scoped topics let the worker notify a user without a device
// registry.
type PushNotification struct {
	Token string
	Topic string
	Title string
	Body  string
	Data  map[string]string
}

// NotificationService delivers push notifications to user devices.
type NotificationService interface {
	SendPush(ctx context.Context, notification *PushNotification) error
}
