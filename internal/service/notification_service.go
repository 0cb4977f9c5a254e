package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/staff-task-portal/internal/config"
	"github.com/spec-kit/staff-task-portal/internal/events"
)

// NotificationService consumes domain events and serves the recent-updates
// feed. Delivery channels are stubs; the feed is fixed sample data with no
// backing store.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// Notification is one entry of the recent-updates feed.
type Notification struct {
	ID      int    `json:"id"`
	Type    string `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Time    string `json:"time"`
	Unread  bool   `json:"unread"`
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventLoginSucceeded, n.handleLoginSucceeded)
	n.dispatcher.Subscribe(events.EventLoginFailed, n.handleLoginFailed)
	n.dispatcher.Subscribe(events.EventAccountLocked, n.handleAccountLocked)
	n.dispatcher.Subscribe(events.EventTaskStatusChanged, n.handleTaskStatusChanged)
}

// RecentUpdates returns the fixed notification feed.
func (n *NotificationService) RecentUpdates() []Notification {
	return []Notification{
		{
			ID:      1,
			Type:    "assignment",
			Title:   "New Task Assigned",
			Message: `HOD assigned "Departmental Audit Report" to you.`,
			Time:    "2 mins ago",
			Unread:  true,
		},
		{
			ID:      2,
			Type:    "deadline",
			Title:   "Deadline Approaching",
			Message: "Upload Attendance task is due in 2 hours.",
			Time:    "1 hour ago",
			Unread:  true,
		},
		{
			ID:      3,
			Type:    "update",
			Title:   "Status Updated",
			Message: "Your Mentee Meeting record has been approved.",
			Time:    "4 hours ago",
			Unread:  false,
		},
		{
			ID:      4,
			Type:    "info",
			Title:   "System Maintenance",
			Message: "The portal will be down for maintenance at 11:00 PM.",
			Time:    "1 day ago",
			Unread:  false,
		},
	}
}

func (n *NotificationService) handleLoginSucceeded(ctx context.Context, event events.Event) error {
	n.logger.Info("LoginSucceeded", zap.String("staff_id", event.StaffID))
	return nil
}

func (n *NotificationService) handleLoginFailed(ctx context.Context, event events.Event) error {
	n.logger.Info("LoginFailed", zap.String("staff_id", event.StaffID), zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleAccountLocked(ctx context.Context, event events.Event) error {
	n.logger.Warn("AccountLocked", zap.String("staff_id", event.StaffID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleTaskStatusChanged(ctx context.Context, event events.Event) error {
	n.logger.Info("TaskStatusChanged", zap.String("task_id", event.TaskID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("event_type", string(event.Type)))
}
