package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// -----------------------------------------------------------------------------
// Notification Methods
// -----------------------------------------------------------------------------

// NotificationCreateInput holds the fields for a new notification. The
// payload references are optional.
type NotificationCreateInput struct {
	UserID        uuid.UUID
	Type          string
	Title         string
	Message       string
	JobID         *uuid.UUID
	ApplicationID *uuid.UUID
	EmployerID    *uuid.UUID
}

// CreateNotification persists a new unread notification and returns its ID.
func (db *DB) CreateNotification(ctx context.Context, input *NotificationCreateInput) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO notifications (user_id, type, title, message, is_read,
		                            created_at, job_id, application_id, employer_id)
		 VALUES ($1, $2, $3, $4, FALSE, NOW(), $5, $6, $7)
		 RETURNING id`,
		input.UserID, input.Type, input.Title, input.Message,
		input.JobID, input.ApplicationID, input.EmployerID,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create notification: %w", err)
	}
	return id, nil
}

// GetUserNotifications returns a user's notifications, newest first.
func (db *DB) GetUserNotifications(ctx context.Context, userID uuid.UUID) ([]Notification, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, type, title, message, is_read, created_at,
		        job_id, application_id, employer_id
		 FROM notifications WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications: %w", err)
	}
	defer rows.Close()

	notifications := []Notification{}
	for rows.Next() {
		var n Notification
		err := rows.Scan(&n.ID, &n.UserID, &n.Type, &n.Title, &n.Message, &n.IsRead,
			&n.CreatedAt, &n.JobID, &n.ApplicationID, &n.EmployerID)
		if err != nil {
			return nil, fmt.Errorf("failed to get notifications: %w", err)
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

// MarkNotificationRead flags one of the user's notifications as read.
// Scoped by user so nobody can touch another account's notifications.
func (db *DB) MarkNotificationRead(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := db.pool.Exec(ctx,
		`UPDATE notifications SET is_read = TRUE WHERE id = $1 AND user_id = $2`,
		id, userID); err != nil {
		return fmt.Errorf("failed to mark notification as read: %w", err)
	}
	return nil
}

// DeleteNotification removes one of the user's notifications.
func (db *DB) DeleteNotification(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := db.pool.Exec(ctx,
		`DELETE FROM notifications WHERE id = $1 AND user_id = $2`,
		id, userID); err != nil {
		return fmt.Errorf("failed to delete notification: %w", err)
	}
	return nil
}
