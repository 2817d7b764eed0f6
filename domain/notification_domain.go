package domain

import (
	"errors"
	"time"
)

const (
	NotificationTypeExpirationWarning = "expiration_warning"

	NotificationStatusSent    = "sent"
	NotificationStatusSkipped = "skipped"
	NotificationStatusNoItems = "no_items"
	NotificationStatusFailed  = "failed"
)

var (
	MessageSuccessTriggerNotifications = "notification run completed"
	MessageFailedTriggerNotifications  = "notification run failed"

	ErrEmptyItemList = errors.New("notification requires at least one expiring item")
)

type (
	// NotificationUserResult captures the outcome of one user's pipeline in a
	// run, so callers assert on outcomes instead of captured log output.
	NotificationUserResult struct {
		UserID        string `json:"user_id"`
		Email         string `json:"email"`
		Status        string `json:"status"`
		ExpiringItems int    `json:"expiring_items"`
		Error         string `json:"error,omitempty"`
		LogWriteError string `json:"log_write_error,omitempty"`
	}

	NotificationRunSummary struct {
		StartedAt    time.Time                `json:"started_at"`
		FinishedAt   time.Time                `json:"finished_at"`
		UsersChecked int                      `json:"users_checked"`
		EmailsSent   int                      `json:"emails_sent"`
		Skipped      int                      `json:"skipped"`
		Failed       int                      `json:"failed"`
		Results      []NotificationUserResult `json:"results"`
	}

	// NotificationTriggerResponse is the API-facing view of a run. Per-user
	// results stay internal; they carry user IDs and email addresses.
	NotificationTriggerResponse struct {
		StartedAt    time.Time `json:"started_at"`
		FinishedAt   time.Time `json:"finished_at"`
		UsersChecked int       `json:"users_checked"`
		EmailsSent   int       `json:"emails_sent"`
		Skipped      int       `json:"skipped"`
		Failed       int       `json:"failed"`
	}
)

func ToNotificationTriggerResponse(summary NotificationRunSummary) NotificationTriggerResponse {
	return NotificationTriggerResponse{
		StartedAt:    summary.StartedAt,
		FinishedAt:   summary.FinishedAt,
		UsersChecked: summary.UsersChecked,
		EmailsSent:   summary.EmailsSent,
		Skipped:      summary.Skipped,
		Failed:       summary.Failed,
	}
}
