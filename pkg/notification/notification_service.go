package notification

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"Smart-Fridge-Manager/domain"
	"Smart-Fridge-Manager/entities"
	"Smart-Fridge-Manager/internal/utils"
	"Smart-Fridge-Manager/pkg/fridge"
	"Smart-Fridge-Manager/pkg/mailer"

	"github.com/google/uuid"
)

const (
	expirationEmailSubject        = "Food Items Expiring Soon - Smart Fridge Manager"
	defaultNotificationDaysBefore = 2
)

type (
	NotificationService interface {
		CheckAndNotify(ctx context.Context) (domain.NotificationRunSummary, error)
	}

	notificationService struct {
		notificationRepository NotificationRepository
		fridgeRepository       fridge.FridgeRepository
		mailer                 mailer.Mailer
	}
)

func NewNotificationService(
	notificationRepository NotificationRepository,
	fridgeRepository fridge.FridgeRepository,
	mailer mailer.Mailer,
) NotificationService {
	return &notificationService{
		notificationRepository: notificationRepository,
		fridgeRepository:       fridgeRepository,
		mailer:                 mailer,
	}
}

// CheckAndNotify runs the full per-user pipeline once: profile query, expiring
// item query, duplicate-send guard, email, log append. A profile query failure
// aborts the entire run; any per-user failure is recorded in the summary and
// the loop continues with the next user.
func (s *notificationService) CheckAndNotify(ctx context.Context) (domain.NotificationRunSummary, error) {
	summary := domain.NotificationRunSummary{StartedAt: time.Now()}

	users, err := s.notificationRepository.ListNotifiableUsers(ctx)
	if err != nil {
		return domain.NotificationRunSummary{}, fmt.Errorf("list notifiable users: %w", err)
	}

	for _, user := range users {
		result := s.notifyUser(ctx, user)
		summary.Results = append(summary.Results, result)
		summary.UsersChecked++

		switch result.Status {
		case domain.NotificationStatusSent:
			summary.EmailsSent++
		case domain.NotificationStatusSkipped:
			summary.Skipped++
		case domain.NotificationStatusFailed:
			summary.Failed++
		}
	}

	summary.FinishedAt = time.Now()
	return summary, nil
}

func (s *notificationService) notifyUser(ctx context.Context, user *entities.User) domain.NotificationUserResult {
	result := domain.NotificationUserResult{
		UserID: user.ID.String(),
		Email:  user.Email,
	}

	// ListNotifiableUsers already filters on this; re-check so an opted-out
	// user can never be emailed through any other path to this function.
	if !user.NotificationEnabled {
		result.Status = domain.NotificationStatusSkipped
		return result
	}

	leadDays := user.NotificationDaysBefore
	if leadDays <= 0 {
		leadDays = defaultNotificationDaysBefore
	}

	items, err := s.fridgeRepository.GetExpiringItems(ctx, user.ID.String(), leadDays)
	if err != nil {
		log.Printf("expiring items query for user %s: %v", user.ID, err)
		result.Status = domain.NotificationStatusFailed
		result.Error = err.Error()
		return result
	}

	if len(items) == 0 {
		result.Status = domain.NotificationStatusNoItems
		return result
	}
	result.ExpiringItems = len(items)

	alreadySent, err := s.notificationRepository.HasLoggedToday(ctx, user.ID.String(), domain.NotificationTypeExpirationWarning)
	if err != nil {
		log.Printf("duplicate-send guard for user %s: %v", user.ID, err)
		result.Status = domain.NotificationStatusFailed
		result.Error = err.Error()
		return result
	}
	if alreadySent {
		result.Status = domain.NotificationStatusSkipped
		return result
	}

	if err := s.sendExpirationEmail(user.Email, items); err != nil {
		// No log row is written, so tomorrow's run retries this user.
		log.Printf("send expiration email to %s: %v", user.Email, err)
		result.Status = domain.NotificationStatusFailed
		result.Error = err.Error()
		return result
	}
	result.Status = domain.NotificationStatusSent

	itemIDs := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		itemIDs = append(itemIDs, item.ID)
	}

	if err := s.notificationRepository.AppendLogEntries(ctx, user.ID.String(), itemIDs, domain.NotificationTypeExpirationWarning); err != nil {
		// The email already went out; there is no compensating rollback.
		log.Printf("append notification log for user %s: %v", user.ID, err)
		result.LogWriteError = err.Error()
	}

	return result
}

func (s *notificationService) sendExpirationEmail(toEmail string, items []*entities.FridgeItem) error {
	if len(items) == 0 {
		return domain.ErrEmptyItemList
	}

	return s.mailer.Send(toEmail, expirationEmailSubject, buildExpirationEmailBody(items))
}

func buildExpirationEmailBody(items []*entities.FridgeItem) string {
	appURL := utils.GetConfig("APP_URL")
	if appURL == "" {
		appURL = "http://localhost:3000"
	}

	var b strings.Builder
	b.WriteString(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">`)
	b.WriteString(`<h2 style="color: #2563eb;">Food Items Expiring Soon!</h2>`)
	b.WriteString(`<p>The following items in your fridge are expiring soon:</p>`)
	b.WriteString(`<div style="background-color: #f3f4f6; padding: 15px; border-radius: 8px; margin: 20px 0;">`)

	for _, item := range items {
		b.WriteString(`<div style="margin: 10px 0; padding: 10px; background: white; border-radius: 5px;">`)
		b.WriteString(fmt.Sprintf("<strong>%s</strong><br>", item.Name))
		b.WriteString(fmt.Sprintf(`<span style="color: #dc2626;">Expires: %s</span>`, item.ExpirationDate.Format("Jan 2, 2006")))
		if item.Quantity > 0 {
			b.WriteString(fmt.Sprintf("<br>Quantity: %g %s", item.Quantity, item.Unit))
		}
		b.WriteString(`</div>`)
	}

	b.WriteString(`</div>`)
	b.WriteString(`<p>Consider using these items soon or check our recipe suggestions to minimize food waste!</p>`)
	b.WriteString(fmt.Sprintf(`<a href="%s/dashboard" style="display: inline-block; background-color: #2563eb; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; margin-top: 20px;">View Dashboard</a>`, appURL))
	b.WriteString(`</div>`)

	return b.String()
}
