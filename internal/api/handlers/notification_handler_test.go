package handlers

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"Smart-Fridge-Manager/domain"
	"Smart-Fridge-Manager/internal/middleware"
	jwtpkg "Smart-Fridge-Manager/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	jwtlib "github.com/golang-jwt/jwt/v4"
)

type mockNotificationService struct {
	summary domain.NotificationRunSummary
	err     error
}

func (m *mockNotificationService) CheckAndNotify(ctx context.Context) (domain.NotificationRunSummary, error) {
	return m.summary, m.err
}

type rejectingJWTService struct{}

func (s *rejectingJWTService) GenerateTokenUser(userID string, role string) string { return "" }

func (s *rejectingJWTService) ValidateTokenUser(token string) (*jwtlib.Token, error) {
	return nil, domain.ErrTokenInvalid
}

func (s *rejectingJWTService) GetUserIDByToken(token string) (string, string, error) {
	return "", "", domain.ErrTokenInvalid
}

var _ jwtpkg.JWTService = (*rejectingJWTService)(nil)

func TestTriggerNotifications_ResponseOmitsUserEmails(t *testing.T) {
	service := &mockNotificationService{
		summary: domain.NotificationRunSummary{
			UsersChecked: 2,
			EmailsSent:   1,
			Skipped:      1,
			Results: []domain.NotificationUserResult{
				{UserID: "3f2c1a9e-0000-0000-0000-000000000001", Email: "alice@example.com", Status: domain.NotificationStatusSent},
				{UserID: "3f2c1a9e-0000-0000-0000-000000000002", Email: "bob@example.com", Status: domain.NotificationStatusSkipped},
			},
		},
	}

	app := fiber.New()
	handler := NewNotificationHandler(service)
	app.Post("/api/v1/notifications/trigger", handler.TriggerNotifications)

	req := httptest.NewRequest(fiber.MethodPost, "/api/v1/notifications/trigger", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusOK)
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	body := string(bodyBytes)

	for _, leaked := range []string{"alice@example.com", "bob@example.com", "3f2c1a9e", "results"} {
		if strings.Contains(body, leaked) {
			t.Errorf("response leaks %q: %s", leaked, body)
		}
	}
	for _, want := range []string{"users_checked", "emails_sent", "skipped", "failed"} {
		if !strings.Contains(body, want) {
			t.Errorf("response missing %q: %s", want, body)
		}
	}
}

func TestTriggerNotifications_RequiresAuthentication(t *testing.T) {
	app := fiber.New()
	handler := NewNotificationHandler(&mockNotificationService{})
	mw := middleware.NewMiddleware()
	app.Post("/api/v1/notifications/trigger", mw.AuthMiddleware(&rejectingJWTService{}), handler.TriggerNotifications)

	req := httptest.NewRequest(fiber.MethodPost, "/api/v1/notifications/trigger", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status without token = %d, want %d", resp.StatusCode, fiber.StatusUnauthorized)
	}

	req = httptest.NewRequest(fiber.MethodPost, "/api/v1/notifications/trigger", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status with invalid token = %d, want %d", resp.StatusCode, fiber.StatusUnauthorized)
	}
}
