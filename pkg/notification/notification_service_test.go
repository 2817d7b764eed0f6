package notification

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"Smart-Fridge-Manager/domain"
	"Smart-Fridge-Manager/entities"
	"Smart-Fridge-Manager/pkg/fridge"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
)

type mockNotificationRepository struct {
	users        []*entities.User
	usersErr     error
	loggedToday  map[string]bool
	guardErr     error
	appendErr    error
	appendedFor  []string
	appendedIDs  [][]uuid.UUID
	appendedType string
}

func (m *mockNotificationRepository) ListNotifiableUsers(ctx context.Context) ([]*entities.User, error) {
	if m.usersErr != nil {
		return nil, m.usersErr
	}
	return m.users, nil
}

func (m *mockNotificationRepository) HasLoggedToday(ctx context.Context, userID string, notificationType string) (bool, error) {
	if m.guardErr != nil {
		return false, m.guardErr
	}
	return m.loggedToday[userID], nil
}

func (m *mockNotificationRepository) AppendLogEntries(ctx context.Context, userID string, itemIDs []uuid.UUID, notificationType string) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.appendedFor = append(m.appendedFor, userID)
	m.appendedIDs = append(m.appendedIDs, itemIDs)
	m.appendedType = notificationType
	return nil
}

type mockFridgeRepository struct {
	fridge.FridgeRepository

	itemsByUser map[string][]*entities.FridgeItem
	errByUser   map[string]error
}

func (m *mockFridgeRepository) GetExpiringItems(ctx context.Context, userID string, thresholdDays int) ([]*entities.FridgeItem, error) {
	if err := m.errByUser[userID]; err != nil {
		return nil, err
	}
	return m.itemsByUser[userID], nil
}

type mockMailer struct {
	sentTo   []string
	subjects []string
	bodies   []string
	failFor  map[string]error
}

func (m *mockMailer) Send(toEmail, subject, body string) error {
	if err := m.failFor[toEmail]; err != nil {
		return err
	}
	m.sentTo = append(m.sentTo, toEmail)
	m.subjects = append(m.subjects, subject)
	m.bodies = append(m.bodies, body)
	return nil
}

func testUser(email string, leadDays int) *entities.User {
	return &entities.User{
		ID:                     uuid.New(),
		Email:                  email,
		NotificationEnabled:    true,
		NotificationDaysBefore: leadDays,
	}
}

func expiringItem(name string, daysFromNow int) *entities.FridgeItem {
	return &entities.FridgeItem{
		ID:             uuid.New(),
		Name:           name,
		Quantity:       1,
		Unit:           "pcs",
		ExpirationDate: time.Now().AddDate(0, 0, daysFromNow),
	}
}

func TestCheckAndNotify_SendsAndLogsOnce(t *testing.T) {
	user := testUser("alice@example.com", 2)
	items := []*entities.FridgeItem{expiringItem("Milk", 1), expiringItem("Yogurt", 2)}

	notifRepo := &mockNotificationRepository{
		users:       []*entities.User{user},
		loggedToday: map[string]bool{},
	}
	fridgeRepo := &mockFridgeRepository{
		itemsByUser: map[string][]*entities.FridgeItem{user.ID.String(): items},
	}
	sender := &mockMailer{}

	service := NewNotificationService(notifRepo, fridgeRepo, sender)
	summary, err := service.CheckAndNotify(context.Background())
	if err != nil {
		t.Fatalf("CheckAndNotify returned error: %v", err)
	}

	want := domain.NotificationRunSummary{
		UsersChecked: 1,
		EmailsSent:   1,
		Results: []domain.NotificationUserResult{
			{
				UserID:        user.ID.String(),
				Email:         user.Email,
				Status:        domain.NotificationStatusSent,
				ExpiringItems: 2,
			},
		},
	}
	if diff := cmp.Diff(want, summary, cmpopts.IgnoreFields(domain.NotificationRunSummary{}, "StartedAt", "FinishedAt")); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}

	if got := len(sender.sentTo); got != 1 {
		t.Fatalf("expected exactly one email, got %d", got)
	}
	if sender.sentTo[0] != "alice@example.com" {
		t.Errorf("email sent to %q, want alice@example.com", sender.sentTo[0])
	}
	if len(notifRepo.appendedFor) != 1 || notifRepo.appendedFor[0] != user.ID.String() {
		t.Errorf("log appended for %v, want exactly one entry for the notified user", notifRepo.appendedFor)
	}
	if len(notifRepo.appendedIDs[0]) != 2 {
		t.Errorf("log entries cover %d items, want 2", len(notifRepo.appendedIDs[0]))
	}
	if notifRepo.appendedType != domain.NotificationTypeExpirationWarning {
		t.Errorf("log type = %q, want %q", notifRepo.appendedType, domain.NotificationTypeExpirationWarning)
	}
}

func TestCheckAndNotify_SkipsWhenAlreadyLoggedToday(t *testing.T) {
	user := testUser("bob@example.com", 2)

	notifRepo := &mockNotificationRepository{
		users:       []*entities.User{user},
		loggedToday: map[string]bool{user.ID.String(): true},
	}
	fridgeRepo := &mockFridgeRepository{
		itemsByUser: map[string][]*entities.FridgeItem{
			user.ID.String(): {expiringItem("Cheese", 1)},
		},
	}
	sender := &mockMailer{}

	service := NewNotificationService(notifRepo, fridgeRepo, sender)
	summary, err := service.CheckAndNotify(context.Background())
	if err != nil {
		t.Fatalf("CheckAndNotify returned error: %v", err)
	}

	if summary.Skipped != 1 || summary.EmailsSent != 0 {
		t.Errorf("skipped=%d sent=%d, want skipped=1 sent=0", summary.Skipped, summary.EmailsSent)
	}
	if len(sender.sentTo) != 0 {
		t.Errorf("email sent despite same-day log entry")
	}
	if len(notifRepo.appendedFor) != 0 {
		t.Errorf("log appended despite skip")
	}
}

func TestCheckAndNotify_DisabledUserIsNeverEmailed(t *testing.T) {
	user := testUser("optout@example.com", 2)
	user.NotificationEnabled = false

	notifRepo := &mockNotificationRepository{
		users:       []*entities.User{user},
		loggedToday: map[string]bool{},
	}
	fridgeRepo := &mockFridgeRepository{
		itemsByUser: map[string][]*entities.FridgeItem{
			user.ID.String(): {expiringItem("Milk", 1)},
		},
	}
	sender := &mockMailer{}

	service := NewNotificationService(notifRepo, fridgeRepo, sender)
	summary, err := service.CheckAndNotify(context.Background())
	if err != nil {
		t.Fatalf("CheckAndNotify returned error: %v", err)
	}

	if len(sender.sentTo) != 0 {
		t.Errorf("opted-out user was emailed: %v", sender.sentTo)
	}
	if len(notifRepo.appendedFor) != 0 {
		t.Errorf("log appended for opted-out user")
	}
	if summary.Results[0].Status != domain.NotificationStatusSkipped {
		t.Errorf("status = %q, want %q", summary.Results[0].Status, domain.NotificationStatusSkipped)
	}
}

func TestCheckAndNotify_NoItemsSendsNothing(t *testing.T) {
	user := testUser("carol@example.com", 2)

	notifRepo := &mockNotificationRepository{
		users:       []*entities.User{user},
		loggedToday: map[string]bool{},
	}
	fridgeRepo := &mockFridgeRepository{itemsByUser: map[string][]*entities.FridgeItem{}}
	sender := &mockMailer{}

	service := NewNotificationService(notifRepo, fridgeRepo, sender)
	summary, err := service.CheckAndNotify(context.Background())
	if err != nil {
		t.Fatalf("CheckAndNotify returned error: %v", err)
	}

	if len(sender.sentTo) != 0 {
		t.Errorf("email sent to user with no expiring items")
	}
	if summary.Results[0].Status != domain.NotificationStatusNoItems {
		t.Errorf("status = %q, want %q", summary.Results[0].Status, domain.NotificationStatusNoItems)
	}
}

func TestCheckAndNotify_SendFailureWritesNoLog(t *testing.T) {
	user := testUser("dave@example.com", 2)

	notifRepo := &mockNotificationRepository{
		users:       []*entities.User{user},
		loggedToday: map[string]bool{},
	}
	fridgeRepo := &mockFridgeRepository{
		itemsByUser: map[string][]*entities.FridgeItem{
			user.ID.String(): {expiringItem("Spinach", 0)},
		},
	}
	sender := &mockMailer{
		failFor: map[string]error{"dave@example.com": errors.New("smtp: connection refused")},
	}

	service := NewNotificationService(notifRepo, fridgeRepo, sender)
	summary, err := service.CheckAndNotify(context.Background())
	if err != nil {
		t.Fatalf("CheckAndNotify returned error: %v", err)
	}

	if summary.Failed != 1 {
		t.Errorf("failed=%d, want 1", summary.Failed)
	}
	// No log row means the next run retries this user.
	if len(notifRepo.appendedFor) != 0 {
		t.Errorf("log appended after a failed send")
	}
}

func TestCheckAndNotify_LogFailureStillCountsAsSent(t *testing.T) {
	user := testUser("erin@example.com", 2)

	notifRepo := &mockNotificationRepository{
		users:       []*entities.User{user},
		loggedToday: map[string]bool{},
		appendErr:   errors.New("pq: connection reset"),
	}
	fridgeRepo := &mockFridgeRepository{
		itemsByUser: map[string][]*entities.FridgeItem{
			user.ID.String(): {expiringItem("Butter", 1)},
		},
	}
	sender := &mockMailer{}

	service := NewNotificationService(notifRepo, fridgeRepo, sender)
	summary, err := service.CheckAndNotify(context.Background())
	if err != nil {
		t.Fatalf("CheckAndNotify returned error: %v", err)
	}

	if summary.EmailsSent != 1 {
		t.Errorf("sent=%d, want 1: the email went out even though the log write failed", summary.EmailsSent)
	}
	if summary.Results[0].LogWriteError == "" {
		t.Errorf("log write failure not surfaced in the run summary")
	}
	if len(sender.sentTo) != 1 {
		t.Errorf("expected the email to be delivered before the log write")
	}
}

func TestCheckAndNotify_UserQueryFailureAbortsRun(t *testing.T) {
	notifRepo := &mockNotificationRepository{usersErr: errors.New("pq: relation does not exist")}
	service := NewNotificationService(notifRepo, &mockFridgeRepository{}, &mockMailer{})

	_, err := service.CheckAndNotify(context.Background())
	if err == nil {
		t.Fatal("expected error when the user query fails")
	}
}

func TestCheckAndNotify_PerUserFailureIsIsolated(t *testing.T) {
	failing := testUser("flaky@example.com", 2)
	healthy := testUser("grace@example.com", 2)

	notifRepo := &mockNotificationRepository{
		users:       []*entities.User{failing, healthy},
		loggedToday: map[string]bool{},
	}
	fridgeRepo := &mockFridgeRepository{
		itemsByUser: map[string][]*entities.FridgeItem{
			healthy.ID.String(): {expiringItem("Ham", 1)},
		},
		errByUser: map[string]error{
			failing.ID.String(): errors.New("pq: query canceled"),
		},
	}
	sender := &mockMailer{}

	service := NewNotificationService(notifRepo, fridgeRepo, sender)
	summary, err := service.CheckAndNotify(context.Background())
	if err != nil {
		t.Fatalf("CheckAndNotify returned error: %v", err)
	}

	if summary.UsersChecked != 2 || summary.Failed != 1 || summary.EmailsSent != 1 {
		t.Errorf("checked=%d failed=%d sent=%d, want 2/1/1",
			summary.UsersChecked, summary.Failed, summary.EmailsSent)
	}
	if len(sender.sentTo) != 1 || sender.sentTo[0] != "grace@example.com" {
		t.Errorf("healthy user not notified after another user's failure: %v", sender.sentTo)
	}
}

func TestCheckAndNotify_DefaultLeadTimeApplied(t *testing.T) {
	user := testUser("henry@example.com", 0)

	notifRepo := &mockNotificationRepository{
		users:       []*entities.User{user},
		loggedToday: map[string]bool{},
	}

	var gotThreshold int
	fridgeRepo := &thresholdRecordingFridgeRepository{threshold: &gotThreshold}
	sender := &mockMailer{}

	service := NewNotificationService(notifRepo, fridgeRepo, sender)
	if _, err := service.CheckAndNotify(context.Background()); err != nil {
		t.Fatalf("CheckAndNotify returned error: %v", err)
	}

	if gotThreshold != defaultNotificationDaysBefore {
		t.Errorf("threshold = %d, want default %d", gotThreshold, defaultNotificationDaysBefore)
	}
}

type thresholdRecordingFridgeRepository struct {
	fridge.FridgeRepository
	threshold *int
}

func (r *thresholdRecordingFridgeRepository) GetExpiringItems(ctx context.Context, userID string, thresholdDays int) ([]*entities.FridgeItem, error) {
	*r.threshold = thresholdDays
	return nil, nil
}

func TestBuildExpirationEmailBody(t *testing.T) {
	items := []*entities.FridgeItem{
		expiringItem("Milk", 1),
		expiringItem("Eggs", 2),
	}

	body := buildExpirationEmailBody(items)

	for _, want := range []string{"Milk", "Eggs", "Food Items Expiring Soon!", "/dashboard"} {
		if !strings.Contains(body, want) {
			t.Errorf("email body missing %q", want)
		}
	}
	if !strings.Contains(body, items[0].ExpirationDate.Format("Jan 2, 2006")) {
		t.Errorf("email body missing formatted expiration date")
	}
}

func TestSendExpirationEmail_RejectsEmptyItemList(t *testing.T) {
	service := &notificationService{mailer: &mockMailer{}}

	err := service.sendExpirationEmail("someone@example.com", nil)
	if !errors.Is(err, domain.ErrEmptyItemList) {
		t.Errorf("err = %v, want ErrEmptyItemList", err)
	}
}
