package user

import (
	"context"
	"errors"
	"testing"

	"Smart-Fridge-Manager/domain"
	"Smart-Fridge-Manager/entities"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type mockUserRepository struct {
	byEmail map[string]*entities.User
	byID    map[string]*entities.User
	created []*entities.User
	updated []*entities.User
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{
		byEmail: map[string]*entities.User{},
		byID:    map[string]*entities.User{},
	}
}

func (m *mockUserRepository) add(user *entities.User) {
	m.byEmail[user.Email] = user
	m.byID[user.ID.String()] = user
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user *entities.User) error {
	m.created = append(m.created, user)
	m.add(user)
	return nil
}

func (m *mockUserRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	if user, ok := m.byEmail[email]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	if user, ok := m.byID[id]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	m.updated = append(m.updated, user)
	return nil
}

type mockJWTService struct{}

func (m *mockJWTService) GenerateTokenUser(userID string, role string) string {
	return "token-" + userID
}

func (m *mockJWTService) ValidateTokenUser(token string) (*jwt.Token, error) { return nil, nil }

func (m *mockJWTService) GetUserIDByToken(token string) (string, string, error) {
	return "", "", nil
}

func TestRegister_DefaultsNotificationPreferences(t *testing.T) {
	repo := newMockUserRepository()
	service := NewUserService(repo, &mockJWTService{})

	resp, err := service.Register(context.Background(), domain.RegisterRequest{
		Email:    "alice@example.com",
		Password: "supersecret",
		FullName: "Alice",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	if resp.Email != "alice@example.com" {
		t.Errorf("email = %q", resp.Email)
	}
	if len(repo.created) != 1 {
		t.Fatalf("created %d users, want 1", len(repo.created))
	}

	created := repo.created[0]
	if !created.NotificationEnabled {
		t.Errorf("new users should have notifications enabled by default")
	}
	if created.NotificationDaysBefore != defaultNotificationDaysBefore {
		t.Errorf("lead time = %d, want default %d", created.NotificationDaysBefore, defaultNotificationDaysBefore)
	}
	if created.Password == "supersecret" {
		t.Errorf("password stored in plain text")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newMockUserRepository()
	repo.add(&entities.User{ID: uuid.New(), Email: "taken@example.com"})

	service := NewUserService(repo, &mockJWTService{})

	_, err := service.Register(context.Background(), domain.RegisterRequest{
		Email:    "taken@example.com",
		Password: "supersecret",
		FullName: "Bob",
	})
	if !errors.Is(err, domain.ErrEmailAlreadyRegistered) {
		t.Errorf("err = %v, want ErrEmailAlreadyRegistered", err)
	}
}

func TestLogin(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.DefaultCost)
	user := &entities.User{
		ID:       uuid.New(),
		Email:    "carol@example.com",
		Password: string(hashed),
		Role:     domain.RoleUser,
	}

	repo := newMockUserRepository()
	repo.add(user)
	service := NewUserService(repo, &mockJWTService{})

	resp, err := service.Login(context.Background(), domain.LoginRequest{
		Email:    "carol@example.com",
		Password: "supersecret",
	})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if resp.Token != "token-"+user.ID.String() {
		t.Errorf("unexpected token %q", resp.Token)
	}

	_, err = service.Login(context.Background(), domain.LoginRequest{
		Email:    "carol@example.com",
		Password: "wrong",
	})
	if !errors.Is(err, domain.ErrCredentialsInvalid) {
		t.Errorf("err = %v, want ErrCredentialsInvalid", err)
	}

	_, err = service.Login(context.Background(), domain.LoginRequest{
		Email:    "nobody@example.com",
		Password: "supersecret",
	})
	if !errors.Is(err, domain.ErrCredentialsInvalid) {
		t.Errorf("err = %v, want ErrCredentialsInvalid for unknown email", err)
	}
}

func TestUpdateNotificationSettings(t *testing.T) {
	user := &entities.User{
		ID:                     uuid.New(),
		Email:                  "dave@example.com",
		NotificationEnabled:    true,
		NotificationDaysBefore: 2,
	}

	repo := newMockUserRepository()
	repo.add(user)
	service := NewUserService(repo, &mockJWTService{})

	disabled := false
	err := service.UpdateNotificationSettings(context.Background(), domain.UpdateNotificationSettingsRequest{
		NotificationEnabled:    &disabled,
		NotificationDaysBefore: 5,
	}, user.ID.String())
	if err != nil {
		t.Fatalf("UpdateNotificationSettings returned error: %v", err)
	}

	if user.NotificationEnabled {
		t.Errorf("notifications still enabled after update")
	}
	if user.NotificationDaysBefore != 5 {
		t.Errorf("lead time = %d, want 5", user.NotificationDaysBefore)
	}
}

func TestUpdateNotificationSettings_NilEnabledFlagKeepsCurrentValue(t *testing.T) {
	user := &entities.User{
		ID:                  uuid.New(),
		Email:               "frank@example.com",
		NotificationEnabled: true,
	}

	repo := newMockUserRepository()
	repo.add(user)
	service := NewUserService(repo, &mockJWTService{})

	err := service.UpdateNotificationSettings(context.Background(), domain.UpdateNotificationSettingsRequest{
		NotificationDaysBefore: 3,
	}, user.ID.String())
	if err != nil {
		t.Fatalf("UpdateNotificationSettings returned error: %v", err)
	}

	if !user.NotificationEnabled {
		t.Errorf("enabled flag changed by a request that omitted it")
	}
	if user.NotificationDaysBefore != 3 {
		t.Errorf("lead time = %d, want 3", user.NotificationDaysBefore)
	}
}

func TestUpdateNotificationSettings_RejectsInvalidLeadTime(t *testing.T) {
	user := &entities.User{ID: uuid.New(), Email: "erin@example.com"}

	repo := newMockUserRepository()
	repo.add(user)
	service := NewUserService(repo, &mockJWTService{})

	enabled := true
	for _, days := range []int{0, 15, -1} {
		err := service.UpdateNotificationSettings(context.Background(), domain.UpdateNotificationSettingsRequest{
			NotificationEnabled:    &enabled,
			NotificationDaysBefore: days,
		}, user.ID.String())
		if !errors.Is(err, domain.ErrInvalidLeadTime) {
			t.Errorf("days=%d: err = %v, want ErrInvalidLeadTime", days, err)
		}
	}
}
