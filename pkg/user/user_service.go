package user

import (
	"context"
	"errors"

	"Smart-Fridge-Manager/domain"
	"Smart-Fridge-Manager/entities"
	"Smart-Fridge-Manager/pkg/jwt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const defaultNotificationDaysBefore = 2

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		GetProfile(ctx context.Context, userID string) (domain.ProfileResponse, error)
		UpdateProfile(ctx context.Context, req domain.UpdateProfileRequest, userID string) error
		UpdateNotificationSettings(ctx context.Context, req domain.UpdateNotificationSettingsRequest, userID string) error
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error) {
	if _, err := s.userRepository.GetUserByEmail(ctx, req.Email); err == nil {
		return domain.RegisterResponse{}, domain.ErrEmailAlreadyRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.RegisterResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.RegisterResponse{}, err
	}

	user := &entities.User{
		ID:                     uuid.New(),
		Email:                  req.Email,
		Password:               string(hashed),
		FullName:               req.FullName,
		Role:                   domain.RoleUser,
		NotificationEnabled:    true,
		NotificationDaysBefore: defaultNotificationDaysBefore,
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.RegisterResponse{}, err
	}

	return domain.RegisterResponse{
		ID:       user.ID.String(),
		Email:    user.Email,
		FullName: user.FullName,
	}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrCredentialsInvalid
		}
		return domain.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrCredentialsInvalid
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Role)

	return domain.LoginResponse{
		Token: token,
		Role:  user.Role,
	}, nil
}

func (s *userService) GetProfile(ctx context.Context, userID string) (domain.ProfileResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ProfileResponse{}, domain.ErrUserNotFound
		}
		return domain.ProfileResponse{}, err
	}

	return domain.ProfileResponse{
		ID:                     user.ID.String(),
		Email:                  user.Email,
		FullName:               user.FullName,
		NotificationEnabled:    user.NotificationEnabled,
		NotificationDaysBefore: user.NotificationDaysBefore,
		CreatedAt:              user.CreatedAt,
	}, nil
}

func (s *userService) UpdateProfile(ctx context.Context, req domain.UpdateProfileRequest, userID string) error {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	if req.FullName != "" {
		user.FullName = req.FullName
	}

	return s.userRepository.UpdateUser(ctx, user)
}

func (s *userService) UpdateNotificationSettings(ctx context.Context, req domain.UpdateNotificationSettingsRequest, userID string) error {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	if req.NotificationDaysBefore < 1 || req.NotificationDaysBefore > 14 {
		return domain.ErrInvalidLeadTime
	}

	if req.NotificationEnabled != nil {
		user.NotificationEnabled = *req.NotificationEnabled
	}
	user.NotificationDaysBefore = req.NotificationDaysBefore

	return s.userRepository.UpdateUser(ctx, user)
}
