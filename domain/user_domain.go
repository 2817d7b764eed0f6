package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister                   = "user registered successfully"
	MessageSuccessLogin                      = "login successful"
	MessageSuccessGetProfile                 = "profile retrieved successfully"
	MessageSuccessUpdateProfile              = "profile updated successfully"
	MessageSuccessUpdateNotificationSettings = "notification settings updated successfully"

	MessageFailedRegister                   = "failed to register user"
	MessageFailedLogin                      = "failed to login"
	MessageFailedGetProfile                 = "failed to retrieve profile"
	MessageFailedUpdateProfile              = "failed to update profile"
	MessageFailedUpdateNotificationSettings = "failed to update notification settings"

	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrUserNotFound           = errors.New("user not found")
	ErrCredentialsInvalid     = errors.New("invalid email or password")
	ErrInvalidLeadTime        = errors.New("notification lead time must be between 1 and 14 days")
)

type (
	RegisterRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
		FullName string `json:"full_name" validate:"required"`
	}

	RegisterResponse struct {
		ID       string `json:"id"`
		Email    string `json:"email"`
		FullName string `json:"full_name"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}

	UpdateProfileRequest struct {
		FullName string `json:"full_name" validate:"omitempty"`
	}

	UpdateNotificationSettingsRequest struct {
		NotificationEnabled    *bool `json:"notification_enabled" validate:"required"`
		NotificationDaysBefore int   `json:"notification_days_before" validate:"required,min=1,max=14"`
	}

	ProfileResponse struct {
		ID                     string    `json:"id"`
		Email                  string    `json:"email"`
		FullName               string    `json:"full_name"`
		NotificationEnabled    bool      `json:"notification_enabled"`
		NotificationDaysBefore int       `json:"notification_days_before"`
		CreatedAt              time.Time `json:"created_at"`
	}
)
