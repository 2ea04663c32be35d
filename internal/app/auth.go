package app

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/ProtoSG/momentum-front/internal/model"
)

// NextView is where the application should land after authenticating: the
// dashboard when a pet exists, pet creation otherwise.
type NextView string

const (
	ViewDashboard NextView = "dashboard"
	ViewCreatePet NextView = "create-pet"
)

type RegisterInput struct {
	Name         string
	Email        string
	Password     string
	Timezone     string
	Locale       string
	DayStartHour *int
}

func (s *Service) Login(ctx context.Context, email, password string) (NextView, error) {
	if err := validateEmail(email); err != nil {
		return "", err
	}
	if password == "" {
		return "", ErrPasswordRequired
	}
	if len(password) < 3 {
		return "", fmt.Errorf("%w: need at least 3 characters", ErrPasswordTooShort)
	}

	resp, err := s.client.Login(ctx, email, password)
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	if err := s.session.Login(ctx, resp.Token, resp.RefreshToken, resp.Email); err != nil {
		return "", err
	}
	return s.routeAfterAuth(ctx)
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (NextView, error) {
	if strings.TrimSpace(in.Name) == "" {
		return "", ErrNameRequired
	}
	if len(strings.TrimSpace(in.Name)) < 2 {
		return "", ErrNameTooShort
	}
	if err := validateEmail(in.Email); err != nil {
		return "", err
	}
	if in.Password == "" {
		return "", ErrPasswordRequired
	}
	if len(in.Password) < 6 {
		return "", fmt.Errorf("%w: need at least 6 characters", ErrPasswordTooShort)
	}
	if in.DayStartHour != nil && (*in.DayStartHour < 0 || *in.DayStartHour > 23) {
		return "", fmt.Errorf("day start hour must be between 0 and 23")
	}

	resp, err := s.client.Register(ctx, model.RegisterRequest{
		Name:         strings.TrimSpace(in.Name),
		Email:        in.Email,
		Password:     in.Password,
		Timezone:     in.Timezone,
		Locale:       in.Locale,
		DayStartHour: in.DayStartHour,
	})
	if err != nil {
		return "", fmt.Errorf("register: %w", err)
	}
	if err := s.session.Login(ctx, resp.Token, resp.RefreshToken, resp.Email); err != nil {
		return "", err
	}
	return s.routeAfterAuth(ctx)
}

// routeAfterAuth probes for the user's pet to decide the landing view.
func (s *Service) routeAfterAuth(ctx context.Context) (NextView, error) {
	if err := s.RefreshPet(ctx); err != nil {
		return "", err
	}
	if _, ok := s.Pet(); ok {
		return ViewDashboard, nil
	}
	return ViewCreatePet, nil
}

// Logout invalidates the server session best-effort and always clears the
// local record.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.client.Logout(ctx); err != nil {
		s.log.Warn("server logout failed", "error", err)
	}
	return s.session.Logout(ctx)
}

func validateEmail(email string) error {
	if email == "" {
		return ErrEmailRequired
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ErrEmailInvalid
	}
	return nil
}
