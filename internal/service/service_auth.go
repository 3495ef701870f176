package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-story-keeper/internal/adapter"
	"github.com/MKhiriev/go-story-keeper/internal/cache"
	"github.com/MKhiriev/go-story-keeper/internal/logger"
	"github.com/MKhiriev/go-story-keeper/internal/validators"
	"github.com/MKhiriev/go-story-keeper/models"
)

type authService struct {
	api       adapter.StoryAPI
	session   Session
	validator validators.Validator
	registrar SyncRegistrar

	logger *logger.Logger
}

// NewAuthService builds the authentication service. registrar may be nil,
// in which case login does not schedule an offline flush.
func NewAuthService(api adapter.StoryAPI, session Session, validator validators.Validator, registrar SyncRegistrar, logger *logger.Logger) AuthService {
	return &authService{
		api:       api,
		session:   session,
		validator: validator,
		registrar: registrar,
		logger:    logger,
	}
}

func (a *authService) Register(ctx context.Context, req models.RegisterRequest) error {
	if err := a.validator.Validate(ctx, req); err != nil {
		return err
	}

	if err := a.api.Register(ctx, req); err != nil {
		a.logger.Err(err).
			Str("func", "authService.Register").
			Str("email", req.Email).
			Msg("registration failed")
		return mapAdapterError(err)
	}

	return nil
}

func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error) {
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.LoginResult{}, err
	}

	result, err := a.api.Login(ctx, req)
	if err != nil {
		a.logger.Err(err).
			Str("func", "authService.Login").
			Str("email", req.Email).
			Msg("login failed")
		return models.LoginResult{}, mapAdapterError(err)
	}

	if err = a.session.SetLogin(ctx, result); err != nil {
		return models.LoginResult{}, fmt.Errorf("store session: %w", err)
	}

	if a.registrar != nil {
		if err = a.registrar.RegisterSync(ctx, cache.SyncTag); err != nil {
			a.logger.Warn().Err(err).
				Str("func", "authService.Login").
				Msg("failed to schedule offline story flush")
		}
	}

	return result, nil
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.session.ClearLogin(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (a *authService) IsAuthenticated(ctx context.Context) bool {
	return a.session.IsAuthenticated(ctx)
}

func (a *authService) UserName(ctx context.Context) string {
	name, err := a.session.UserName(ctx)
	if err != nil {
		a.logger.Err(err).
			Str("func", "authService.UserName").
			Msg("failed to read user name")
		return ""
	}
	return name
}
