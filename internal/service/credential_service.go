package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	errorvalues "github.com/limbo/eventtracker/internal/error_values"
	"github.com/limbo/eventtracker/internal/repository"
	"github.com/limbo/eventtracker/pkg/entity"
)

type CredentialService struct {
	repo   repository.CredentialsRepositoryI
	logger *zap.Logger
}

func NewCredentialService(repo repository.CredentialsRepositoryI, logger *zap.Logger) *CredentialService {
	InitValidator()
	return &CredentialService{
		repo:   repo,
		logger: logger,
	}
}

// Register stores a salted hash for a new username. Surrounding whitespace of
// both fields is ignored. A taken username is reported before empty fields.
func (cs *CredentialService) Register(ctx context.Context, username, password string) error {
	req := RegisterRequest{
		Username: strings.TrimSpace(username),
		Password: strings.TrimSpace(password),
	}
	if req.Username != "" {
		_, err := cs.repo.FindByName(ctx, req.Username)
		switch {
		case err == nil:
			return errorvalues.ErrDuplicateUser
		case !errors.Is(err, errorvalues.ErrUserNotFound):
			return errors.New("credentials repository error: " + err.Error())
		}
	}
	if err := validate.Struct(req); err != nil {
		return errorvalues.ErrEmptyCredentials
	}
	record, err := HashPassword(req.Password)
	if err != nil {
		return err
	}
	err = cs.repo.Create(ctx, &entity.Credential{
		Username: req.Username,
		Record:   record,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrDuplicateUser) {
			return err
		}
		return errors.New("credentials repository error: " + err.Error())
	}
	cs.logger.Info("user registered", zap.String("username", req.Username))
	return nil
}

// Authenticate is false for unknown users, malformed stored records and wrong
// passwords alike.
func (cs *CredentialService) Authenticate(ctx context.Context, username, password string) bool {
	username = strings.TrimSpace(username)
	cred, err := cs.repo.FindByName(ctx, username)
	if err != nil {
		if !errors.Is(err, errorvalues.ErrUserNotFound) {
			cs.logger.Error("looking up credential", zap.String("username", username), zap.Error(err))
		}
		return false
	}
	if !VerifyPassword(cred.Record, strings.TrimSpace(password)) {
		cs.logger.Debug("password mismatch", zap.String("username", username))
		return false
	}
	return true
}
