// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "ideabank/internal/delivery/context"
	"ideabank/internal/domain/entity"
	domainerrors "ideabank/internal/domain/errors"
	"ideabank/internal/domain/repository"
	"ideabank/internal/domain/service"
	"ideabank/internal/errors"
	"ideabank/internal/usecase"
	"ideabank/internal/validation"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager      repository.TransactionManager
	userRepo       repository.UserRepository
	hasher         service.PasswordHasher
	tokenService   service.TokenService
	eventPublisher service.EventPublisher
	validator      *validation.Validator
	logger         *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	UserRepo       repository.UserRepository
	Hasher         service.PasswordHasher
	TokenService   service.TokenService
	EventPublisher service.EventPublisher
	Validator      *validation.Validator
	Logger         *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:      params.TxManager,
		userRepo:       params.UserRepo,
		hasher:         params.Hasher,
		tokenService:   params.TokenService,
		eventPublisher: params.EventPublisher,
		validator:      params.Validator,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// normalizeEmail trims and lower-cases an email before any lookup or insert.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an account after checking the email is free.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.TokenOutput, error) {
	normalized := usecase.RegisterInput{
		Name:     strings.TrimSpace(input.Name),
		Email:    normalizeEmail(input.Email),
		Password: input.Password,
	}
	if err := srv.validator.Struct(&normalized); err != nil {
		return nil, err
	}

	_, err := srv.userRepo.FindByEmail(ctx, normalized.Email)
	if err == nil {
		return nil, domainerrors.ErrUserAlreadyExists
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	passwordHash, err := srv.hasher.Hash(normalized.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		ID:           uuid.New(),
		Name:         normalized.Name,
		Email:        normalized.Email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		// Lost a race with a concurrent registration of the same email.
		if errors.Is(err, repository.ErrUserEmailTaken) {
			return nil, domainerrors.ErrUserAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User registered", slog.String("user_id", user.ID.String()))

	return srv.issueToken(user.ID)
}

// Login exchanges valid credentials for a token.
// Unknown email and wrong password fail identically.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.TokenOutput, error) {
	normalized := usecase.LoginInput{
		Email:    normalizeEmail(input.Email),
		Password: input.Password,
	}
	if err := srv.validator.Struct(&normalized); err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByEmail(ctx, normalized.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(normalized.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.issueToken(user.ID)
}

func (srv *accountService) issueToken(userID uuid.UUID) (*usecase.TokenOutput, error) {
	token, err := srv.tokenService.GenerateToken(userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}

	return &usecase.TokenOutput{Token: token}, nil
}

// GetCurrentUser returns the authenticated user.
func (srv *accountService) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}

// DeleteAccount removes the user and all of their ideas in one unit of work,
// then announces the deletion so leftovers can be swept asynchronously.
// The event also goes out when the user row is gone but the idea cleanup
// failed: a store without rollback leaves orphans that a retry can no longer
// reach, since the user lookup then reports not found.
func (srv *accountService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	if _, err := srv.GetCurrentUser(ctx, userID); err != nil {
		return err
	}

	var (
		userDeleted  bool
		deletedIdeas int64
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userErr := repoFactory.UserRepo().Delete(ctx, userID)
		userDeleted = userErr == nil

		var ideaErr error
		deletedIdeas, ideaErr = repoFactory.IdeaRepo().DeleteByOwner(ctx, userID)

		return errors.Join(userErr, ideaErr)
	})
	if err != nil {
		if userDeleted {
			srv.publishAccountDeleted(ctx, userID)
		}

		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		srv.log(ctx).Error("Failed to delete account", slog.String("user_id", userID.String()), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete account")
	}

	srv.log(ctx).Info("Account deleted",
		slog.String("user_id", userID.String()),
		slog.Int64("deleted_ideas", deletedIdeas),
	)

	srv.publishAccountDeleted(ctx, userID)

	return nil
}

func (srv *accountService) publishAccountDeleted(ctx context.Context, userID uuid.UUID) {
	if srv.eventPublisher == nil {
		return
	}

	event := &service.AccountEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventType:  service.EventTypeAccountDeleted,
		UserID:     userID.String(),
		OccurredAt: time.Now().UTC(),
	}

	if err := srv.eventPublisher.PublishAccountEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish account event",
			slog.String("user_id", userID.String()),
			slog.Any("error", err),
		)
	}
}
