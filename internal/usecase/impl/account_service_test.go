package impl

import (
	"context"
	"errors"
	"testing"

	"ideabank/internal/domain/entity"
	domainerrors "ideabank/internal/domain/errors"
	"ideabank/internal/domain/repository"
	"ideabank/internal/domain/service"
	mockRepo "ideabank/internal/mocks/repository"
	mockSvc "ideabank/internal/mocks/service"
	"ideabank/internal/usecase"
	"ideabank/internal/validation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type accountServiceMocks struct {
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	hasher    *mockSvc.MockPasswordHasher
	tokens    *mockSvc.MockTokenService
	publisher *mockSvc.MockEventPublisher
}

func newAccountServiceWithMocks(t *testing.T) (usecase.AccountUsecase, *accountServiceMocks) {
	t.Helper()

	mocks := &accountServiceMocks{
		txManager: mockRepo.NewMockTransactionManager(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
		hasher:    mockSvc.NewMockPasswordHasher(t),
		tokens:    mockSvc.NewMockTokenService(t),
		publisher: mockSvc.NewMockEventPublisher(t),
	}

	svc := NewAccountService(AccountServiceParams{
		TxManager:      mocks.txManager,
		UserRepo:       mocks.userRepo,
		Hasher:         mocks.hasher,
		TokenService:   mocks.tokens,
		EventPublisher: mocks.publisher,
		Validator:      newTestValidator(),
		Logger:         newDiscardLogger(),
	})

	return svc, mocks
}

func TestAccountService_Register_Success(t *testing.T) {
	svc, mocks := newAccountServiceWithMocks(t)
	ctx := context.Background()

	mocks.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(nil, repository.ErrUserNotFound)
	mocks.hasher.EXPECT().Hash("secret1").Return("hashed", nil)

	var created *entity.User
	mocks.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) { created = user }).
		Return(nil)
	mocks.tokens.EXPECT().GenerateToken(mock.AnythingOfType("uuid.UUID")).Return("signed-token", nil)

	out, err := svc.Register(ctx, &usecase.RegisterInput{
		Name:     "  Ada ",
		Email:    "  Ada@Example.COM ",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", out.Token)

	require.NotNil(t, created)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "Ada", created.Name)
	assert.Equal(t, "ada@example.com", created.Email)
	assert.Equal(t, "hashed", created.PasswordHash)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestAccountService_Register_ValidationSkipsStore(t *testing.T) {
	svc, _ := newAccountServiceWithMocks(t)

	out, err := svc.Register(context.Background(), &usecase.RegisterInput{
		Name:     "",
		Email:    "not-an-email",
		Password: "12345",
	})
	require.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	details, ok := appErr.Details().([]validation.FieldError)
	require.True(t, ok)
	require.Len(t, details, 3)
	assert.Equal(t, "name", details[0].Param)
	assert.Equal(t, "Please include a valid email", details[1].Msg)
	assert.Equal(t, "Please enter a password with 6 or more characters", details[2].Msg)
}

func TestAccountService_Register_DuplicateEmail(t *testing.T) {
	svc, mocks := newAccountServiceWithMocks(t)
	ctx := context.Background()

	mocks.userRepo.EXPECT().
		FindByEmail(ctx, "ada@example.com").
		Return(&entity.User{ID: uuid.New(), Email: "ada@example.com"}, nil)

	out, err := svc.Register(ctx, &usecase.RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "secret1"})
	assert.Nil(t, out)
	assert.Equal(t, domainerrors.ErrUserAlreadyExists, err)
	mocks.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAccountService_Register_UniqueIndexRace(t *testing.T) {
	svc, mocks := newAccountServiceWithMocks(t)
	ctx := context.Background()

	mocks.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(nil, repository.ErrUserNotFound)
	mocks.hasher.EXPECT().Hash("secret1").Return("hashed", nil)
	mocks.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(repository.ErrUserEmailTaken)

	_, err := svc.Register(ctx, &usecase.RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "secret1"})
	assert.Equal(t, domainerrors.ErrUserAlreadyExists, err)
}

func TestAccountService_Register_StoreFailureIsInternal(t *testing.T) {
	svc, mocks := newAccountServiceWithMocks(t)
	ctx := context.Background()
	storeErr := errors.New("connection reset")

	mocks.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(nil, storeErr)

	_, err := svc.Register(ctx, &usecase.RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "secret1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)

	var appErr domainerrors.AppError
	assert.False(t, errors.As(err, &appErr), "unexpected failures must not surface as client errors")
}

func TestAccountService_Login_Success(t *testing.T) {
	svc, mocks := newAccountServiceWithMocks(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "ada@example.com", PasswordHash: "hashed"}

	mocks.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(user, nil)
	mocks.hasher.EXPECT().Check("secret1", "hashed").Return(true)
	mocks.tokens.EXPECT().GenerateToken(user.ID).Return("signed-token", nil)

	out, err := svc.Login(ctx, &usecase.LoginInput{Email: "ADA@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", out.Token)
}

func TestAccountService_Login_FailuresAreIndistinguishable(t *testing.T) {
	ctx := context.Background()

	unknownSvc, unknownMocks := newAccountServiceWithMocks(t)
	unknownMocks.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)
	_, unknownErr := unknownSvc.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "secret1"})

	wrongSvc, wrongMocks := newAccountServiceWithMocks(t)
	wrongMocks.userRepo.EXPECT().
		FindByEmail(ctx, "ada@example.com").
		Return(&entity.User{ID: uuid.New(), PasswordHash: "hashed"}, nil)
	wrongMocks.hasher.EXPECT().Check("wrong-pass", "hashed").Return(false)
	_, wrongErr := wrongSvc.Login(ctx, &usecase.LoginInput{Email: "ada@example.com", Password: "wrong-pass"})

	assert.Equal(t, domainerrors.ErrInvalidCredentials, unknownErr)
	assert.Equal(t, domainerrors.ErrInvalidCredentials, wrongErr)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestAccountService_Login_MissingPassword(t *testing.T) {
	svc, _ := newAccountServiceWithMocks(t)

	_, err := svc.Login(context.Background(), &usecase.LoginInput{Email: "ada@example.com"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	details := appErr.Details().([]validation.FieldError)
	require.Len(t, details, 1)
	assert.Equal(t, "password", details[0].Param)
	assert.Equal(t, "Please include a password", details[0].Msg)
}

func TestAccountService_GetCurrentUser(t *testing.T) {
	svc, mocks := newAccountServiceWithMocks(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Name: "Ada"}

	mocks.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	got, err := svc.GetCurrentUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestAccountService_GetCurrentUser_NotFound(t *testing.T) {
	svc, mocks := newAccountServiceWithMocks(t)
	ctx := context.Background()
	userID := uuid.New()

	mocks.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := svc.GetCurrentUser(ctx, userID)
	assert.Equal(t, domainerrors.ErrUserNotFound, err)
}

func TestAccountService_DeleteAccount_CascadesToIdeas(t *testing.T) {
	svc, mocks := newAccountServiceWithMocks(t)
	ctx := context.Background()
	userID := uuid.New()

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txIdeaRepo := mockRepo.NewMockIdeaRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)
	factory.EXPECT().IdeaRepo().Return(txIdeaRepo)

	mocks.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	mocks.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
	txUserRepo.EXPECT().Delete(ctx, userID).Return(nil)
	txIdeaRepo.EXPECT().DeleteByOwner(ctx, userID).Return(int64(3), nil)
	mocks.publisher.EXPECT().
		PublishAccountEvent(ctx, mock.MatchedBy(func(event *service.AccountEvent) bool {
			return event.EventType == service.EventTypeAccountDeleted && event.UserID == userID.String()
		})).
		Return(nil)

	err := svc.DeleteAccount(ctx, userID)
	assert.NoError(t, err)
}

func TestAccountService_DeleteAccount_UnknownUser(t *testing.T) {
	svc, mocks := newAccountServiceWithMocks(t)
	ctx := context.Background()
	userID := uuid.New()

	mocks.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	err := svc.DeleteAccount(ctx, userID)
	assert.Equal(t, domainerrors.ErrUserNotFound, err)
	mocks.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

// newCascadeFactory runs the unit of work against tx-bound repositories.
func newCascadeFactory(t *testing.T, mocks *accountServiceMocks) (*mockRepo.MockUserRepository, *mockRepo.MockIdeaRepository) {
	t.Helper()

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txIdeaRepo := mockRepo.NewMockIdeaRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)
	factory.EXPECT().IdeaRepo().Return(txIdeaRepo)

	mocks.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	return txUserRepo, txIdeaRepo
}

func TestAccountService_DeleteAccount_PartialCascadeStillPublishes(t *testing.T) {
	svc, mocks := newAccountServiceWithMocks(t)
	ctx := context.Background()
	userID := uuid.New()
	ideaErr := errors.New("mongo: connection reset")

	mocks.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	txUserRepo, txIdeaRepo := newCascadeFactory(t, mocks)
	txUserRepo.EXPECT().Delete(ctx, userID).Return(nil)
	txIdeaRepo.EXPECT().DeleteByOwner(ctx, userID).Return(int64(0), ideaErr)

	var published *service.AccountEvent
	mocks.publisher.EXPECT().
		PublishAccountEvent(ctx, mock.AnythingOfType("*service.AccountEvent")).
		RunAndReturn(func(_ context.Context, event *service.AccountEvent) error {
			published = event

			return nil
		})

	err := svc.DeleteAccount(ctx, userID)
	require.Error(t, err)
	assert.ErrorIs(t, err, ideaErr)

	require.NotNil(t, published)
	assert.Equal(t, service.EventTypeAccountDeleted, published.EventType)
	assert.Equal(t, userID.String(), published.UserID)
}

func TestAccountService_DeleteAccount_UserDeleteFailureDoesNotPublish(t *testing.T) {
	svc, mocks := newAccountServiceWithMocks(t)
	ctx := context.Background()
	userID := uuid.New()
	userErr := errors.New("users delete failed")

	mocks.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	txUserRepo, txIdeaRepo := newCascadeFactory(t, mocks)
	txUserRepo.EXPECT().Delete(ctx, userID).Return(userErr)
	txIdeaRepo.EXPECT().DeleteByOwner(ctx, userID).Return(int64(2), nil)

	err := svc.DeleteAccount(ctx, userID)
	require.Error(t, err)
	assert.ErrorIs(t, err, userErr)
	mocks.publisher.AssertNotCalled(t, "PublishAccountEvent", mock.Anything, mock.Anything)
}

func TestAccountService_DeleteAccount_PublishFailureIsNotFatal(t *testing.T) {
	svc, mocks := newAccountServiceWithMocks(t)
	ctx := context.Background()
	userID := uuid.New()

	mocks.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	mocks.txManager.EXPECT().Execute(ctx, mock.Anything).Return(nil)
	mocks.publisher.EXPECT().
		PublishAccountEvent(ctx, mock.AnythingOfType("*service.AccountEvent")).
		Return(errors.New("broker down"))

	assert.NoError(t, svc.DeleteAccount(ctx, userID))
}
