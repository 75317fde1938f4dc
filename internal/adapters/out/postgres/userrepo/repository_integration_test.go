package userrepo_test

import (
	"context"
	"testing"
	"time"

	"shipping/internal/adapters/out/postgres/migrations"
	"shipping/internal/adapters/out/postgres/userrepo"
	"shipping/internal/core/domain/model/identity"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.ID, aggregate any) {
	m.Called(id, aggregate)
}

type UserRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *userrepo.GormUserRepository
	tracker    *MockAggregateTracker
}

func (suite *UserRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)
	suite.Require().NoError(migrations.Up(connStr, zap.NewNop()))

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db
}

func (suite *UserRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE shipment_locations, shipments, users RESTART IDENTITY CASCADE").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = userrepo.NewGormUserRepository(suite.db, suite.tracker)
}

func (suite *UserRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UserRepositoryIntegrationTestSuite) TestAdd_ThenFind() {
	ctx := context.Background()
	user := suite.newUser("alice@example.com", identity.RoleAdmin)

	suite.Require().NoError(suite.repository.Add(ctx, user))
	suite.Positive(user.ID().Int64())
	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", user.ID(), user)

	byID, err := suite.repository.Get(ctx, user.ID())
	suite.Require().NoError(err)
	suite.Equal("alice", byID.Username())
	suite.Equal("$2a$10$hash", byID.PasswordHash())
	suite.True(byID.IsAdmin())

	byEmail, err := suite.repository.FindByEmail(ctx, "alice@example.com")
	suite.Require().NoError(err)
	suite.Equal(user.ID(), byEmail.ID())
}

func (suite *UserRepositoryIntegrationTestSuite) TestAdd_DuplicateEmail_Fails() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newUser("bob@example.com", identity.RoleUser)))

	err := suite.repository.Add(ctx, suite.newUser("bob@example.com", identity.RoleUser))
	suite.Error(err)
}

func (suite *UserRepositoryIntegrationTestSuite) TestLookups_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.ID(5))
	suite.ErrorIs(err, errs.ErrObjectNotFound)

	_, err = suite.repository.FindByEmail(ctx, "nobody@example.com")
	suite.ErrorIs(err, errs.ErrObjectNotFound)

	_, err = suite.repository.FindByEmail(ctx, "")
	suite.ErrorIs(err, errs.ErrValueIsRequired)
}

func (suite *UserRepositoryIntegrationTestSuite) TestFindRoleByName() {
	ctx := context.Background()

	role, err := suite.repository.FindRoleByName(ctx, identity.RoleNameAdmin)
	suite.Require().NoError(err)
	suite.Equal(identity.RoleAdmin, role.ID)

	role, err = suite.repository.FindRoleByName(ctx, identity.RoleNameUser)
	suite.Require().NoError(err)
	suite.Equal(identity.RoleUser, role.ID)

	_, err = suite.repository.FindRoleByName(ctx, "courier")
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UserRepositoryIntegrationTestSuite) newUser(email string, roleID kernel.ID) *identity.User {
	username := email[:len(email)-len("@example.com")]
	user, err := identity.NewUser(username, email, "$2a$10$hash", roleID)
	suite.Require().NoError(err)
	return user
}

func TestUserRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryIntegrationTestSuite))
}
