package commands_test

import (
	"context"
	"time"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/identity"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/location"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/services"
	"shipping/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.ID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*shipment.Shipment)
	return s, args.Error(1)
}
func (m *MockShipmentRepository) GetByTrackingCode(
	ctx context.Context,
	code shipment.TrackingCode,
) (*shipment.Shipment, error) {
	args := m.Called(ctx, code)
	s, _ := args.Get(0).(*shipment.Shipment)
	return s, args.Error(1)
}
func (m *MockShipmentRepository) Delete(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockShipmentRepository) ApplyTransition(
	ctx context.Context,
	rule services.TransitionRule,
	now time.Time,
) (int64, error) {
	args := m.Called(ctx, rule, now)
	return args.Get(0).(int64), args.Error(1)
}

type MockLocationRepository struct{ mock.Mock }

func (m *MockLocationRepository) Add(ctx context.Context, r *location.Record) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockLocationRepository) Update(ctx context.Context, r *location.Record) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockLocationRepository) GetByShipmentID(ctx context.Context, id kernel.ID) (*location.Record, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*location.Record)
	return r, args.Error(1)
}
func (m *MockLocationRepository) ListByShipmentID(ctx context.Context, id kernel.ID) ([]*location.Record, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).([]*location.Record)
	return r, args.Error(1)
}
func (m *MockLocationRepository) DeleteByShipmentID(ctx context.Context, id kernel.ID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *identity.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}
func (m *MockUserRepository) Get(ctx context.Context, id kernel.ID) (*identity.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*identity.User)
	return u, args.Error(1)
}
func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*identity.User)
	return u, args.Error(1)
}
func (m *MockUserRepository) FindRoleByName(ctx context.Context, name string) (identity.Role, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(identity.Role), args.Error(1)
}

// MockUoW satisfies every unit of work interface of the package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}
func (m *MockUoW) LocationRepository() ports.LocationRepository {
	args := m.Called()
	return args.Get(0).(ports.LocationRepository)
}
func (m *MockUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}

type MockUserUoWFactory struct{ mock.Mock }

func (m *MockUserUoWFactory) Create() commands.UserUoW {
	args := m.Called()
	return args.Get(0).(commands.UserUoW)
}

type MockPasswordHasher struct{ mock.Mock }

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}
func (m *MockPasswordHasher) Compare(hash, password string) error {
	args := m.Called(hash, password)
	return args.Error(0)
}

type MockTokenIssuer struct{ mock.Mock }

func (m *MockTokenIssuer) Issue(principal identity.Principal) (string, time.Time, error) {
	args := m.Called(principal)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

var (
	admin     = identity.Principal{UserID: 1, Email: "admin@example.com", RoleID: identity.RoleAdmin}
	regular   = identity.Principal{UserID: 7, Email: "jane@example.com", RoleID: identity.RoleUser}
	startedAt = time.Date(2024, 5, 10, 8, 0, 0, 0, time.UTC)
)

func existingShipment(id kernel.ID, status shipment.Status) *shipment.Shipment {
	code, err := shipment.ParseTrackingCode("SHIP-1715328000000")
	if err != nil {
		panic(err)
	}
	coords, err := kernel.NewCoordinates(40.7128, -74.0060)
	if err != nil {
		panic(err)
	}
	s, err := shipment.RestoreShipment(id, code, 7, "Jane Doe", "1 Main St", "5 Side St", coords,
		status, startedAt, startedAt)
	if err != nil {
		panic(err)
	}
	return s
}

func existingUser(id kernel.ID, email string, role kernel.ID) *identity.User {
	u, err := identity.RestoreUser(id, "jane", email, "hashed", role)
	if err != nil {
		panic(err)
	}
	return u
}
