package queries_test

import (
	"context"
	"testing"
	"time"

	"shipping/internal/adapters/out/postgres/locationrepo"
	"shipping/internal/adapters/out/postgres/migrations"
	"shipping/internal/adapters/out/postgres/shipmentrepo"
	"shipping/internal/adapters/out/postgres/userrepo"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/identity"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/location"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(kernel.ID, any) {}

var placedAt = time.Date(2024, 5, 10, 8, 0, 0, 0, time.UTC)

type ShipmentQueriesTestSuite struct {
	suite.Suite
	container    *postgres.PostgresContainer
	db           *gorm.DB
	list         queries.ListShipmentsQueryHandler
	byCode       queries.GetShipmentByTrackingCodeQueryHandler
	shipmentRepo *shipmentrepo.GormShipmentRepository
	locationRepo *locationrepo.GormLocationRepository
	userRepo     *userrepo.GormUserRepository
	alice        *identity.User
	bob          *identity.User
}

func (suite *ShipmentQueriesTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)
	suite.Require().NoError(migrations.Up(dsn, zap.NewNop()))

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.list = queries.NewListShipmentsQueryHandler(db)
	suite.byCode = queries.NewGetShipmentByTrackingCodeQueryHandler(db)
	suite.shipmentRepo = shipmentrepo.NewGormShipmentRepository(db, &mockAggregateTracker{})
	suite.locationRepo = locationrepo.NewGormLocationRepository(db, &mockAggregateTracker{})
	suite.userRepo = userrepo.NewGormUserRepository(db, &mockAggregateTracker{})
}

func (suite *ShipmentQueriesTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *ShipmentQueriesTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE shipment_locations, shipments, users RESTART IDENTITY CASCADE").Error
	suite.Require().NoError(err)

	suite.alice = suite.addUser("alice", identity.RoleUser)
	suite.bob = suite.addUser("bob", identity.RoleUser)
}

func (suite *ShipmentQueriesTestSuite) TestList_AdminSeesEverything() {
	first := suite.addShipment(suite.alice, "SHIP-1715328000000")
	second := suite.addShipment(suite.bob, "SHIP-1715328000001")
	admin := identity.Principal{UserID: 99, RoleID: identity.RoleAdmin}

	// The filter is ignored for administrators.
	query, err := queries.NewListShipmentsQuery(admin, suite.alice.ID().Int64())
	suite.Require().NoError(err)

	result, err := suite.list.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.False(result.NotFoundHint)
	suite.Require().Len(result.Shipments, 2)
	suite.Equal(first.ID().Int64(), result.Shipments[0].ID)
	suite.Equal("alice", result.Shipments[0].SenderUsername)
	suite.Equal(second.ID().Int64(), result.Shipments[1].ID)
	suite.Equal("bob", result.Shipments[1].SenderUsername)
}

func (suite *ShipmentQueriesTestSuite) TestList_UserSeesOwnShipmentsOnly() {
	own := suite.addShipment(suite.alice, "SHIP-1715328000000")
	suite.addShipment(suite.bob, "SHIP-1715328000001")

	for _, senderID := range []int64{0, suite.alice.ID().Int64()} {
		query, err := queries.NewListShipmentsQuery(suite.alice.Principal(), senderID)
		suite.Require().NoError(err)

		result, err := suite.list.Handle(context.Background(), query)

		suite.Require().NoError(err)
		suite.Require().Len(result.Shipments, 1)
		view := result.Shipments[0]
		suite.Equal(own.ID().Int64(), view.ID)
		suite.Equal("SHIP-1715328000000", view.TrackingCode)
		suite.Equal("Jane Doe", view.ReceiverName)
		suite.Equal("1 Main St", view.ReceiverAddress)
		suite.Equal("5 Side St", view.SenderAddress)
		suite.InDelta(52.52, view.SenderLatitude, 1e-8)
		suite.InDelta(13.405, view.SenderLongitude, 1e-8)
		suite.Equal(shipment.Placed, view.Status)
		suite.Equal(placedAt, view.CreatedAt)
	}
}

func (suite *ShipmentQueriesTestSuite) TestList_UserAskingForAnotherSender_IsDenied() {
	query, err := queries.NewListShipmentsQuery(suite.alice.Principal(), suite.bob.ID().Int64())
	suite.Require().NoError(err)

	_, err = suite.list.Handle(context.Background(), query)

	suite.ErrorIs(err, errs.ErrAccessDenied)
}

func (suite *ShipmentQueriesTestSuite) TestList_UserWithoutShipments_GetsHint() {
	suite.addShipment(suite.bob, "SHIP-1715328000001")
	query, err := queries.NewListShipmentsQuery(suite.alice.Principal(), 0)
	suite.Require().NoError(err)

	result, err := suite.list.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.True(result.NotFoundHint)
	suite.Empty(result.Shipments)
}

func (suite *ShipmentQueriesTestSuite) TestList_AdminWithEmptyDatabase_GetsNoHint() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE shipments CASCADE").Error)
	query, err := queries.NewListShipmentsQuery(identity.Principal{UserID: 1, RoleID: identity.RoleAdmin}, 0)
	suite.Require().NoError(err)

	result, err := suite.list.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.False(result.NotFoundHint)
	suite.Empty(result.Shipments)
}

func (suite *ShipmentQueriesTestSuite) TestByCode_ReturnsShipmentWithLocation() {
	s := suite.addShipment(suite.alice, "SHIP-1715328000000")
	coords, err := kernel.NewCoordinates(48.8566, 2.3522)
	suite.Require().NoError(err)
	record, err := location.NewRecord(s.ID(), coords, placedAt.Add(time.Minute))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.locationRepo.Add(context.Background(), record))

	query, err := queries.NewGetShipmentByTrackingCodeQuery("SHIP-1715328000000")
	suite.Require().NoError(err)

	result, err := suite.byCode.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(s.ID().Int64(), result.Shipment.ID)
	suite.Equal("alice", result.Shipment.SenderUsername)
	suite.Require().Len(result.Locations, 1)
	suite.InDelta(48.8566, result.Locations[0].Latitude, 1e-8)
	suite.InDelta(2.3522, result.Locations[0].Longitude, 1e-8)
	suite.Equal(placedAt.Add(time.Minute), result.Locations[0].Timestamp)
}

func (suite *ShipmentQueriesTestSuite) TestByCode_WithoutLocation_ReturnsEmptyList() {
	suite.addShipment(suite.alice, "SHIP-1715328000000")
	query, err := queries.NewGetShipmentByTrackingCodeQuery("SHIP-1715328000000")
	suite.Require().NoError(err)

	result, err := suite.byCode.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result.Locations)
	suite.Empty(result.Locations)
}

func (suite *ShipmentQueriesTestSuite) TestByCode_UnknownOrMalformedCode_IsNotFound() {
	for _, code := range []string{"SHIP-1715328000999", "not-a-code"} {
		query, err := queries.NewGetShipmentByTrackingCodeQuery(code)
		suite.Require().NoError(err)

		_, err = suite.byCode.Handle(context.Background(), query)

		suite.ErrorIs(err, errs.ErrObjectNotFound, code)
	}
}

func (suite *ShipmentQueriesTestSuite) addUser(name string, roleID kernel.ID) *identity.User {
	user, err := identity.NewUser(name, name+"@example.com", "hashed", roleID)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.userRepo.Add(context.Background(), user))
	return user
}

func (suite *ShipmentQueriesTestSuite) addShipment(sender *identity.User, code string) *shipment.Shipment {
	tc, err := shipment.ParseTrackingCode(code)
	suite.Require().NoError(err)
	from, err := kernel.NewCoordinates(52.52, 13.405)
	suite.Require().NoError(err)

	s, err := shipment.NewShipment(tc, sender.ID(), "Jane Doe", "1 Main St", "5 Side St", from, placedAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.shipmentRepo.Add(context.Background(), s))
	return s
}

func TestShipmentQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(ShipmentQueriesTestSuite))
}
