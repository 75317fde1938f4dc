package http_test

import (
	"context"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/identity"
	"shipping/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/mock"
)

type MockCreateShipmentHandler struct{ mock.Mock }

func (m *MockCreateShipmentHandler) Handle(
	ctx context.Context,
	cmd commands.CreateShipmentCommand,
) (commands.CreateShipmentResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.CreateShipmentResult), args.Error(1)
}

type MockUpdateShipmentStatusHandler struct{ mock.Mock }

func (m *MockUpdateShipmentStatusHandler) Handle(
	ctx context.Context,
	cmd commands.UpdateShipmentStatusCommand,
) (*shipment.Shipment, error) {
	args := m.Called(ctx, cmd)
	if s := args.Get(0); s != nil {
		return s.(*shipment.Shipment), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockDeleteShipmentHandler struct{ mock.Mock }

func (m *MockDeleteShipmentHandler) Handle(ctx context.Context, cmd commands.DeleteShipmentCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockUpsertShipmentLocationHandler struct{ mock.Mock }

func (m *MockUpsertShipmentLocationHandler) Handle(
	ctx context.Context,
	cmd commands.UpsertShipmentLocationCommand,
) (commands.UpsertShipmentLocationResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.UpsertShipmentLocationResult), args.Error(1)
}

type MockSignUpUserHandler struct{ mock.Mock }

func (m *MockSignUpUserHandler) Handle(ctx context.Context, cmd commands.SignUpUserCommand) (*identity.User, error) {
	args := m.Called(ctx, cmd)
	if u := args.Get(0); u != nil {
		return u.(*identity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockSignInUserHandler struct{ mock.Mock }

func (m *MockSignInUserHandler) Handle(ctx context.Context, cmd commands.SignInUserCommand) (commands.SignInResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.SignInResult), args.Error(1)
}

type MockListShipmentsHandler struct{ mock.Mock }

func (m *MockListShipmentsHandler) Handle(
	ctx context.Context,
	query queries.ListShipmentsQuery,
) (queries.ListShipmentsQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.ListShipmentsQueryResponse), args.Error(1)
}

type MockGetShipmentByTrackingCodeHandler struct{ mock.Mock }

func (m *MockGetShipmentByTrackingCodeHandler) Handle(
	ctx context.Context,
	query queries.GetShipmentByTrackingCodeQuery,
) (queries.GetShipmentByTrackingCodeQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetShipmentByTrackingCodeQueryResponse), args.Error(1)
}

type MockTokenVerifier struct{ mock.Mock }

func (m *MockTokenVerifier) Verify(token string) (identity.Principal, error) {
	args := m.Called(token)
	return args.Get(0).(identity.Principal), args.Error(1)
}
