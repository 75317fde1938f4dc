package http

import (
	"time"

	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/identity"
	"shipping/internal/core/domain/model/location"
	"shipping/internal/core/domain/model/shipment"
)

// Request and response bodies. Field names follow the existing web client,
// including its "reciver" spelling.

type CreateShipmentRequest struct {
	SenderID          *int64   `json:"sender_id" validate:"required,gt=0"`
	ReceiverName      string   `json:"reciver_name" validate:"required"`
	ReceiverAddress   string   `json:"reciver_address" validate:"required"`
	SenderAddress     string   `json:"sender_address" validate:"required"`
	SenderLatitude    *float64 `json:"sender_latitude" validate:"required,gte=-90,lte=90"`
	SenderLongitude   *float64 `json:"sender_longitude" validate:"required,gte=-180,lte=180"`
	ReceiverLatitude  *float64 `json:"reciver_latitude" validate:"required,gte=-90,lte=90"`
	ReceiverLongitude *float64 `json:"reciver_longitude" validate:"required,gte=-180,lte=180"`
}

type UpdateShipmentStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type UpsertLocationRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
}

type SignUpRequest struct {
	Username        string `json:"username" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
	Role            string `json:"role" validate:"omitempty,oneof=admin user"`
}

type SignInRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type SenderResponse struct {
	Username string `json:"username"`
}

type ShipmentResponse struct {
	ID              int64           `json:"id"`
	TrackingID      string          `json:"tracking_id"`
	SenderID        int64           `json:"sender_id"`
	ReceiverName    string          `json:"reciver_name"`
	ReceiverAddress string          `json:"reciver_address"`
	SenderAddress   string          `json:"sender_address"`
	SenderLatitude  float64         `json:"sender_latitude"`
	SenderLongitude float64         `json:"sender_longitude"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	Sender          *SenderResponse `json:"sender,omitempty"`
}

type LocationResponse struct {
	ID         int64     `json:"id"`
	ShipmentID int64     `json:"shipment_id"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Timestamp  time.Time `json:"timestamp"`
}

type CreateShipmentResponse struct {
	Message          string           `json:"message"`
	Shipment         ShipmentResponse `json:"shipment"`
	ReceiverLocation LocationResponse `json:"receiverLocation"`
}

type ShipmentListResponse struct {
	Shipments []ShipmentResponse `json:"shipments"`
}

// TrackedShipmentResponse is the public view returned by tracking code.
type TrackedShipmentResponse struct {
	TrackingID      string  `json:"tracking_id"`
	ReceiverName    string  `json:"reciver_name"`
	Status          string  `json:"status"`
	ReceiverAddress string  `json:"reciver_address"`
	SenderAddress   string  `json:"sender_address"`
	SenderLatitude  float64 `json:"sender_latitude"`
	SenderLongitude float64 `json:"sender_longitude"`
}

type TrackedLocationResponse struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
}

type TrackingResponse struct {
	Shipment  TrackedShipmentResponse   `json:"shipment"`
	Locations []TrackedLocationResponse `json:"locations"`
}

type StatusUpdatedResponse struct {
	Message  string           `json:"message"`
	Shipment ShipmentResponse `json:"shipment"`
}

type LocationUpsertedResponse struct {
	Message  string           `json:"message"`
	Location LocationResponse `json:"location"`
}

type SignUpResponse struct {
	Message string `json:"message"`
	Role    string `json:"role"`
	UserID  int64  `json:"userId"`
}

type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	RoleID   int64  `json:"role_id"`
}

type SignInResponse struct {
	Message   string       `json:"message"`
	User      UserResponse `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
}

func toShipmentResponse(s *shipment.Shipment) ShipmentResponse {
	return ShipmentResponse{
		ID:              s.ID().Int64(),
		TrackingID:      s.TrackingCode().String(),
		SenderID:        s.SenderID().Int64(),
		ReceiverName:    s.ReceiverName(),
		ReceiverAddress: s.ReceiverAddress(),
		SenderAddress:   s.SenderAddress(),
		SenderLatitude:  s.SenderCoordinates().Latitude(),
		SenderLongitude: s.SenderCoordinates().Longitude(),
		Status:          s.Status().String(),
		CreatedAt:       s.CreatedAt(),
		UpdatedAt:       s.UpdatedAt(),
	}
}

func toShipmentViewResponse(v queries.ShipmentView) ShipmentResponse {
	return ShipmentResponse{
		ID:              v.ID,
		TrackingID:      v.TrackingCode,
		SenderID:        v.SenderID,
		ReceiverName:    v.ReceiverName,
		ReceiverAddress: v.ReceiverAddress,
		SenderAddress:   v.SenderAddress,
		SenderLatitude:  v.SenderLatitude,
		SenderLongitude: v.SenderLongitude,
		Status:          v.Status.String(),
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
		Sender:          &SenderResponse{Username: v.SenderUsername},
	}
}

func toLocationResponse(r *location.Record) LocationResponse {
	return LocationResponse{
		ID:         r.ID().Int64(),
		ShipmentID: r.ShipmentID().Int64(),
		Latitude:   r.Coordinates().Latitude(),
		Longitude:  r.Coordinates().Longitude(),
		Timestamp:  r.Timestamp(),
	}
}

func toTrackingResponse(resp queries.GetShipmentByTrackingCodeQueryResponse) TrackingResponse {
	locations := make([]TrackedLocationResponse, len(resp.Locations))
	for i, l := range resp.Locations {
		locations[i] = TrackedLocationResponse{
			Latitude:  l.Latitude,
			Longitude: l.Longitude,
			Timestamp: l.Timestamp,
		}
	}

	return TrackingResponse{
		Shipment: TrackedShipmentResponse{
			TrackingID:      resp.Shipment.TrackingCode,
			ReceiverName:    resp.Shipment.ReceiverName,
			Status:          resp.Shipment.Status.String(),
			ReceiverAddress: resp.Shipment.ReceiverAddress,
			SenderAddress:   resp.Shipment.SenderAddress,
			SenderLatitude:  resp.Shipment.SenderLatitude,
			SenderLongitude: resp.Shipment.SenderLongitude,
		},
		Locations: locations,
	}
}

func toUserResponse(u *identity.User) UserResponse {
	return UserResponse{
		ID:       u.ID().Int64(),
		Username: u.Username(),
		Email:    u.Email(),
		RoleID:   u.RoleID().Int64(),
	}
}
