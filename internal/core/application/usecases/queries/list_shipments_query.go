package queries

import (
	"errors"

	"shipping/internal/core/domain/model/identity"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrListShipmentsQueryIsNotConstructed = errors.New(
	"ListShipmentsQuery must be created via NewListShipmentsQuery constructor",
)

// ListShipmentsQuery lists the shipments visible to the requester.
//
// Administrators see every shipment and the sender filter is ignored. Other
// users see only their own shipments; naming another sender is refused.
//
// Example:
//
//	query, err := NewListShipmentsQuery(principal, 0)
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, query)
//	if result.NotFoundHint {
//	    // the caller has not created any shipment yet
//	}
type ListShipmentsQuery struct {
	requester identity.Principal
	senderID  kernel.ID

	guard guard.ConstructorGuard
}

// NewListShipmentsQuery builds the query. senderID zero means "no filter".
func NewListShipmentsQuery(requester identity.Principal, senderID int64) (ListShipmentsQuery, error) {
	if senderID < 0 {
		return ListShipmentsQuery{}, errs.NewValueIsInvalidError("sender_id")
	}

	return ListShipmentsQuery{
		requester: requester,
		senderID:  kernel.ID(senderID),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q ListShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrListShipmentsQueryIsNotConstructed)
}

func (q ListShipmentsQuery) Requester() identity.Principal {
	return q.requester
}

// SenderID is the requested filter, zero when absent.
func (q ListShipmentsQuery) SenderID() kernel.ID {
	return q.senderID
}

// ListShipmentsQueryResponse carries the visible shipments. NotFoundHint is set
// when a non-administrator has no shipment at all; it is not an error.
type ListShipmentsQueryResponse struct {
	Shipments    []ShipmentView
	NotFoundHint bool
}
