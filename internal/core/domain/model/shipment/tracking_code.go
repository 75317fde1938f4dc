package shipment

import (
	"fmt"
	"regexp"
	"strconv"
	"sync"
	"time"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

const trackingCodePrefix = "SHIP-"

var trackingCodePattern = regexp.MustCompile(`^SHIP-\d+$`)

// ErrTrackingCodeIsNotConstructed is returned when a zero-value TrackingCode is used.
var ErrTrackingCodeIsNotConstructed = errs.NewValueIsRequiredError(
	"tracking code must be created via ParseTrackingCode or TrackingCodeGenerator")

// TrackingCode is the externally shared shipment identifier, "SHIP-<epoch_ms>".
// It never changes once issued.
type TrackingCode struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// ParseTrackingCode validates a code received from a client or read from storage.
func ParseTrackingCode(value string) (TrackingCode, error) {
	if value == "" {
		return TrackingCode{}, errs.NewValueIsRequiredError("tracking_code")
	}
	if !trackingCodePattern.MatchString(value) {
		return TrackingCode{}, errs.NewValueIsInvalidErrorWithCause(
			"tracking_code",
			fmt.Errorf("%q does not match %s", value, trackingCodePattern),
		)
	}

	return TrackingCode{value: value, guard: guard.NewConstructorGuard()}, nil
}

func (c TrackingCode) Validate() error {
	return c.guard.Validate(ErrTrackingCodeIsNotConstructed)
}

func (c TrackingCode) String() string {
	return c.value
}

// TrackingCodeGenerator issues codes from creation time in milliseconds. Within
// one process the stamps are strictly increasing, so two shipments created in
// the same millisecond still get distinct codes.
type TrackingCodeGenerator struct {
	mu   sync.Mutex
	last int64
}

func NewTrackingCodeGenerator() *TrackingCodeGenerator {
	return &TrackingCodeGenerator{}
}

// Next returns the code for a shipment created at now.
func (g *TrackingCodeGenerator) Next(now time.Time) TrackingCode {
	g.mu.Lock()
	defer g.mu.Unlock()

	stamp := now.UnixMilli()
	if stamp <= g.last {
		stamp = g.last + 1
	}
	g.last = stamp

	return TrackingCode{
		value: trackingCodePrefix + strconv.FormatInt(stamp, 10),
		guard: guard.NewConstructorGuard(),
	}
}
