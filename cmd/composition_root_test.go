package cmd

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newTestRoot(t *testing.T) *CompositionRoot {
	t.Helper()
	conn, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	gormDB, err := gorm.Open(postgresdriver.New(postgresdriver.Config{Conn: conn}), &gorm.Config{})
	require.NoError(t, err)

	root, err := NewCompositionRoot(Config{
		JWTSecret:           "secret",
		JWTTTL:              time.Hour,
		StatusTickInterval:  time.Minute,
		StatusTransitDelay:  30 * time.Minute,
		StatusDeliveryDelay: 30 * time.Minute,
		CORSAllowedOrigin:   "http://localhost:5173",
	}, gormDB, zap.NewNop())
	require.NoError(t, err)
	return root
}

func TestCompositionRoot_RegistersRoutes(t *testing.T) {
	root := newTestRoot(t)

	e, err := root.CreateRouter(context.Background())
	require.NoError(t, err)

	registered := map[string]bool{}
	for _, r := range e.Routes() {
		registered[r.Method+" "+r.Path] = true
	}
	for _, want := range []string{
		http.MethodPost + " /api/shipping",
		http.MethodGet + " /api/shipping",
		http.MethodGet + " /api/shipping/:tracking_id",
		http.MethodPut + " /api/shipping/:id/status",
		http.MethodDelete + " /api/shipping/:id",
		http.MethodPost + " /api/shipping/:id/location",
		http.MethodPost + " /api/signup",
		http.MethodPost + " /api/login",
		http.MethodGet + " /metrics",
		http.MethodGet + " /health",
	} {
		assert.True(t, registered[want], want)
	}
}

func TestCompositionRoot_JobManagerStartsAndStops(t *testing.T) {
	root := newTestRoot(t)
	manager := root.CreateJobManager()

	require.NoError(t, manager.StartAll())
	manager.StopAll()
}

func TestNewCompositionRoot_RejectsBadConfig(t *testing.T) {
	_, err := NewCompositionRoot(Config{JWTSecret: "", StatusTransitDelay: time.Minute, StatusDeliveryDelay: time.Minute},
		nil, zap.NewNop())
	assert.Error(t, err)

	_, err = NewCompositionRoot(Config{JWTSecret: "s"}, nil, zap.NewNop())
	assert.Error(t, err)
}
