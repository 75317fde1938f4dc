package jobs_test

import (
	"errors"
	"testing"

	"shipping/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockJob struct {
	mock.Mock
}

func (m *MockJob) Name() string {
	return m.Called().String(0)
}

func (m *MockJob) Start() error {
	return m.Called().Error(0)
}

func (m *MockJob) Stop() {
	m.Called()
}

func TestJobManager_StartAllAndStopAll(t *testing.T) {
	first, second := new(MockJob), new(MockJob)
	mock.InOrder(
		first.On("Start").Return(nil).Once(),
		second.On("Start").Return(nil).Once(),
		second.On("Stop").Once(),
		first.On("Stop").Once(),
	)

	manager := jobs.NewJobManager(zap.NewNop(), first, second)

	require.NoError(t, manager.StartAll())
	manager.StopAll()
	manager.StopAll()

	first.AssertExpectations(t)
	second.AssertExpectations(t)
}

func TestJobManager_StartAll_FailureStopsStartedJobs(t *testing.T) {
	first, second := new(MockJob), new(MockJob)
	first.On("Start").Return(nil).Once()
	first.On("Stop").Once()
	second.On("Start").Return(errors.New("bad schedule")).Once()
	second.On("Name").Return("second job")

	manager := jobs.NewJobManager(zap.NewNop(), first, second)

	err := manager.StartAll()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to start second job")
	first.AssertExpectations(t)
	second.AssertNotCalled(t, "Stop")
}
