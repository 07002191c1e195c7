package jobs

import (
	"context"
	"errors"
	"testing"

	"github.com/KirkDiggler/arcade/internal/services/admin"
	adminMocks "github.com/KirkDiggler/arcade/internal/services/admin/mocks"
	"github.com/KirkDiggler/arcade/internal/services/session"
	sessionMocks "github.com/KirkDiggler/arcade/internal/services/session/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SchedulerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockRegistry *sessionMocks.MockRegistry
	mockAdmin    *adminMocks.MockService
	ctx          context.Context
}

func (s *SchedulerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRegistry = sessionMocks.NewMockRegistry(s.ctrl)
	s.mockAdmin = adminMocks.NewMockService(s.ctrl)
	s.ctx = context.Background()
}

func (s *SchedulerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestSchedulerSuite(t *testing.T) {
	suite.Run(t, new(SchedulerTestSuite))
}

func (s *SchedulerTestSuite) newScheduler() *Scheduler {
	sched, err := NewScheduler(&Config{Registry: s.mockRegistry, Admin: s.mockAdmin})
	s.Require().NoError(err)
	return sched
}

func (s *SchedulerTestSuite) TestNewValidation() {
	_, err := NewScheduler(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = NewScheduler(&Config{Admin: s.mockAdmin})
	s.ErrorIs(err, ErrNilRegistry)

	_, err = NewScheduler(&Config{Registry: s.mockRegistry})
	s.ErrorIs(err, ErrNilAdmin)

	_, err = NewScheduler(&Config{Registry: s.mockRegistry, Admin: s.mockAdmin, SweepSpec: "not a schedule"})
	s.Error(err)
}

func (s *SchedulerTestSuite) TestJobsRegistered() {
	sched := s.newScheduler()
	s.Len(sched.cron.Entries(), 2)
}

func (s *SchedulerTestSuite) TestSweep() {
	s.mockRegistry.EXPECT().Sweep(s.ctx).Return(&session.SweepOutput{Expired: 2}, nil)
	s.newScheduler().Sweep(s.ctx)
}

func (s *SchedulerTestSuite) TestSweepErrorIsLogged() {
	s.mockRegistry.EXPECT().Sweep(s.ctx).Return(nil, errors.New("boom"))
	s.newScheduler().Sweep(s.ctx)
}

func (s *SchedulerTestSuite) TestReport() {
	s.mockAdmin.EXPECT().Stats(s.ctx).Return(&admin.StatsOutput{Users: 12, ActiveSessions: 3}, nil)
	s.newScheduler().Report(s.ctx)
}

func (s *SchedulerTestSuite) TestStartStop() {
	sched := s.newScheduler()
	sched.Start()
	sched.Stop()
}
