package services_test

import (
	"testing"
	"time"

	"strawberryroute/internal/models"
	"strawberryroute/internal/repositories"
	"strawberryroute/internal/services"
	"strawberryroute/pkg/rabbitmq"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockVisitRepository is a mock implementation of repositories.VisitRepository
type MockVisitRepository struct {
	mock.Mock
}

func (m *MockVisitRepository) Create(visit *models.Visit) error {
	args := m.Called(visit)
	return args.Error(0)
}

func (m *MockVisitRepository) GetByProducerID(producerID uint) ([]models.Visit, error) {
	args := m.Called(producerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Visit), args.Error(1)
}

// MockProducerRepository is a mock implementation of repositories.ProducerRepository
type MockProducerRepository struct {
	mock.Mock
}

func (m *MockProducerRepository) Create(producer *models.Producer) error {
	args := m.Called(producer)
	return args.Error(0)
}

func (m *MockProducerRepository) GetAll() ([]models.Producer, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Producer), args.Error(1)
}

func (m *MockProducerRepository) GetByID(id uint) (*models.Producer, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Producer), args.Error(1)
}

func (m *MockProducerRepository) GetByUserID(userID uint) (*models.Producer, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Producer), args.Error(1)
}

func (m *MockProducerRepository) Update(producer *models.Producer) error {
	args := m.Called(producer)
	return args.Error(0)
}

// MockVisitPublisher is a mock implementation of services.VisitPublisher
type MockVisitPublisher struct {
	mock.Mock
}

func (m *MockVisitPublisher) PublishVisitScheduled(event rabbitmq.VisitEvent) error {
	args := m.Called(event)
	return args.Error(0)
}

func TestVisitService_ScheduleVisit(t *testing.T) {
	producer := &models.Producer{ID: 1, UserID: 7, Name: "João Silva"}

	t.Run("missing fields are rejected before any lookup", func(t *testing.T) {
		visitRepo := new(MockVisitRepository)
		producerRepo := new(MockProducerRepository)
		svc := services.NewVisitService(visitRepo, producerRepo, nil)

		_, err := svc.ScheduleVisit(1, "", "ana@x.com", "123", "2025-01-01")
		assert.ErrorIs(t, err, services.ErrMissingVisitFields)
		_, err = svc.ScheduleVisit(0, "Ana", "ana@x.com", "123", "2025-01-01")
		assert.ErrorIs(t, err, services.ErrMissingVisitFields)
		producerRepo.AssertNotCalled(t, "GetByID")
		visitRepo.AssertNotCalled(t, "Create")
	})

	t.Run("unparseable date is rejected", func(t *testing.T) {
		visitRepo := new(MockVisitRepository)
		producerRepo := new(MockProducerRepository)
		svc := services.NewVisitService(visitRepo, producerRepo, nil)

		_, err := svc.ScheduleVisit(1, "Ana", "ana@x.com", "123", "next tuesday")
		assert.ErrorIs(t, err, services.ErrInvalidVisitDate)
		visitRepo.AssertNotCalled(t, "Create")
	})

	t.Run("unknown producer is rejected", func(t *testing.T) {
		visitRepo := new(MockVisitRepository)
		producerRepo := new(MockProducerRepository)
		svc := services.NewVisitService(visitRepo, producerRepo, nil)

		producerRepo.On("GetByID", uint(99)).Return(nil, repositories.ErrProducerNotFound).Once()
		_, err := svc.ScheduleVisit(99, "Ana", "ana@x.com", "123", "2025-01-01")
		assert.ErrorIs(t, err, repositories.ErrProducerNotFound)
		producerRepo.AssertExpectations(t)
		visitRepo.AssertNotCalled(t, "Create")
	})

	t.Run("valid submission enters PENDING and publishes an event", func(t *testing.T) {
		visitRepo := new(MockVisitRepository)
		producerRepo := new(MockProducerRepository)
		publisher := new(MockVisitPublisher)
		svc := services.NewVisitService(visitRepo, producerRepo, publisher)

		producerRepo.On("GetByID", uint(1)).Return(producer, nil).Once()
		visitRepo.On("Create", mock.AnythingOfType("*models.Visit")).Run(func(args mock.Arguments) {
			args.Get(0).(*models.Visit).ID = 42
		}).Return(nil).Once()
		publisher.On("PublishVisitScheduled", mock.MatchedBy(func(e rabbitmq.VisitEvent) bool {
			return e.VisitID == 42 && e.ProducerID == 1 && e.Name == "Ana" && e.Status == "PENDING"
		})).Return(nil).Once()

		visit, err := svc.ScheduleVisit(1, "Ana", "ana@x.com", "123", "2025-01-01")
		assert.NoError(t, err)
		assert.Equal(t, models.VisitPending, visit.Status)
		assert.Equal(t, uint(1), visit.ProducerID)
		assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), visit.Date)
		visitRepo.AssertExpectations(t)
		producerRepo.AssertExpectations(t)
		publisher.AssertExpectations(t)
	})

	t.Run("past dates are accepted and still enter PENDING", func(t *testing.T) {
		visitRepo := new(MockVisitRepository)
		producerRepo := new(MockProducerRepository)
		svc := services.NewVisitService(visitRepo, producerRepo, nil)

		producerRepo.On("GetByID", uint(1)).Return(producer, nil).Once()
		visitRepo.On("Create", mock.AnythingOfType("*models.Visit")).Return(nil).Once()

		visit, err := svc.ScheduleVisit(1, "Ana", "ana@x.com", "123", "1999-12-31")
		assert.NoError(t, err)
		assert.Equal(t, models.VisitPending, visit.Status)
	})

	t.Run("publish failure does not fail the submission", func(t *testing.T) {
		visitRepo := new(MockVisitRepository)
		producerRepo := new(MockProducerRepository)
		publisher := new(MockVisitPublisher)
		svc := services.NewVisitService(visitRepo, producerRepo, publisher)

		producerRepo.On("GetByID", uint(1)).Return(producer, nil).Once()
		visitRepo.On("Create", mock.AnythingOfType("*models.Visit")).Return(nil).Once()
		publisher.On("PublishVisitScheduled", mock.Anything).Return(assert.AnError).Once()

		visit, err := svc.ScheduleVisit(1, "Ana", "ana@x.com", "123", "2025-01-01")
		assert.NoError(t, err)
		assert.NotNil(t, visit)
	})
}

func TestVisitService_ListVisitsForProducer(t *testing.T) {
	producer := &models.Producer{ID: 1, UserID: 7}
	visits := []models.Visit{
		{ID: 1, Name: "Ana", Date: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), Status: models.VisitPending, ProducerID: 1},
		{ID: 2, Name: "Bruno", Date: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), Status: models.VisitPending, ProducerID: 1},
	}

	t.Run("resolves the profile from the caller's user id", func(t *testing.T) {
		visitRepo := new(MockVisitRepository)
		producerRepo := new(MockProducerRepository)
		svc := services.NewVisitService(visitRepo, producerRepo, nil)

		producerRepo.On("GetByUserID", uint(7)).Return(producer, nil).Twice()
		visitRepo.On("GetByProducerID", uint(1)).Return(visits, nil).Twice()

		got, err := svc.ListVisitsForProducer(7)
		assert.NoError(t, err)
		assert.Equal(t, visits, got)

		// Listing is idempotent: a second call returns the same sequence.
		again, err := svc.ListVisitsForProducer(7)
		assert.NoError(t, err)
		assert.Equal(t, got, again)
		producerRepo.AssertExpectations(t)
		visitRepo.AssertExpectations(t)
	})

	t.Run("user without a profile gets the not-found sentinel", func(t *testing.T) {
		visitRepo := new(MockVisitRepository)
		producerRepo := new(MockProducerRepository)
		svc := services.NewVisitService(visitRepo, producerRepo, nil)

		producerRepo.On("GetByUserID", uint(8)).Return(nil, repositories.ErrProducerNotFound).Once()
		_, err := svc.ListVisitsForProducer(8)
		assert.ErrorIs(t, err, repositories.ErrProducerNotFound)
		visitRepo.AssertNotCalled(t, "GetByProducerID")
	})
}
