package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"strawberryroute/internal/models"
	"strawberryroute/internal/repositories"
	"strawberryroute/pkg/rabbitmq"
)

// Errors surfaced by VisitService.
var (
	ErrMissingVisitFields = errors.New("all visit fields are required")
	ErrInvalidVisitDate   = errors.New("invalid visit date")
)

// VisitPublisher publishes visit lifecycle events.
type VisitPublisher interface {
	PublishVisitScheduled(event rabbitmq.VisitEvent) error
}

// VisitService owns the visit request lifecycle: public submission and
// owner-scoped listing. Every submission enters the PENDING state; the
// CONFIRMED and CANCELLED states are declared but no operation reaches them yet.
type VisitService struct {
	visitRepo    repositories.VisitRepository
	producerRepo repositories.ProducerRepository
	publisher    VisitPublisher
}

// NewVisitService creates a new VisitService.
func NewVisitService(visitRepo repositories.VisitRepository, producerRepo repositories.ProducerRepository, publisher VisitPublisher) *VisitService {
	return &VisitService{
		visitRepo:    visitRepo,
		producerRepo: producerRepo,
		publisher:    publisher,
	}
}

// ScheduleVisit creates a PENDING visit request against an existing producer.
// Submission is public; no authentication is involved. Past dates and repeat
// bookings for the same producer and date are accepted.
func (s *VisitService) ScheduleVisit(producerID uint, name, email, phone, date string) (*models.Visit, error) {
	if name == "" || email == "" || phone == "" || date == "" || producerID == 0 {
		return nil, ErrMissingVisitFields
	}

	visitDate, err := parseVisitDate(date)
	if err != nil {
		return nil, ErrInvalidVisitDate
	}

	producer, err := s.producerRepo.GetByID(producerID)
	if err != nil {
		return nil, err
	}

	visit := &models.Visit{
		Name:       name,
		Email:      email,
		Phone:      phone,
		Date:       visitDate,
		Status:     models.VisitPending,
		ProducerID: producer.ID,
	}
	if err := s.visitRepo.Create(visit); err != nil {
		return nil, fmt.Errorf("failed to create visit in repository: %w", err)
	}

	if s.publisher != nil {
		event := rabbitmq.VisitEvent{
			VisitID:    visit.ID,
			ProducerID: visit.ProducerID,
			Name:       visit.Name,
			Email:      visit.Email,
			Date:       visit.Date.Format(time.RFC3339),
			Status:     string(visit.Status),
		}
		if err := s.publisher.PublishVisitScheduled(event); err != nil {
			log.Printf("Warning: Failed to publish visit scheduled event for visit %d: %v", visit.ID, err)
		}
	} else {
		log.Println("Visit event publisher is not initialized. Skipping message publication.")
	}

	return visit, nil
}

// ListVisitsForProducer returns the visit requests owned by the caller's
// producer profile, ordered by requested date ascending. The profile is always
// resolved from the authenticated user's id, never from client input.
func (s *VisitService) ListVisitsForProducer(userID uint) ([]models.Visit, error) {
	producer, err := s.producerRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	return s.visitRepo.GetByProducerID(producer.ID)
}

// parseVisitDate accepts a plain calendar date or a full RFC 3339 timestamp.
func parseVisitDate(date string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", date); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, date)
}
