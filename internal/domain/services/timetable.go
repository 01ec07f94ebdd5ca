package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ersonp/timetable-sync/internal/domain/entities"
	"github.com/ersonp/timetable-sync/internal/domain/ports"
)

// ErrNoFacultyRecord means the signed-in user has no matching faculty entry.
var ErrNoFacultyRecord = errors.New("no faculty record matches the signed-in user")

// TimetableService reads the official timetable and its derived views.
type TimetableService struct {
	api      ports.TimetableAPI
	identity ports.IdentityResolver
}

// NewTimetableService creates a new TimetableService.
func NewTimetableService(api ports.TimetableAPI, identity ports.IdentityResolver) *TimetableService {
	return &TimetableService{
		api:      api,
		identity: identity,
	}
}

// Official returns the published timetable, or nil when none is available.
func (s *TimetableService) Official(ctx context.Context) (*entities.OfficialTimetable, error) {
	official, err := s.api.GetOfficialTimetable(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching official timetable: %w", err)
	}
	return official, nil
}

// MySlotsResult is the signed-in faculty member's share of the official timetable.
type MySlotsResult struct {
	Faculty entities.Faculty
	Slots   []entities.TimeSlot
}

// MySlots joins the signed-in user's email to a faculty record and returns their slots.
func (s *TimetableService) MySlots(ctx context.Context) (*MySlotsResult, error) {
	email, err := s.identity.Email(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolving identity: %w", err)
	}
	if email == "" {
		return nil, ports.ErrUnauthenticated
	}

	official, err := s.Official(ctx)
	if err != nil {
		return nil, err
	}
	if official == nil {
		return nil, errors.New("no official timetable has been published yet")
	}

	faculty, ok := official.FindFacultyByEmail(email)
	if !ok {
		return nil, fmt.Errorf("%w (%s)", ErrNoFacultyRecord, email)
	}

	return &MySlotsResult{
		Faculty: faculty,
		Slots:   official.SlotsForFaculty(faculty.ID),
	}, nil
}

// Analytics returns timetable analytics, or nil when unavailable.
func (s *TimetableService) Analytics(ctx context.Context) (*entities.Analytics, error) {
	analytics, err := s.api.Analytics(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching analytics: %w", err)
	}
	return analytics, nil
}

// FacultyMapping returns faculty-to-user links, empty when signed out.
func (s *TimetableService) FacultyMapping(ctx context.Context) ([]entities.FacultyMapping, error) {
	mapping, err := s.api.FacultyMapping(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching faculty mapping: %w", err)
	}
	if mapping == nil {
		mapping = []entities.FacultyMapping{}
	}
	return mapping, nil
}

// PublishOffline notifies faculty of their timetable. With no ids it notifies everyone.
func (s *TimetableService) PublishOffline(ctx context.Context, facultyIDs []string) (*entities.OfflinePublishResult, error) {
	var (
		result *entities.OfflinePublishResult
		err    error
	)
	if len(facultyIDs) == 0 {
		result, err = s.api.PublishOfflineAll(ctx)
	} else {
		result, err = s.api.PublishOffline(ctx, facultyIDs)
	}
	if err != nil {
		return nil, fmt.Errorf("publishing offline: %w", err)
	}
	return result, nil
}
