package handlers

import (
	"context"
	"errors"

	"github.com/ersonp/timetable-sync/internal/domain/entities"
	"github.com/ersonp/timetable-sync/internal/domain/services"
)

// ErrNoOfflineTarget means neither faculty ids nor "all" were given.
var ErrNoOfflineTarget = errors.New("specify faculty ids or request all faculty")

// TimetableHandler handles reads of the official timetable.
type TimetableHandler struct {
	service *services.TimetableService
}

// NewTimetableHandler creates a new TimetableHandler.
func NewTimetableHandler(service *services.TimetableService) *TimetableHandler {
	return &TimetableHandler{
		service: service,
	}
}

// HandleOfficial returns the published timetable, or nil if there is none.
func (h *TimetableHandler) HandleOfficial(ctx context.Context) (*entities.OfficialTimetable, error) {
	return h.service.Official(ctx)
}

// HandleMine returns the signed-in faculty member's slots.
func (h *TimetableHandler) HandleMine(ctx context.Context) (*services.MySlotsResult, error) {
	return h.service.MySlots(ctx)
}

// HandleAnalytics returns timetable analytics, or nil when unavailable.
func (h *TimetableHandler) HandleAnalytics(ctx context.Context) (*entities.Analytics, error) {
	return h.service.Analytics(ctx)
}

// HandleFacultyMapping returns faculty-to-user links.
func (h *TimetableHandler) HandleFacultyMapping(ctx context.Context) ([]entities.FacultyMapping, error) {
	return h.service.FacultyMapping(ctx)
}

// HandlePublishOffline notifies the given faculty, or everyone when all is set.
// Asking for neither is an error so nobody is notified by accident.
func (h *TimetableHandler) HandlePublishOffline(ctx context.Context, facultyIDs []string, all bool) (*entities.OfflinePublishResult, error) {
	switch {
	case all && len(facultyIDs) > 0:
		return nil, errors.New("faculty ids and all are mutually exclusive")
	case all:
		return h.service.PublishOffline(ctx, nil)
	case len(facultyIDs) == 0:
		return nil, ErrNoOfflineTarget
	default:
		return h.service.PublishOffline(ctx, facultyIDs)
	}
}

// officialBase returns the published payload, or an empty one before the first publish.
func (h *TimetableHandler) officialBase(ctx context.Context) (entities.TimetablePayload, error) {
	official, err := h.service.Official(ctx)
	if err != nil {
		return entities.TimetablePayload{}, err
	}
	if official == nil {
		return entities.EmptyPayload(), nil
	}
	return official.TimetablePayload, nil
}
