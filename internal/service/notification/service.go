package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/peoplecore/hrm-backend-go/internal/domain/leave"
	"github.com/peoplecore/hrm-backend-go/internal/domain/notification"
	"github.com/peoplecore/hrm-backend-go/internal/domain/user"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/sse"
)

// Service persists notifications, pushes them to connected SSE clients and
// queues email delivery. Delivery is best effort: a failed email publish is
// logged, never returned to the caller that triggered the event.
type Service struct {
	notification.Repository
	userRepository user.Repository
	hub            *sse.Hub
	publisher      notification.Publisher
	logger         *slog.Logger
}

func NewService(
	repository notification.Repository,
	userRepository user.Repository,
	hub *sse.Hub,
	publisher notification.Publisher,
	logger *slog.Logger,
) *Service {
	return &Service{
		Repository:     repository,
		userRepository: userRepository,
		hub:            hub,
		publisher:      publisher,
		logger:         logger,
	}
}

func (s *Service) ListForUser(ctx context.Context, userID string, unreadOnly bool) ([]notification.Notification, error) {
	return s.Repository.ListByUser(ctx, userID, unreadOnly)
}

func (s *Service) MarkRead(ctx context.Context, id, userID string) error {
	return s.Repository.MarkRead(ctx, id, userID)
}

func (s *Service) MarkAllRead(ctx context.Context, userID string) error {
	return s.Repository.MarkAllRead(ctx, userID)
}

// LeaveSubmitted notifies every manager that a request is waiting for review.
func (s *Service) LeaveSubmitted(ctx context.Context, request leave.Request) {
	managers, err := s.userRepository.ListByRole(ctx, user.RoleManager)
	if err != nil {
		s.logger.Error("failed to list managers for notification", slog.String("error", err.Error()))
		return
	}

	title := "Leave request submitted"
	message := fmt.Sprintf("A leave request for %s to %s is waiting for review",
		request.StartDate.Format("2006-01-02"), request.EndDate.Format("2006-01-02"))
	if request.PersonnelName != nil {
		message = fmt.Sprintf("%s requested leave from %s to %s",
			*request.PersonnelName, request.StartDate.Format("2006-01-02"), request.EndDate.Format("2006-01-02"))
	}

	for _, m := range managers {
		s.deliver(ctx, m, notification.KindLeaveSubmitted, title, message)
	}
}

// LeaveDecided notifies the requester of an approval or rejection.
func (s *Service) LeaveDecided(ctx context.Context, request leave.Request) {
	u, err := s.userRepository.GetByPersonnelID(ctx, request.PersonnelID)
	if err != nil {
		s.logger.Error("failed to resolve user for notification",
			slog.String("personnel_id", request.PersonnelID),
			slog.String("error", err.Error()))
		return
	}

	kind := notification.KindLeaveApproved
	title := "Leave request approved"
	message := fmt.Sprintf("Your leave from %s to %s was approved",
		request.StartDate.Format("2006-01-02"), request.EndDate.Format("2006-01-02"))
	if request.Status == leave.StatusRejected {
		kind = notification.KindLeaveRejected
		title = "Leave request rejected"
		message = fmt.Sprintf("Your leave from %s to %s was rejected",
			request.StartDate.Format("2006-01-02"), request.EndDate.Format("2006-01-02"))
		if request.RejectionReason != nil {
			message += ": " + *request.RejectionReason
		}
	}

	s.deliver(ctx, u, kind, title, message)
}

// ShiftAssigned notifies a personnel of a new shift assignment.
func (s *Service) ShiftAssigned(ctx context.Context, personnelID, shiftName, date string) {
	u, err := s.userRepository.GetByPersonnelID(ctx, personnelID)
	if err != nil {
		s.logger.Error("failed to resolve user for notification",
			slog.String("personnel_id", personnelID),
			slog.String("error", err.Error()))
		return
	}

	s.deliver(ctx, u, notification.KindShiftAssigned,
		"Shift assigned", fmt.Sprintf("You were assigned to %s on %s", shiftName, date))
}

func (s *Service) deliver(ctx context.Context, u user.User, kind notification.Kind, title, message string) {
	stored, err := s.Repository.Create(ctx, notification.Notification{
		UserID:  u.ID,
		Kind:    kind,
		Title:   title,
		Message: message,
	})
	if err != nil {
		s.logger.Error("failed to store notification", slog.String("error", err.Error()))
		return
	}

	s.hub.Publish(u.ID, sse.Event{
		UserID: u.ID,
		Event:  string(kind),
		Data:   stored,
	})

	if s.publisher != nil {
		err := s.publisher.PublishEmail(ctx, notification.EmailMessage{
			To:      u.Email,
			Subject: title,
			Body:    message,
		})
		if err != nil {
			s.logger.Error("failed to queue notification email", slog.String("error", err.Error()))
		}
	}
}
