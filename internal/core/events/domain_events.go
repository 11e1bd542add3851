package events

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

const (
	EmployeeCreated   = "employee.created"
	TaskCreated       = "task.created"
	ProjectCreated    = "project.created"
	VacationRequested = "vacation.requested"
	VacationUpdated   = "vacation.updated"
	DetourRecorded    = "detour.recorded"
)

func newEvent(eventType string, data map[string]interface{}) BaseEvent {
	return BaseEvent{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now(),
		Data:      data,
	}
}

func NewEmployeeCreated(dni, department string) Event {
	return newEvent(EmployeeCreated, map[string]interface{}{
		"dni":        dni,
		"department": department,
	})
}

func NewTaskCreated(employeeDNI string, projectID int64) Event {
	return newEvent(TaskCreated, map[string]interface{}{
		"employee_dni": employeeDNI,
		"project_id":   projectID,
	})
}

func NewProjectCreated(projectID, proposalID int64) Event {
	return newEvent(ProjectCreated, map[string]interface{}{
		"project_id":  projectID,
		"proposal_id": proposalID,
	})
}

func NewVacationRequested(employeeDNI string, requestedDays int) Event {
	return newEvent(VacationRequested, map[string]interface{}{
		"employee_dni":   employeeDNI,
		"requested_days": requestedDays,
	})
}

func NewVacationUpdated(vacationID int64) Event {
	return newEvent(VacationUpdated, map[string]interface{}{
		"vacation_id": vacationID,
	})
}

func NewDetourRecorded(projectID int64, name string) Event {
	return newEvent(DetourRecorded, map[string]interface{}{
		"project_id": projectID,
		"name":       name,
	})
}

// RegisterAuditLogger subscribes a logging handler for every domain event
// type, forming the write-path audit trail.
func RegisterAuditLogger(bus *EventBus, logger *slog.Logger) {
	log := func(ctx context.Context, event Event) error {
		logger.Info("audit",
			"event_type", event.EventType(),
			"event_id", event.EventID(),
			"occurred_at", event.OccurredAt(),
			"payload", event.Payload())
		return nil
	}

	for _, eventType := range []string{
		EmployeeCreated,
		TaskCreated,
		ProjectCreated,
		VacationRequested,
		VacationUpdated,
		DetourRecorded,
	} {
		bus.Subscribe(eventType, log)
	}
}
