// internal/services/timeline.go
package services

import (
	"time"

	"github.com/bsfdc/film-portal-backend/internal/models"
)

// TimelineStep is one display row of an application's progress.
type TimelineStep struct {
	Title       string               `json:"title"`
	State       models.TimelineState `json:"state"`
	Timestamp   *time.Time           `json:"timestamp,omitempty"`
	Remarks     string               `json:"remarks,omitempty"`
	Districts   []string             `json:"districts,omitempty"`
	Departments []string             `json:"departments,omitempty"`
}

// BuildTimeline derives the display steps for an application from its
// current status and recorded action timestamps. It is a pure projection:
// the same application always yields the same steps, and it never touches
// the stored record.
func BuildTimeline(application *models.NOCApplication) []TimelineStep {
	steps := make([]TimelineStep, 0, 4)

	submittedAt := application.CreatedAt
	steps = append(steps, TimelineStep{
		Title:     "Application Submitted",
		State:     models.TimelineStateCompleted,
		Timestamp: &submittedAt,
	})

	review := TimelineStep{Title: "Under Review"}
	if application.Status != models.NOCStatusSubmitted {
		review.State = models.TimelineStateCompleted
		review.Timestamp = application.AdminActionAt
		review.Remarks = application.AdminRemarks
	} else {
		review.State = models.TimelineStatePending
	}
	steps = append(steps, review)

	forward := TimelineStep{Title: "Forwarded to District"}
	switch {
	case application.Status.PastReview():
		forward.State = models.TimelineStateCompleted
		forward.Timestamp = application.ForwardedAt
	case application.Status == models.NOCStatusUnderReview:
		forward.State = models.TimelineStateCurrent
	default:
		forward.State = models.TimelineStatePending
	}
	for _, d := range application.ForwardedDistricts {
		forward.Districts = append(forward.Districts, d.Name)
	}
	for _, d := range application.ForwardedDepartments {
		forward.Departments = append(forward.Departments, d.Name)
	}
	steps = append(steps, forward)

	// The terminal step only appears once the application has left review.
	switch application.Status {
	case models.NOCStatusApproved:
		steps = append(steps, TimelineStep{
			Title:     "Approved by District Admin",
			State:     models.TimelineStateCompleted,
			Timestamp: application.DistrictActionAt,
			Remarks:   application.DistrictRemarks,
		})
	case models.NOCStatusRejected:
		steps = append(steps, TimelineStep{
			Title:     "Rejected",
			State:     models.TimelineStateRejected,
			Timestamp: application.DistrictActionAt,
			Remarks:   application.DistrictRemarks,
		})
	case models.NOCStatusForwarded:
		steps = append(steps, TimelineStep{
			Title: "Awaiting District Decision",
			State: models.TimelineStateCurrent,
		})
	}

	return steps
}
