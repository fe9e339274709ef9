// internal/services/timeline_test.go
package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bsfdc/film-portal-backend/internal/models"
)

func timelineFixture(status models.NOCStatus) *models.NOCApplication {
	app := &models.NOCApplication{Status: status}
	app.CreatedAt = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	if status.PastReview() {
		actionAt := app.CreatedAt.Add(48 * time.Hour)
		app.AdminActionAt = &actionAt
		app.AdminRemarks = "Documents verified"
		app.ForwardedAt = &actionAt
		app.ForwardedDistricts = []models.District{{Name: "Patna"}, {Name: "Gaya"}}
	}
	if status.IsTerminal() {
		decidedAt := app.CreatedAt.Add(96 * time.Hour)
		app.DistrictActionAt = &decidedAt
		app.DistrictRemarks = "No objection"
	}

	return app
}

func stepTitles(steps []TimelineStep) []string {
	titles := make([]string, 0, len(steps))
	for _, s := range steps {
		titles = append(titles, s.Title)
	}
	return titles
}

func TestBuildTimelineSubmitted(t *testing.T) {
	steps := BuildTimeline(timelineFixture(models.NOCStatusSubmitted))

	assert.Len(t, steps, 3)
	assert.Equal(t, []string{
		"Application Submitted",
		"Under Review",
		"Forwarded to District",
	}, stepTitles(steps))

	assert.Equal(t, models.TimelineStateCompleted, steps[0].State)
	assert.NotNil(t, steps[0].Timestamp)
	assert.Equal(t, models.TimelineStatePending, steps[1].State)
	assert.Equal(t, models.TimelineStatePending, steps[2].State)
}

func TestBuildTimelineUnderReview(t *testing.T) {
	steps := BuildTimeline(timelineFixture(models.NOCStatusUnderReview))

	assert.Len(t, steps, 3)
	assert.Equal(t, models.TimelineStateCompleted, steps[0].State)
	assert.Equal(t, models.TimelineStateCompleted, steps[1].State)
	assert.Equal(t, models.TimelineStateCurrent, steps[2].State)
}

func TestBuildTimelineForwarded(t *testing.T) {
	app := timelineFixture(models.NOCStatusForwarded)
	steps := BuildTimeline(app)

	assert.Equal(t, models.TimelineStateCompleted, steps[0].State)
	assert.Equal(t, models.TimelineStateCompleted, steps[1].State)
	assert.Equal(t, "Documents verified", steps[1].Remarks)
	assert.Equal(t, models.TimelineStateCompleted, steps[2].State)
	assert.Equal(t, app.ForwardedAt, steps[2].Timestamp)
	assert.Equal(t, []string{"Patna", "Gaya"}, steps[2].Districts)
	assert.Equal(t, "Awaiting District Decision", steps[3].Title)
	assert.Equal(t, models.TimelineStateCurrent, steps[3].State)
}

func TestBuildTimelineApproved(t *testing.T) {
	app := timelineFixture(models.NOCStatusApproved)
	steps := BuildTimeline(app)

	assert.Equal(t, "Approved by District Admin", steps[3].Title)
	assert.Equal(t, models.TimelineStateCompleted, steps[3].State)
	assert.Equal(t, app.DistrictActionAt, steps[3].Timestamp)
	assert.Equal(t, "No objection", steps[3].Remarks)

	for _, step := range steps[:3] {
		assert.Equal(t, models.TimelineStateCompleted, step.State)
	}
}

func TestBuildTimelineRejected(t *testing.T) {
	app := timelineFixture(models.NOCStatusRejected)
	steps := BuildTimeline(app)

	assert.Equal(t, "Rejected", steps[3].Title)
	assert.Equal(t, models.TimelineStateRejected, steps[3].State)
	assert.Equal(t, "No objection", steps[3].Remarks)
}

func TestBuildTimelineIsPure(t *testing.T) {
	app := timelineFixture(models.NOCStatusForwarded)

	first := BuildTimeline(app)
	second := BuildTimeline(app)

	assert.Equal(t, first, second)
	assert.Equal(t, models.NOCStatusForwarded, app.Status)
	assert.Equal(t, "Documents verified", app.AdminRemarks)
}
