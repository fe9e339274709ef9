// internal/services/noc_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bsfdc/film-portal-backend/internal/models"
)

func TestDecisionOutcome(t *testing.T) {
	event, target, msg := decisionOutcome("approve")
	assert.Equal(t, models.NOCEventApprove, event)
	assert.Equal(t, models.NOCStatusApproved, target)
	assert.Equal(t, "application cannot be approved", msg)

	event, target, msg = decisionOutcome("reject")
	assert.Equal(t, models.NOCEventReject, event)
	assert.Equal(t, models.NOCStatusRejected, target)
	assert.Equal(t, "application cannot be rejected", msg)
}
