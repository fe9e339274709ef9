// internal/models/noc_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransitionTarget(t *testing.T) {
	tests := []struct {
		name    string
		from    NOCStatus
		event   NOCEvent
		want    NOCStatus
		allowed bool
	}{
		{"forward from submitted", NOCStatusSubmitted, NOCEventForward, NOCStatusForwarded, true},
		{"forward from under review", NOCStatusUnderReview, NOCEventForward, NOCStatusForwarded, true},
		{"approve from forwarded", NOCStatusForwarded, NOCEventApprove, NOCStatusApproved, true},
		{"reject from forwarded", NOCStatusForwarded, NOCEventReject, NOCStatusRejected, true},

		{"approve from submitted", NOCStatusSubmitted, NOCEventApprove, "", false},
		{"reject from submitted", NOCStatusSubmitted, NOCEventReject, "", false},
		{"forward from forwarded", NOCStatusForwarded, NOCEventForward, "", false},
		{"forward from approved", NOCStatusApproved, NOCEventForward, "", false},
		{"approve from approved", NOCStatusApproved, NOCEventApprove, "", false},
		{"reject from rejected", NOCStatusRejected, NOCEventReject, "", false},
		{"unknown event", NOCStatusSubmitted, NOCEvent("revoke"), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := TransitionTarget(tt.from, tt.event)
			assert.Equal(t, tt.allowed, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTerminalStatusesHaveNoOutgoingTransitions(t *testing.T) {
	events := []NOCEvent{NOCEventForward, NOCEventApprove, NOCEventReject}

	for _, status := range []NOCStatus{NOCStatusApproved, NOCStatusRejected} {
		for _, event := range events {
			_, ok := TransitionTarget(status, event)
			assert.False(t, ok, "no event should leave %s, but %s did", status, event)
		}
	}
}

func TestTransitionSources(t *testing.T) {
	assert.ElementsMatch(t,
		[]NOCStatus{NOCStatusSubmitted, NOCStatusUnderReview},
		TransitionSources(NOCEventForward))
	assert.ElementsMatch(t, []NOCStatus{NOCStatusForwarded}, TransitionSources(NOCEventApprove))
	assert.ElementsMatch(t, []NOCStatus{NOCStatusForwarded}, TransitionSources(NOCEventReject))
	assert.Nil(t, TransitionSources(NOCEvent("revoke")))
}

func TestTransitionSourcesAgreeWithTransitionTarget(t *testing.T) {
	all := []NOCStatus{
		NOCStatusSubmitted, NOCStatusUnderReview,
		NOCStatusForwarded, NOCStatusApproved, NOCStatusRejected,
	}

	for _, event := range []NOCEvent{NOCEventForward, NOCEventApprove, NOCEventReject} {
		sources := TransitionSources(event)
		for _, status := range all {
			_, allowed := TransitionTarget(status, event)
			assert.Equal(t, allowed, contains(sources, status),
				"event %s status %s", event, status)
		}
	}
}

func TestStatusPredicates(t *testing.T) {
	assert.False(t, NOCStatusSubmitted.IsTerminal())
	assert.False(t, NOCStatusUnderReview.IsTerminal())
	assert.False(t, NOCStatusForwarded.IsTerminal())
	assert.True(t, NOCStatusApproved.IsTerminal())
	assert.True(t, NOCStatusRejected.IsTerminal())

	assert.False(t, NOCStatusSubmitted.PastReview())
	assert.False(t, NOCStatusUnderReview.PastReview())
	assert.True(t, NOCStatusForwarded.PastReview())
	assert.True(t, NOCStatusApproved.PastReview())
	assert.True(t, NOCStatusRejected.PastReview())
}

func contains(statuses []NOCStatus, s NOCStatus) bool {
	for _, x := range statuses {
		if x == s {
			return true
		}
	}
	return false
}
