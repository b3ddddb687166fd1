package models

// Per-entity status transition allow-lists. Staff-driven status mutations go
// through CanTransitionTo before the record is touched; a jump outside the
// graph is rejected at the service layer. A transition to the current status
// is always allowed so partial updates that repeat the status are no-ops.

var projectTransitions = map[ProjectStatus][]ProjectStatus{
	ProjectStatusPlanning:   {ProjectStatusInProgress, ProjectStatusCompleted},
	ProjectStatusInProgress: {ProjectStatusCompleted, ProjectStatusPlanning},
	ProjectStatusCompleted:  {},
}

var contactTransitions = map[ContactStatus][]ContactStatus{
	ContactStatusNew:       {ContactStatusRead, ContactStatusResponded, ContactStatusArchived},
	ContactStatusRead:      {ContactStatusResponded, ContactStatusArchived},
	ContactStatusResponded: {ContactStatusArchived},
	ContactStatusArchived:  {},
}

var quoteTransitions = map[QuoteStatus][]QuoteStatus{
	QuoteStatusNew:       {QuoteStatusReviewing, QuoteStatusRejected},
	QuoteStatusReviewing: {QuoteStatusQuoted, QuoteStatusRejected},
	QuoteStatusQuoted:    {QuoteStatusAccepted, QuoteStatusRejected},
	QuoteStatusAccepted:  {QuoteStatusCompleted},
	QuoteStatusRejected:  {},
	QuoteStatusCompleted: {},
}

// Moderation is reversible: an approved testimonial can be pulled back and a
// rejected one reinstated.
var testimonialTransitions = map[TestimonialStatus][]TestimonialStatus{
	TestimonialStatusPending:  {TestimonialStatusApproved, TestimonialStatusRejected},
	TestimonialStatusApproved: {TestimonialStatusRejected},
	TestimonialStatusRejected: {TestimonialStatusApproved},
}

func canTransition[S comparable](graph map[S][]S, from, to S) bool {
	if from == to {
		return true
	}
	for _, next := range graph[from] {
		if next == to {
			return true
		}
	}
	return false
}

func (s ProjectStatus) CanTransitionTo(next ProjectStatus) bool {
	return canTransition(projectTransitions, s, next)
}

func (s ContactStatus) CanTransitionTo(next ContactStatus) bool {
	return canTransition(contactTransitions, s, next)
}

func (s QuoteStatus) CanTransitionTo(next QuoteStatus) bool {
	return canTransition(quoteTransitions, s, next)
}

func (s TestimonialStatus) CanTransitionTo(next TestimonialStatus) bool {
	return canTransition(testimonialTransitions, s, next)
}
