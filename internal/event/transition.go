package event

// Action is something done to an event that may change its status.
type Action string

const (
	ActionSubmit         Action = "submit"
	ActionApprove        Action = "approve"
	ActionReject         Action = "reject"
	ActionReportExpenses Action = "report expenses"
	ActionRequestFunds   Action = "request additional funds"
	ActionResolveFunds   Action = "resolve fund request"
	ActionComplete       Action = "complete"
	ActionAutoComplete   Action = "auto-complete"
	ActionSettle         Action = "settle"
	ActionCancel         Action = "cancel"
	ActionAutoCancel     Action = "auto-cancel"
	ActionEdit           Action = "edit"
	ActionDelete         Action = "delete"
	ActionExtendDate     Action = "extend date"
)

// transitions is the single authority on which action moves an event from
// which status to which. Every status mutation goes through Next so no code
// path can skip the shared guard and audit logging.
var transitions = map[Action]map[Status]Status{
	ActionSubmit: {
		StatusDraft:    StatusSubmitted,
		StatusRejected: StatusSubmitted,
	},
	ActionApprove: {
		StatusSubmitted: StatusFunded,
	},
	ActionReject: {
		StatusSubmitted: StatusRejected,
	},
	ActionReportExpenses: {
		StatusFunded: StatusOngoing,
	},
	ActionRequestFunds: {
		StatusFunded: StatusUnderReview,
	},
	ActionResolveFunds: {
		StatusUnderReview: StatusFunded,
	},
	ActionComplete: {
		StatusOngoing: StatusCompleted,
	},
	ActionAutoComplete: {
		StatusOngoing: StatusCompleted,
	},
	ActionSettle: {
		StatusCompleted: StatusSettled,
	},
	ActionCancel: {
		StatusDraft:     StatusCancelled,
		StatusSubmitted: StatusCancelled,
		StatusFunded:    StatusCancelled,
		StatusOngoing:   StatusCancelled,
	},
	ActionAutoCancel: {
		StatusDraft:       StatusCancelled,
		StatusSubmitted:   StatusCancelled,
		StatusUnderReview: StatusCancelled,
		StatusApproved:    StatusCancelled,
		StatusFunded:      StatusCancelled,
	},
}

// Next returns the status an action leads to from the given status, or an
// InvalidTransitionError when the pair is not in the table.
func Next(status Status, action Action) (Status, error) {
	to, ok := transitions[action][status]
	if !ok {
		return "", &InvalidTransitionError{Action: action, Status: status}
	}

	return to, nil
}

// AutoCancellable lists the statuses the expiry sweep may force-cancel.
func AutoCancellable(status Status) bool {
	_, ok := transitions[ActionAutoCancel][status]
	return ok
}
