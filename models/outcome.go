package models

import (
	"wskproxy/core"
)

const (
	ParameterErrorText  = "error retrieving parameter list with two key fields: payload and response-url"
	ActionNameErrorText = "error retrieving the name of the action, the payload seems empty"
)

// OutcomeRecord is what a pipeline run returns. Rejected requests carry one of the fixed
// error texts; completed runs carry diagnostics only.
type OutcomeRecord struct {
	Text    string `json:"text,omitempty"`
	RunID   string `json:"run_id,omitempty"`
	Action  string `json:"action,omitempty"`
	Status  int    `json:"status,omitempty"`
	Relayed bool   `json:"relayed,omitempty"`

	Err error `json:"-"`
}

func NewParameterErrorOutcome() OutcomeRecord {
	return OutcomeRecord{Text: ParameterErrorText, Err: core.ErrMissingField}
}

func NewActionNameErrorOutcome() OutcomeRecord {
	return OutcomeRecord{Text: ActionNameErrorText, Err: core.ErrEmptyAction}
}

// IsRejected reports whether the run stopped before contacting any remote endpoint
func (o OutcomeRecord) IsRejected() bool {
	return core.IsRequestError(o.Err)
}
