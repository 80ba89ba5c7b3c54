package workflow

import "errors"

var (
	ErrBusy          = errors.New("another action is in progress")
	ErrDeclined      = errors.New("action declined")
	ErrUnknownTenant = errors.New("unknown tenant")
	ErrSessionEnded  = errors.New("session ended while the action was running")
)

// View is the screen the console is on.
type View int

const (
	ViewLogin View = iota
	ViewMain
)

func (v View) String() string {
	if v == ViewMain {
		return "main"
	}
	return "login"
}

// State is the generation workflow state.
type State int

const (
	Idle State = iota
	Submitting
	Success
	Failed
)

func (s State) String() string {
	switch s {
	case Submitting:
		return "submitting"
	case Success:
		return "success"
	case Failed:
		return "failed"
	default:
		return "idle"
	}
}

// Publication is the sub-state of a successful result.
type Publication int

const (
	Draft Publication = iota
	Published
)

func (p Publication) String() string {
	if p == Published {
		return "published"
	}
	return "draft"
}
