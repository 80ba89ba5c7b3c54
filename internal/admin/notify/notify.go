// Package notify holds the transient notices shown after every user action.
package notify

import (
	"sync"
	"time"
)

type Kind int

const (
	Info Kind = iota
	Success
	Error
)

func (k Kind) String() string {
	switch k {
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return "info"
	}
}

// Fixed user-facing texts.
const (
	MsgMissingCredentials = "Please enter email and password"
	MsgLoginSuccess       = "Login successful!"
	MsgLoginFailedPrefix  = "Login failed: "
	MsgLoggedOut          = "Logged out successfully"
	MsgSessionExpired     = "Session expired, please log in again"
	MsgMissingFields      = "Please fill in all required fields"
	MsgGenerated          = "Survey generated successfully!"
	MsgNoSurveyID         = "No survey ID found"
	MsgCopied             = "Survey ID copied to clipboard!"
	MsgCopyFailed         = "Failed to copy"
	MsgViewComingSoon     = "Survey view feature coming soon"
)

const DefaultTTL = 3 * time.Second

type Notice struct {
	Kind    Kind
	Message string
	Expires time.Time
}

// Sink receives every notice as it is shown.
type Sink interface {
	Notify(n Notice)
}

type SinkFunc func(Notice)

func (f SinkFunc) Notify(n Notice) { f(n) }

// Center keeps the most recent notice until its TTL runs out. A newer notice
// replaces the current one.
type Center struct {
	mu   sync.Mutex
	ttl  time.Duration
	sink Sink
	now  func() time.Time
	last *Notice
}

// NewCenter creates a Center. A non-positive ttl means DefaultTTL; sink may
// be nil.
func NewCenter(ttl time.Duration, sink Sink) *Center {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Center{ttl: ttl, sink: sink, now: time.Now}
}

func (c *Center) Show(kind Kind, msg string) Notice {
	c.mu.Lock()
	n := Notice{Kind: kind, Message: msg, Expires: c.now().Add(c.ttl)}
	c.last = &n
	sink := c.sink
	c.mu.Unlock()

	if sink != nil {
		sink.Notify(n)
	}
	return n
}

func (c *Center) Info(msg string) Notice    { return c.Show(Info, msg) }
func (c *Center) Success(msg string) Notice { return c.Show(Success, msg) }
func (c *Center) Error(msg string) Notice   { return c.Show(Error, msg) }

// Active returns the current notice if it has not expired at now.
func (c *Center) Active(now time.Time) (Notice, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.last == nil || !now.Before(c.last.Expires) {
		return Notice{}, false
	}
	return *c.last, true
}

// Dismiss drops the current notice before it expires.
func (c *Center) Dismiss() {
	c.mu.Lock()
	c.last = nil
	c.mu.Unlock()
}
