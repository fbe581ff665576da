// Package audio drives the music toggle button: the first press wakes the
// audio context and starts the looping track, later presses mute and unmute.
//
// The context resume is asynchronous. Toggle only requests it; Update, called
// once per frame, observes when the context is running and starts playback,
// or gives up after a timeout.
package audio

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

var (
	// ErrAudioUnavailable means there is no usable audio output.
	ErrAudioUnavailable = errors.New("audio unavailable")
	// ErrResumeTimeout means the audio context never reached the running state.
	ErrResumeTimeout = errors.New("audio context resume timed out")
)

// ContextState is the state of the underlying audio context.
type ContextState int

const (
	ContextSuspended ContextState = iota
	ContextRunning
	ContextClosed
)

// String returns the context state name.
func (s ContextState) String() string {
	switch s {
	case ContextSuspended:
		return "suspended"
	case ContextRunning:
		return "running"
	default:
		return "closed"
	}
}

// Backend is an audio output with one looping track.
type Backend interface {
	// State reports the audio context state.
	State() ContextState
	// Resume asks a suspended context to start. It returns without waiting;
	// completion shows up in State.
	Resume() error
	// Play starts the track from the beginning, looping.
	Play() error
	// SetMuted mutes or unmutes the track without stopping it.
	SetMuted(muted bool)
}

// Status is what the toggle button shows.
type Status int

const (
	StatusOff Status = iota // never started
	StatusResuming
	StatusOn
	StatusMuted
	StatusError
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusOff:
		return "off"
	case StatusResuming:
		return "resuming"
	case StatusOn:
		return "on"
	case StatusMuted:
		return "muted"
	default:
		return "error"
	}
}

// Button labels. The label names the action a press performs.
const (
	LabelSoundOn  = "[SOUND ON]"
	LabelSoundOff = "[SOUND OFF]"
	LabelError    = "[AUDIO ERR]"
)

// DefaultResumeTimeout bounds the wait for the context to start.
const DefaultResumeTimeout = 3 * time.Second

// Controller is the state machine behind the sound button. It is driven from
// the frame loop and is not safe for concurrent use.
type Controller struct {
	backend Backend
	logger  *log.Logger
	timeout time.Duration

	status Status
	waited time.Duration
	err    error
}

// NewController creates a controller. A nil backend makes every press report
// ErrAudioUnavailable. A nil logger discards logs.
func NewController(b Backend, timeout time.Duration, logger *log.Logger) *Controller {
	if timeout <= 0 {
		timeout = DefaultResumeTimeout
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Controller{backend: b, logger: logger, timeout: timeout}
}

// Toggle handles a button press.
func (c *Controller) Toggle() error {
	if c.backend == nil {
		return c.fail(ErrAudioUnavailable)
	}

	switch c.status {
	case StatusOff:
		return c.initialize()
	case StatusOn:
		c.backend.SetMuted(true)
		c.setStatus(StatusMuted)
	case StatusMuted:
		c.backend.SetMuted(false)
		c.setStatus(StatusOn)
	case StatusError:
		// No retry after a failure.
		return c.err
	}
	return nil
}

// initialize runs on the first press.
func (c *Controller) initialize() error {
	switch state := c.backend.State(); state {
	case ContextRunning:
		c.logger.Debug("audio context already running")
		return c.start()
	case ContextSuspended:
		c.logger.Debug("resuming audio context")
		if err := c.backend.Resume(); err != nil {
			return c.fail(fmt.Errorf("%w: resume: %w", ErrAudioUnavailable, err))
		}
		c.waited = 0
		c.setStatus(StatusResuming)
		return nil
	default:
		return c.fail(fmt.Errorf("%w: context %s", ErrAudioUnavailable, state))
	}
}

// Update observes a pending resume. dt is the frame delta.
func (c *Controller) Update(dt time.Duration) {
	if c.status != StatusResuming {
		return
	}

	switch c.backend.State() {
	case ContextRunning:
		c.logger.Debug("audio context resumed")
		_ = c.start()
	case ContextClosed:
		_ = c.fail(fmt.Errorf("%w: context closed during resume", ErrAudioUnavailable))
	default:
		c.waited += dt
		if c.waited >= c.timeout {
			_ = c.fail(ErrResumeTimeout)
		}
	}
}

func (c *Controller) start() error {
	if err := c.backend.Play(); err != nil {
		return c.fail(fmt.Errorf("%w: play: %w", ErrAudioUnavailable, err))
	}
	c.backend.SetMuted(false)
	c.setStatus(StatusOn)
	return nil
}

func (c *Controller) fail(err error) error {
	c.err = err
	if c.status != StatusError {
		c.logger.Error("audio failed", "error", err)
	}
	c.status = StatusError
	return err
}

func (c *Controller) setStatus(s Status) {
	c.logger.Info("sound", "status", s)
	c.status = s
}

// Status returns the current status.
func (c *Controller) Status() Status {
	return c.status
}

// Err returns the failure that put the controller in StatusError.
func (c *Controller) Err() error {
	return c.err
}

// Label returns the button text for the current status.
func (c *Controller) Label() string {
	switch c.status {
	case StatusOn:
		return LabelSoundOff
	case StatusError:
		return LabelError
	default:
		return LabelSoundOn
	}
}
