// Package session drives one connection to the dealer: it polls the
// transport, feeds frames through the codec into the game state, and routes
// gated local intents back out.
package session

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"pokerclient/internal/game"
	"pokerclient/internal/transport"
	"pokerclient/pkg/protocol"
)

// Status is the session lifecycle. It only moves forward.
type Status int

const (
	StatusConnecting Status = iota
	StatusActive
	StatusClosed
)

// tickInterval bounds each poll so the loop stays responsive to local
// input and display refresh.
const tickInterval = 50 * time.Millisecond

// RenderFunc receives a snapshot of the table after every tick that
// changed it. Implementations must treat the snapshot as read-only truth
// and keep their hands off the session.
type RenderFunc func(st game.State)

// Session owns one multiplexer, one state aggregate and one intent
// channel. Everything happens on the goroutine that calls Run; the intent
// channel is the only thing other goroutines touch.
type Session struct {
	mux     *transport.Mux
	state   *game.State
	intents <-chan Intent
	render  RenderFunc
	logger  *slog.Logger

	frames protocol.FrameDecoder
	status Status
}

// New assembles a session around an established connection.
func New(mux *transport.Mux, state *game.State, intents <-chan Intent, logger *slog.Logger, render RenderFunc) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		mux:     mux,
		state:   state,
		intents: intents,
		render:  render,
		logger:  logger,
		status:  StatusConnecting,
	}
}

// Status returns the current lifecycle stage.
func (s *Session) Status() Status {
	return s.status
}

// Run loops until the user quits, the dealer hangs up, or the transport
// fails. A dealer hangup surfaces as transport.ErrConnClosed; a clean
// local quit returns nil.
func (s *Session) Run(ctx context.Context) error {
	s.status = StatusActive
	defer func() { s.status = StatusClosed }()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		data, err := s.mux.Poll(tickInterval)
		changed := s.dispatchAll(data)
		if err != nil {
			if errors.Is(err, transport.ErrConnClosed) {
				s.logger.Info("dealer closed the connection")
			} else {
				s.logger.Error("transport failure", "error", err)
			}
			return err
		}

		select {
		case in, ok := <-s.intents:
			if !ok || in.Quit {
				return nil
			}
			changed = s.submit(in.Act) || changed
		default:
		}

		if changed && s.render != nil {
			s.render(s.state.Snapshot())
		}
	}
}

// dispatchAll feeds raw transport bytes through framing and the codec and
// applies whatever comes out, in arrival order.
func (s *Session) dispatchAll(data []byte) bool {
	changed := false
	for _, payload := range s.frames.Feed(data) {
		res, err := protocol.DecodeResponse(payload)
		if err != nil {
			// Malformed content, not a broken stream. Drop it.
			s.logger.Debug("undecodable payload", "error", err)
			continue
		}
		for _, msg := range res {
			switch {
			case msg.Err != nil:
				// Dealer-reported error: local log only, state stays.
				s.logger.Warn("dealer error", "code", msg.Err.String())
			case msg.Event != nil:
				if s.state.Apply(msg.Event) {
					changed = true
				} else {
					s.logger.Debug("unrecognized event", "event", msg.Event)
				}
			default:
				s.logger.Debug("empty message from dealer")
			}
		}
	}
	return changed
}

// submit routes one local intent through the gate and queues the accepted
// action. Refusals go to the log and nothing is sent.
func (s *Session) submit(in game.Intent) bool {
	action, err := game.GateAction(s.state, in)
	if err != nil {
		s.logger.Info("action refused", "reason", err)
		return false
	}
	s.mux.Enqueue(protocol.EncodeFrame(protocol.EncodeAction(action)))
	return true
}
