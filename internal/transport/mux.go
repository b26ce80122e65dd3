package transport

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

// ErrConnClosed reports that the dealer closed the connection.
var ErrConnClosed = errors.New("connection closed by dealer")

const readChunkSize = 4096

// Mux drives one connection without ever blocking the session loop: each
// Poll performs at most one bounded read and one bounded write, and queued
// outbound bytes wait their turn. A session owns exactly one Mux.
type Mux struct {
	conn    Conn
	pending []byte
	buf     []byte
}

// NewMux wraps an established connection.
func NewMux(conn Conn) *Mux {
	return &Mux{
		conn: conn,
		buf:  make([]byte, readChunkSize),
	}
}

// WantWrite reports whether outbound bytes are queued.
func (m *Mux) WantWrite() bool {
	return len(m.pending) > 0
}

// Enqueue appends bytes to the outbound queue. They go out on following
// Polls, in order, as the connection accepts them.
func (m *Mux) Enqueue(data []byte) {
	m.pending = append(m.pending, data...)
}

// Poll waits up to timeout for inbound bytes and returns whatever arrived,
// then flushes as much of the outbound queue as the connection accepts
// within the same bound. An elapsed deadline just means nothing was ready.
// A read of zero bytes at stream end is the peer closing, surfaced as
// ErrConnClosed alongside any bytes read first; every other failure is
// fatal and propagates as is.
func (m *Mux) Poll(timeout time.Duration) ([]byte, error) {
	if err := m.conn.SetReadDeadline(time.Now().Add(timeout)); err != nil {
		return nil, fmt.Errorf("transport: set read deadline: %w", err)
	}
	var data []byte
	n, err := m.conn.Read(m.buf)
	if n > 0 {
		data = append(data, m.buf[:n]...)
	}
	switch {
	case err == nil:
	case errors.Is(err, os.ErrDeadlineExceeded):
		// Nothing ready this tick.
	case errors.Is(err, io.EOF):
		return data, ErrConnClosed
	default:
		return data, fmt.Errorf("transport: read: %w", err)
	}

	if len(m.pending) > 0 {
		if err := m.conn.SetWriteDeadline(time.Now().Add(timeout)); err != nil {
			return data, fmt.Errorf("transport: set write deadline: %w", err)
		}
		n, err := m.conn.Write(m.pending)
		// Drop exactly the bytes the connection accepted.
		m.pending = m.pending[n:]
		if len(m.pending) == 0 {
			m.pending = nil
		}
		if err != nil && !errors.Is(err, os.ErrDeadlineExceeded) {
			return data, fmt.Errorf("transport: write: %w", err)
		}
	}
	return data, nil
}
