// Package transport owns the client's single stream connection: the Conn
// wrappers for the TCP and WebSocket carriers and the Mux that multiplexes
// bounded reads and writes over it.
package transport

import (
	"context"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
)

// Conn is a stream connection to the dealer. Deadlines are how the Mux
// bounds each read and write; both wrappers delegate them to the
// underlying socket.
type Conn interface {
	io.ReadWriteCloser
	SetReadDeadline(t time.Time) error
	SetWriteDeadline(t time.Time) error
}

// Dial opens a plain TCP connection to the dealer. A *net.TCPConn already
// satisfies Conn.
func Dial(address string) (Conn, error) {
	conn, err := net.Dial("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to dealer: %w", err)
	}
	return conn, nil
}

// WSConn carries the dealer byte stream over WebSocket binary messages
// using gobwas/ws. Reads hand back message bytes that did not fit the
// caller's buffer on the next call.
type WSConn struct {
	conn          net.Conn
	readBuffer    []byte
	readBufferPos int
}

// DialWS opens a WebSocket connection to the dealer, e.g.
// "ws://localhost:65432".
func DialWS(ctx context.Context, address string) (*WSConn, error) {
	conn, br, _, err := ws.Dial(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to dealer: %w", err)
	}
	wc := &WSConn{conn: conn}
	if br != nil {
		// Frame bytes that arrived with the handshake.
		buffered, _ := br.Peek(br.Buffered())
		wc.conn = &preloadedConn{Conn: conn, head: append([]byte(nil), buffered...)}
		ws.PutReader(br)
	}
	return wc, nil
}

func (wc *WSConn) Read(buf []byte) (int, error) {
	if wc.readBufferPos < len(wc.readBuffer) {
		n := copy(buf, wc.readBuffer[wc.readBufferPos:])
		wc.readBufferPos += n
		if wc.readBufferPos >= len(wc.readBuffer) {
			wc.readBuffer = nil
			wc.readBufferPos = 0
		}
		return n, nil
	}

	// The caller's read deadline only bounds the wait for the first byte.
	// ReadServerBinary keeps no parse state between calls, so a deadline
	// firing mid-frame would lose the consumed prefix and desync the
	// stream; once a frame has started arriving it is read to completion.
	var first [1]byte
	if _, err := wc.conn.Read(first[:]); err != nil {
		return 0, err
	}
	if err := wc.conn.SetReadDeadline(time.Time{}); err != nil {
		return 0, err
	}
	data, err := wsutil.ReadServerBinary(&preloadedConn{Conn: wc.conn, head: first[:]})
	if err != nil {
		return 0, err
	}

	n := copy(buf, data)
	if n < len(data) {
		wc.readBuffer = data[n:]
		wc.readBufferPos = 0
	}
	return n, nil
}

func (wc *WSConn) Write(data []byte) (int, error) {
	if err := wsutil.WriteClientBinary(wc.conn, data); err != nil {
		return 0, err
	}
	return len(data), nil
}

func (wc *WSConn) Close() error {
	_ = wsutil.WriteClientMessage(wc.conn, ws.OpClose, nil)
	return wc.conn.Close()
}

func (wc *WSConn) SetReadDeadline(t time.Time) error {
	return wc.conn.SetReadDeadline(t)
}

func (wc *WSConn) SetWriteDeadline(t time.Time) error {
	return wc.conn.SetWriteDeadline(t)
}

// preloadedConn replays bytes the handshake reader had already consumed
// before handing reads to the socket.
type preloadedConn struct {
	net.Conn
	head []byte
}

func (p *preloadedConn) Read(buf []byte) (int, error) {
	if len(p.head) > 0 {
		n := copy(buf, p.head)
		p.head = p.head[n:]
		return n, nil
	}
	return p.Conn.Read(buf)
}
