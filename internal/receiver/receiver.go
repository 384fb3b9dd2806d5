// Package receiver connects to an rtl_tcp-compatible IQ source and
// delivers fixed-size raw sample buffers, per spec.md §6-§7.
package receiver

import (
	"fmt"
	"io"
	"net"
)

// ChunkBytes is the fixed per-call read size: 2 bytes/sample (I, Q) at
// the nominal 300 kSa/s AIS capture rate.
const ChunkBytes = 2 * 300000

// headerBytes is the size of rtl_tcp's informational packet sent once
// at the start of the stream (dongle/tuner info), consumed and
// discarded on connect.
const headerBytes = 12

// ExitCode mirrors the exit-code contract in spec.md §6: 0 on orderly
// EOF, 2-4 for setup failures.
type ExitCode int

const (
	ExitOK            ExitCode = 0
	ExitResolveFailed ExitCode = 2
	ExitSocketFailed  ExitCode = 3
	ExitConnectFailed ExitCode = 4
)

// Receiver is a connected rtl_tcp-compatible IQ source.
type Receiver struct {
	conn net.Conn
}

// Dial resolves and connects to addr ("host:port"), consumes the
// rtl_tcp header, and returns a ready-to-read Receiver. On failure, the
// returned ExitCode classifies the failure per spec.md §6-§7: DNS
// resolution failures are ExitResolveFailed, everything else around the
// connect attempt is ExitConnectFailed. ExitSocketFailed is reserved for
// parity with the spec's three-way split; net.Dial does not expose a
// distinct socket-creation step in Go (see DESIGN.md).
func Dial(addr string) (*Receiver, ExitCode, error) {
	tcpAddr, err := net.ResolveTCPAddr("tcp", addr)
	if err != nil {
		return nil, ExitResolveFailed, fmt.Errorf("resolve %s: %w", addr, err)
	}

	conn, err := net.DialTCP("tcp", nil, tcpAddr)
	if err != nil {
		return nil, ExitConnectFailed, fmt.Errorf("connect %s: %w", addr, err)
	}

	header := make([]byte, headerBytes)
	if _, err := io.ReadFull(conn, header); err != nil {
		conn.Close()
		return nil, ExitConnectFailed, fmt.Errorf("read rtl_tcp header: %w", err)
	}

	return &Receiver{conn: conn}, ExitOK, nil
}

// ReadBuffer blocks until a full ChunkBytes buffer is available, or
// returns the underlying read error (io.EOF on orderly stream close,
// per spec.md §7).
func (r *Receiver) ReadBuffer() ([]byte, error) {
	buf := make([]byte, ChunkBytes)
	if _, err := io.ReadFull(r.conn, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// Close releases the underlying connection.
func (r *Receiver) Close() error {
	return r.conn.Close()
}
