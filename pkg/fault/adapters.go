package fault

import (
	"errors"
	"io"
	"net"

	"github.com/loomq/loomq/pkg/snap"
)

// FromIO absorbs a local I/O failure. Failures signalling that input ended
// before a complete value was read become ErrUnexpectedEOF; everything else
// is wrapped with the original failure retained as the cause.
func FromIO(err error) *Error {
	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return ErrUnexpectedEOF
	}
	return &Error{kind: KindIO, cause: err}
}

// FromTLS absorbs a transport-security failure. Handshake interruptions
// surface as net.OpError layers around the real security fault; those layers
// are peeled off so the wrapped cause is the innermost failure.
func FromTLS(err error) *Error {
	for {
		if op, ok := err.(*net.OpError); ok && op.Err != nil {
			err = op.Err
			continue
		}
		break
	}
	return &Error{kind: KindTLS, cause: err}
}

// FromSnap absorbs a compression-codec failure, retaining every diagnostic
// field of the original.
func FromSnap(err *snap.Error) *Error {
	return &Error{kind: KindSnap, codec: err}
}
