package fault

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"net"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/loomq/loomq/pkg/codes"
	"github.com/loomq/loomq/pkg/snap"
)

func TestClone_IO(t *testing.T) {
	t.Run("Raw OS Error Code", func(t *testing.T) {
		// 104 = ECONNRESET; the errno is the canonical identity of the
		// failure and must survive duplication exactly.
		orig := FromIO(os.NewSyscallError("read", syscall.Errno(104)))
		dup := orig.Clone()

		require.Equal(t, orig.Error(), dup.Error())

		var origErrno, dupErrno syscall.Errno
		require.ErrorAs(t, orig.Unwrap(), &origErrno)
		require.ErrorAs(t, dup.Unwrap(), &dupErrno)
		require.Equal(t, syscall.Errno(104), origErrno)
		require.Equal(t, syscall.Errno(104), dupErrno)

		// Independent values, not shared state.
		require.NotSame(t, orig, dup)
		require.NotSame(t, orig.Unwrap(), dup.Unwrap())
	})

	t.Run("Bare Errno", func(t *testing.T) {
		orig := FromIO(syscall.ECONNREFUSED)
		dup := orig.Clone()
		require.Equal(t, orig.Error(), dup.Error())
		require.Equal(t, syscall.ECONNREFUSED, dup.Unwrap())
	})

	t.Run("Descriptive Failure Falls Back To Text", func(t *testing.T) {
		orig := FromIO(errors.New("device not ready"))
		dup := orig.Clone()

		require.Equal(t, KindIO, dup.Kind())
		require.Equal(t, "I/O error: device not ready", dup.Error())
	})
}

func TestClone_TLS(t *testing.T) {
	t.Run("Alert", func(t *testing.T) {
		orig := FromTLS(tls.AlertError(112))
		dup := orig.Clone()
		require.Equal(t, orig.Error(), dup.Error())
		require.Equal(t, orig.Unwrap(), dup.Unwrap())
	})

	t.Run("Record Header", func(t *testing.T) {
		orig := FromTLS(tls.RecordHeaderError{
			Msg:          "first record does not look like a TLS handshake",
			RecordHeader: [5]byte{0x48, 0x54, 0x54, 0x50, 0x2f},
		})
		dup := orig.Clone()
		require.Equal(t, orig.Error(), dup.Error())

		var rh tls.RecordHeaderError
		require.ErrorAs(t, dup.Unwrap(), &rh)
		require.Equal(t, [5]byte{0x48, 0x54, 0x54, 0x50, 0x2f}, rh.RecordHeader)
	})

	t.Run("Certificate Verification", func(t *testing.T) {
		orig := FromTLS(&tls.CertificateVerificationError{
			Err: x509.UnknownAuthorityError{},
		})
		dup := orig.Clone()
		require.Equal(t, orig.Error(), dup.Error())
		require.NotSame(t, orig.Unwrap(), dup.Unwrap())
	})

	t.Run("Nested Local Failure", func(t *testing.T) {
		orig := FromTLS(&net.OpError{Op: "write", Net: "tcp", Err: os.NewSyscallError("write", syscall.Errno(32))})
		dup := orig.Clone()
		require.Equal(t, orig.Error(), dup.Error())

		var errno syscall.Errno
		require.ErrorAs(t, dup.Unwrap(), &errno)
		require.Equal(t, syscall.Errno(32), errno)
	})

	t.Run("Opaque Failure Falls Back To Text", func(t *testing.T) {
		orig := FromTLS(errors.New("handshake failure"))
		dup := orig.Clone()
		require.Equal(t, KindTLS, dup.Kind())
		require.Equal(t, "TLS error: handshake failure", dup.Error())
	})
}

func TestClone_Snap(t *testing.T) {
	se := &snap.Error{Reason: snap.ReasonChecksum, Expected: 0xfeed, Got: 0xdead, Offset: 6}
	orig := FromSnap(se)
	dup := orig.Clone()

	require.Equal(t, orig.Error(), dup.Error())
	require.Equal(t, se, dup.Codec())
	require.NotSame(t, se, dup.Codec())
}

func TestClone_PlainKindsRenderIdentically(t *testing.T) {
	faults := []*Error{
		Broker(codes.RequestTimedOut),
		TopicPartition("orders", 3, codes.NotLeaderForPartition),
		ErrUnsupportedProtocol,
		ErrUnsupportedCompression,
		ErrUnexpectedEOF,
		ErrCodec,
		ErrStringDecode,
		ErrNoHostReachable,
		ErrNoTopicsAssigned,
		ErrInvalidDuration,
	}
	for _, f := range faults {
		dup := f.Clone()
		require.Equal(t, f.Error(), dup.Error())
		require.Equal(t, f.Label(), dup.Label())
		require.ErrorIs(t, dup, f)
	}
}

func TestClone_NeverPanics(t *testing.T) {
	var nilFault *Error
	require.Nil(t, nilFault.Clone())

	// Adapters fed degenerate input still produce clonable values.
	for _, f := range []*Error{FromIO(nil), FromTLS(nil), FromSnap(nil)} {
		require.NotPanics(t, func() {
			dup := f.Clone()
			_ = dup.Error()
			_ = dup.Label()
		})
	}
}

func TestClone_ConcurrentUse(t *testing.T) {
	// Duplication exists so a fault can be handed to another goroutine
	// without sharing the original's cause.
	orig := FromIO(os.NewSyscallError("read", syscall.Errno(104)))
	want := orig.Error()

	var g errgroup.Group
	for i := 0; i < 32; i++ {
		g.Go(func() error {
			for j := 0; j < 100; j++ {
				dup := orig.Clone()
				if dup.Error() != want {
					return errors.New("rendering diverged after clone")
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
