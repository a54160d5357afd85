package fault

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"net"
	"os"
	"syscall"
)

// Clone returns an independent copy of the fault. It never fails: causes
// that cannot be reconstructed exactly are replaced by a semantically
// equivalent substitute, re-synthesized from the platform error code when one
// is available and re-described as text otherwise. Faults without a foreign
// cause copy losslessly.
func (e *Error) Clone() *Error {
	if e == nil {
		return nil
	}
	c := *e
	switch e.kind {
	case KindIO:
		c.cause = cloneIOError(e.cause)
	case KindTLS:
		c.cause = cloneTLSError(e.cause)
	case KindSnap:
		c.codec = e.codec.Clone()
	}
	return &c
}

// cloneIOError reconstructs a local I/O failure. The raw OS error code is the
// canonical identity of a platform failure, so errno-backed errors rebuild
// exactly; anything else degrades to a textual restatement that keeps the
// original rendering.
func cloneIOError(err error) error {
	switch v := err.(type) {
	case nil:
		return nil
	case syscall.Errno:
		return v
	case *os.SyscallError:
		if errno, ok := v.Err.(syscall.Errno); ok {
			return os.NewSyscallError(v.Syscall, errno)
		}
	}
	return errors.New("I/O error: " + err.Error())
}

// cloneTLSError reconstructs a transport-security failure by subtype.
// Value-semantics subtypes copy directly; subtypes nesting a local I/O
// failure recurse into cloneIOError; the rest are re-described as text.
func cloneTLSError(err error) error {
	switch v := err.(type) {
	case nil:
		return nil
	case tls.AlertError:
		return v
	case tls.RecordHeaderError:
		// The failing connection is a live handle and is not retained.
		return tls.RecordHeaderError{Msg: v.Msg, RecordHeader: v.RecordHeader}
	case *tls.CertificateVerificationError:
		return &tls.CertificateVerificationError{
			UnverifiedCertificates: v.UnverifiedCertificates,
			Err:                    v.Err,
		}
	case x509.CertificateInvalidError, x509.HostnameError, x509.UnknownAuthorityError:
		return v
	case *net.OpError:
		return &net.OpError{Op: v.Op, Net: v.Net, Source: v.Source, Addr: v.Addr, Err: cloneIOError(v.Err)}
	case syscall.Errno, *os.SyscallError:
		return cloneIOError(v)
	}
	return errors.New("TLS error: " + err.Error())
}
