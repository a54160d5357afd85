// Package fault defines the single error currency of the LoomQ client: a
// closed set of failure kinds covering local I/O faults, broker-reported
// status codes, transport-security faults, compression-codec faults and
// structural protocol faults.
//
// Values are immutable after construction and safe to share across
// goroutines. Foreign failures enter the taxonomy only through the adapters
// in this package (FromIO, FromTLS, FromSnap); protocol and structural faults
// are constructed directly. The set of kinds is append-only: callers matching
// exhaustively must be rebuilt when a kind is added, kinds are never removed.
package fault

import (
	"github.com/loomq/loomq/pkg/codes"
	"github.com/loomq/loomq/pkg/snap"
)

// Kind identifies the failure category of an Error.
type Kind uint8

const (
	// KindIO wraps a local I/O failure.
	KindIO Kind = iota + 1
	// KindBroker carries a broker-reported status code without request
	// context.
	KindBroker
	// KindTopicPartition carries a broker-reported status code attributable
	// to a specific topic and partition.
	KindTopicPartition
	// KindTLS wraps a transport-security failure.
	KindTLS
	// KindSnap wraps a compression-codec failure.
	KindSnap
	// KindUnsupportedProtocol reports a broker speaking a newer protocol
	// version than this client supports.
	KindUnsupportedProtocol
	// KindUnsupportedCompression reports response data in a compression
	// format this client does not support.
	KindUnsupportedCompression
	// KindUnexpectedEOF reports input that ended before a complete value
	// could be decoded.
	KindUnexpectedEOF
	// KindCodec reports a generic encode/decode failure.
	KindCodec
	// KindStringDecode reports bytes that are not valid UTF-8 where a
	// string was expected.
	KindStringDecode
	// KindNoHostReachable reports that no configured broker endpoint could
	// be reached.
	KindNoHostReachable
	// KindNoTopicsAssigned reports a consumer with no topic assignments.
	KindNoTopicsAssigned
	// KindInvalidDuration reports an invalid caller-supplied duration.
	KindInvalidDuration
)

// String returns the fixed label of the kind, suitable for metrics and log
// grouping.
func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindBroker:
		return "broker"
	case KindTopicPartition:
		return "topic_partition"
	case KindTLS:
		return "tls"
	case KindSnap:
		return "snap"
	case KindUnsupportedProtocol:
		return "unsupported_protocol"
	case KindUnsupportedCompression:
		return "unsupported_compression"
	case KindUnexpectedEOF:
		return "unexpected_eof"
	case KindCodec:
		return "codec"
	case KindStringDecode:
		return "string_decode"
	case KindNoHostReachable:
		return "no_host_reachable"
	case KindNoTopicsAssigned:
		return "no_topics_assigned"
	case KindInvalidDuration:
		return "invalid_duration"
	}
	return "unknown"
}

// Error is a LoomQ client failure. Exactly one kind applies to each value;
// the payload fields beyond the kind are populated per kind only.
type Error struct {
	kind      Kind
	code      codes.Code
	topic     string
	partition int32
	cause     error       // KindIO, KindTLS
	codec     *snap.Error // KindSnap
}

// Shared sentinels for the parameterless kinds. They carry no payload, so a
// single immutable value per kind serves every occurrence; errors.Is matches
// them against any Error of the same kind, including clones.
var (
	ErrUnsupportedProtocol    = &Error{kind: KindUnsupportedProtocol}
	ErrUnsupportedCompression = &Error{kind: KindUnsupportedCompression}
	ErrUnexpectedEOF          = &Error{kind: KindUnexpectedEOF}
	ErrCodec                  = &Error{kind: KindCodec}
	ErrStringDecode           = &Error{kind: KindStringDecode}
	ErrNoHostReachable        = &Error{kind: KindNoHostReachable}
	ErrNoTopicsAssigned       = &Error{kind: KindNoTopicsAssigned}
	ErrInvalidDuration        = &Error{kind: KindInvalidDuration}
)

// Broker returns a remote fault carrying a broker status code without
// request context.
func Broker(code codes.Code) *Error {
	return &Error{kind: KindBroker, code: code}
}

// TopicPartition returns a remote fault attributable to a topic and
// partition. The topic is stored as given; supplying the real topic from the
// request context is the caller's responsibility.
func TopicPartition(topic string, partition int32, code codes.Code) *Error {
	return &Error{kind: KindTopicPartition, code: code, topic: topic, partition: partition}
}

// Kind returns the failure category.
func (e *Error) Kind() Kind { return e.kind }

// Code returns the broker status code and whether the kind carries one.
func (e *Error) Code() (codes.Code, bool) {
	switch e.kind {
	case KindBroker, KindTopicPartition:
		return e.code, true
	}
	return codes.Unknown, false
}

// Topic returns the topic of a scoped remote fault, or "".
func (e *Error) Topic() string { return e.topic }

// Partition returns the partition of a scoped remote fault, or 0.
func (e *Error) Partition() int32 { return e.partition }

// Codec returns the wrapped compression-codec failure, or nil.
func (e *Error) Codec() *snap.Error { return e.codec }

// Unwrap returns the underlying cause for the io and tls kinds. All other
// kinds are terminal.
func (e *Error) Unwrap() error {
	switch e.kind {
	case KindIO, KindTLS:
		return e.cause
	}
	return nil
}

// Retriable reports whether the fault conventionally resolves on retry.
// Broker faults delegate to their status code; every other kind is either
// terminal or a policy decision left to the caller.
func (e *Error) Retriable() bool {
	switch e.kind {
	case KindBroker, KindTopicPartition:
		return e.code.Retriable()
	}
	return false
}

// Is supports errors.Is matching. Broker faults compare by code, scoped
// broker faults by code, topic and partition; kinds wrapping opaque foreign
// causes only match themselves.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if e.kind != t.kind {
		return false
	}
	switch e.kind {
	case KindBroker:
		return e.code == t.code
	case KindTopicPartition:
		return e.code == t.code && e.topic == t.topic && e.partition == t.partition
	case KindIO, KindTLS, KindSnap:
		return e == t
	}
	return true
}
