package fault

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Label returns the short fixed category of the fault, suitable for metrics
// and log grouping. It is the kind's label and carries no per-value data.
func (e *Error) Label() string {
	if e == nil {
		return "unknown"
	}
	return e.kind.String()
}

// Error returns the full human-readable rendering. Kinds wrapping a foreign
// failure delegate to that failure's own rendering; broker kinds embed the
// status code, scoped broker kinds additionally the topic and partition.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch e.kind {
	case KindIO, KindTLS:
		if e.cause == nil {
			return e.kind.String() + " error"
		}
		return e.cause.Error()
	case KindBroker:
		return fmt.Sprintf("broker error (%s)", e.code)
	case KindTopicPartition:
		return fmt.Sprintf("topic partition error (%q, %d, %s)", e.topic, e.partition, e.code)
	case KindSnap:
		if e.codec == nil {
			return "snap error"
		}
		return e.codec.Error()
	case KindUnsupportedProtocol:
		return "unsupported protocol version"
	case KindUnsupportedCompression:
		return "unsupported compression format"
	case KindUnexpectedEOF:
		return "unexpected EOF"
	case KindCodec:
		return "encoding/decoding error"
	case KindStringDecode:
		return "string decoding error"
	case KindNoHostReachable:
		return "no host reachable"
	case KindNoTopicsAssigned:
		return "no topics assigned"
	case KindInvalidDuration:
		return "invalid duration"
	}
	return "unknown error"
}

// MarshalLogObject implements zapcore.ObjectMarshaler so faults log as
// structured objects rather than flat strings.
func (e *Error) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	if e == nil {
		return nil
	}
	enc.AddString("kind", e.kind.String())
	if code, ok := e.Code(); ok {
		enc.AddString("code", code.String())
		enc.AddInt16("code_value", int16(code))
		enc.AddBool("retriable", code.Retriable())
	}
	if e.kind == KindTopicPartition {
		enc.AddString("topic", e.topic)
		enc.AddInt32("partition", e.partition)
	}
	if e.cause != nil {
		enc.AddString("cause", e.cause.Error())
	}
	if e.codec != nil {
		enc.AddString("cause", e.codec.Error())
	}
	return nil
}

// Field wraps the fault as a structured zap field under the "fault" key.
func Field(e *Error) zap.Field {
	return zap.Object("fault", e)
}
