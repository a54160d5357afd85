// Package codes defines the catalog of status codes reported by LoomQ
// brokers. The numeric values mirror the remote wire protocol and are frozen:
// new codes may be appended, existing codes are never renumbered or removed.
package codes

import "fmt"

// Code is a broker-reported status code as carried on the wire.
type Code int16

const (
	// Unknown is an unexpected server error, and the designated fallback
	// for any wire value not present in the catalog.
	Unknown Code = -1
	// OffsetOutOfRange means the requested offset is outside the range of
	// offsets maintained by the broker for the topic/partition.
	OffsetOutOfRange Code = 1
	// CorruptMessage means a message's contents do not match its checksum.
	CorruptMessage Code = 2
	// UnknownTopicOrPartition means the request addressed a topic or
	// partition that does not exist on this broker.
	UnknownTopicOrPartition Code = 3
	// InvalidMessageSize means a message had a negative size.
	InvalidMessageSize Code = 4
	// LeaderNotAvailable means a leadership election is in progress and the
	// partition is temporarily unavailable for writes.
	LeaderNotAvailable Code = 5
	// NotLeaderForPartition means the addressed replica is not the leader
	// for the partition; client metadata is out of date.
	NotLeaderForPartition Code = 6
	// RequestTimedOut means the request exceeded the user-specified time
	// limit.
	RequestTimedOut Code = 7
	// BrokerNotAvailable is used mostly by tooling when a broker is down.
	BrokerNotAvailable Code = 8
	// ReplicaNotAvailable means a replica was expected on a broker but is
	// not there.
	ReplicaNotAvailable Code = 9
	// MessageSizeTooLarge means a produced message exceeded the broker's
	// configured maximum.
	MessageSizeTooLarge Code = 10
	// StaleControllerEpoch is internal to broker-to-broker traffic.
	StaleControllerEpoch Code = 11
	// OffsetMetadataTooLarge means the offset metadata string exceeded the
	// configured maximum.
	OffsetMetadataTooLarge Code = 12
	// NetworkException means the broker disconnected before responding.
	NetworkException Code = 13
	// GroupLoadInProgress means the coordinator is still loading offsets or
	// group metadata.
	GroupLoadInProgress Code = 14
	// GroupCoordinatorNotAvailable means the offsets topic is missing or
	// the coordinator is not active.
	GroupCoordinatorNotAvailable Code = 15
	// NotCoordinatorForGroup means the receiving broker does not coordinate
	// the addressed group.
	NotCoordinatorForGroup Code = 16
	// InvalidTopic means the request addressed an invalid or internal
	// topic.
	InvalidTopic Code = 17
	// RecordListTooLarge means a produced batch exceeded the maximum
	// segment size.
	RecordListTooLarge Code = 18
	// NotEnoughReplicas means too few in-sync replicas to satisfy the
	// requested acknowledgement level.
	NotEnoughReplicas Code = 19
	// NotEnoughReplicasAfterAppend means the message was written with fewer
	// in-sync replicas than required.
	NotEnoughReplicasAfterAppend Code = 20
	// InvalidRequiredAcks means the requested acknowledgement level is not
	// valid.
	InvalidRequiredAcks Code = 21
	// IllegalGeneration means the request carried a stale group generation.
	IllegalGeneration Code = 22
	// InconsistentGroupProtocol means the member's protocols are not
	// compatible with the group.
	InconsistentGroupProtocol Code = 23
	// InvalidGroupID means the group id is empty.
	InvalidGroupID Code = 24
	// UnknownMemberID means the member id is not in the current generation.
	UnknownMemberID Code = 25
	// InvalidSessionTimeout means the requested session timeout is outside
	// the broker's allowed range.
	InvalidSessionTimeout Code = 26
	// RebalanceInProgress means the coordinator has begun rebalancing and
	// the member should rejoin.
	RebalanceInProgress Code = 27
	// InvalidCommitOffsetSize means an offset commit was rejected for
	// oversize metadata.
	InvalidCommitOffsetSize Code = 28
	// TopicAuthorizationFailed means the client may not access the topic.
	TopicAuthorizationFailed Code = 29
	// GroupAuthorizationFailed means the client may not access the group.
	GroupAuthorizationFailed Code = 30
	// ClusterAuthorizationFailed means the client may not use an
	// inter-broker or administrative API.
	ClusterAuthorizationFailed Code = 31
	// InvalidTimestamp means a message timestamp is outside the acceptable
	// range.
	InvalidTimestamp Code = 32
	// UnsupportedSaslMechanism means the broker does not support the
	// requested SASL mechanism.
	UnsupportedSaslMechanism Code = 33
	// IllegalSaslState means the request is not valid in the current SASL
	// state.
	IllegalSaslState Code = 34
	// UnsupportedVersion means the API version is not supported.
	UnsupportedVersion Code = 35
)

var names = map[Code]string{
	Unknown:                      "Unknown",
	OffsetOutOfRange:             "OffsetOutOfRange",
	CorruptMessage:               "CorruptMessage",
	UnknownTopicOrPartition:      "UnknownTopicOrPartition",
	InvalidMessageSize:           "InvalidMessageSize",
	LeaderNotAvailable:           "LeaderNotAvailable",
	NotLeaderForPartition:        "NotLeaderForPartition",
	RequestTimedOut:              "RequestTimedOut",
	BrokerNotAvailable:           "BrokerNotAvailable",
	ReplicaNotAvailable:          "ReplicaNotAvailable",
	MessageSizeTooLarge:          "MessageSizeTooLarge",
	StaleControllerEpoch:         "StaleControllerEpoch",
	OffsetMetadataTooLarge:       "OffsetMetadataTooLarge",
	NetworkException:             "NetworkException",
	GroupLoadInProgress:          "GroupLoadInProgress",
	GroupCoordinatorNotAvailable: "GroupCoordinatorNotAvailable",
	NotCoordinatorForGroup:       "NotCoordinatorForGroup",
	InvalidTopic:                 "InvalidTopic",
	RecordListTooLarge:           "RecordListTooLarge",
	NotEnoughReplicas:            "NotEnoughReplicas",
	NotEnoughReplicasAfterAppend: "NotEnoughReplicasAfterAppend",
	InvalidRequiredAcks:          "InvalidRequiredAcks",
	IllegalGeneration:            "IllegalGeneration",
	InconsistentGroupProtocol:    "InconsistentGroupProtocol",
	InvalidGroupID:               "InvalidGroupID",
	UnknownMemberID:              "UnknownMemberID",
	InvalidSessionTimeout:        "InvalidSessionTimeout",
	RebalanceInProgress:          "RebalanceInProgress",
	InvalidCommitOffsetSize:      "InvalidCommitOffsetSize",
	TopicAuthorizationFailed:     "TopicAuthorizationFailed",
	GroupAuthorizationFailed:     "GroupAuthorizationFailed",
	ClusterAuthorizationFailed:   "ClusterAuthorizationFailed",
	InvalidTimestamp:             "InvalidTimestamp",
	UnsupportedSaslMechanism:     "UnsupportedSaslMechanism",
	IllegalSaslState:             "IllegalSaslState",
	UnsupportedVersion:           "UnsupportedVersion",
}

var descriptions = map[Code]string{
	Unknown:                      "unexpected server error",
	OffsetOutOfRange:             "requested offset is outside the range maintained by the server",
	CorruptMessage:               "message contents do not match its checksum",
	UnknownTopicOrPartition:      "topic or partition does not exist on this broker",
	InvalidMessageSize:           "message has a negative size",
	LeaderNotAvailable:           "partition leader is being elected",
	NotLeaderForPartition:        "replica is not the leader for the partition",
	RequestTimedOut:              "request exceeded its time limit",
	BrokerNotAvailable:           "broker is not alive",
	ReplicaNotAvailable:          "expected replica is not available on the broker",
	MessageSizeTooLarge:          "message exceeds the broker's maximum message size",
	StaleControllerEpoch:         "stale controller epoch",
	OffsetMetadataTooLarge:       "offset metadata exceeds the configured maximum",
	NetworkException:             "server disconnected before a response was received",
	GroupLoadInProgress:          "coordinator is still loading group state",
	GroupCoordinatorNotAvailable: "group coordinator is not available",
	NotCoordinatorForGroup:       "broker is not the coordinator for the group",
	InvalidTopic:                 "topic is invalid or reserved",
	RecordListTooLarge:           "message batch exceeds the maximum segment size",
	NotEnoughReplicas:            "not enough in-sync replicas",
	NotEnoughReplicasAfterAppend: "written with fewer in-sync replicas than required",
	InvalidRequiredAcks:          "requested acknowledgement level is invalid",
	IllegalGeneration:            "group generation id is stale",
	InconsistentGroupProtocol:    "member protocols are incompatible with the group",
	InvalidGroupID:               "group id is empty",
	UnknownMemberID:              "member id is not in the current generation",
	InvalidSessionTimeout:        "session timeout is outside the allowed range",
	RebalanceInProgress:          "group rebalance is in progress",
	InvalidCommitOffsetSize:      "offset commit rejected for oversize metadata",
	TopicAuthorizationFailed:     "client is not authorized to access the topic",
	GroupAuthorizationFailed:     "client is not authorized to access the group",
	ClusterAuthorizationFailed:   "client is not authorized for cluster operations",
	InvalidTimestamp:             "message timestamp is out of acceptable range",
	UnsupportedSaslMechanism:     "SASL mechanism is not supported by the broker",
	IllegalSaslState:             "request is not valid in the current SASL state",
	UnsupportedVersion:           "API version is not supported",
}

// Lookup maps a raw wire value onto the catalog. Values without a catalog
// entry resolve to Unknown.
func Lookup(v int16) Code {
	if _, ok := names[Code(v)]; ok {
		return Code(v)
	}
	return Unknown
}

// String returns the symbolic name of the code.
func (c Code) String() string {
	if s, ok := names[c]; ok {
		return s
	}
	return fmt.Sprintf("Code(%d)", int16(c))
}

// Description returns the fixed human-readable meaning of the code.
func (c Code) Description() string {
	if s, ok := descriptions[c]; ok {
		return s
	}
	return descriptions[Unknown]
}

// Retriable reports whether the code conventionally resolves on retry,
// usually after refreshing cluster metadata. Callers own the retry policy;
// this is only the protocol-level convention.
func (c Code) Retriable() bool {
	switch c {
	case LeaderNotAvailable,
		NotLeaderForPartition,
		RequestTimedOut,
		NetworkException,
		GroupLoadInProgress,
		GroupCoordinatorNotAvailable,
		NotCoordinatorForGroup,
		NotEnoughReplicas,
		NotEnoughReplicasAfterAppend,
		RebalanceInProgress:
		return true
	default:
		return false
	}
}
