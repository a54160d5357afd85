// Package snap implements the chunked snappy framing used for LoomQ
// compressed record batches: a fixed magic header and format version followed
// by length-prefixed, checksummed snappy blocks.
//
// Every decode failure is reported as *Error, a plain-data value that keeps
// all diagnostic fields (sizes, offsets, checksums) so the error layer can
// absorb and duplicate it without loss.
package snap

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/snappy"
)

// Version is the framing format version this package produces and accepts.
const Version = 1

// maxChunkLen bounds the uncompressed size of a single chunk on encode.
const maxChunkLen = 32 * 1024

// magic marks the start of a framed stream.
var magic = []byte{0x82, 'L', 'Q', 'S', 0x00}

// headerLen is len(magic) plus the version byte.
const headerLen = 6

// chunkHeaderLen is the per-chunk prefix: uint32 compressed length and
// uint64 xxhash64 of the compressed bytes.
const chunkHeaderLen = 12

// Reason discriminates the failure modes of Decode.
type Reason uint8

const (
	// ReasonEmpty reports input too short to hold the stream header.
	ReasonEmpty Reason = iota + 1
	// ReasonHeader reports a stream header that does not match the magic.
	ReasonHeader
	// ReasonVersion reports an unsupported format version byte.
	ReasonVersion
	// ReasonTruncated reports a chunk whose declared length exceeds the
	// bytes remaining in the input.
	ReasonTruncated
	// ReasonChecksum reports a chunk whose stored checksum does not match
	// the checksum computed over its bytes.
	ReasonChecksum
	// ReasonCorrupt reports a chunk the snappy block codec rejected.
	ReasonCorrupt
)

// Error describes a framing or decompression failure. All fields are plain
// data; only the fields relevant to the Reason are set.
type Error struct {
	Reason   Reason
	Expected uint64 // declared byte count (ReasonTruncated) or stored checksum (ReasonChecksum)
	Got      uint64 // available byte count (ReasonTruncated) or computed checksum (ReasonChecksum)
	Offset   int    // byte offset of the failing chunk within the stream
	Byte     byte   // offending version byte (ReasonVersion)
	Header   []byte // observed header bytes (ReasonHeader)
}

func (e *Error) Error() string {
	switch e.Reason {
	case ReasonEmpty:
		return "snap: empty input"
	case ReasonHeader:
		return fmt.Sprintf("snap: bad stream header % x", e.Header)
	case ReasonVersion:
		return fmt.Sprintf("snap: unsupported format version 0x%02x", e.Byte)
	case ReasonTruncated:
		return fmt.Sprintf("snap: truncated chunk at offset %d: expected %d bytes, got %d",
			e.Offset, e.Expected, e.Got)
	case ReasonChecksum:
		return fmt.Sprintf("snap: checksum mismatch at offset %d: expected %#016x, got %#016x",
			e.Offset, e.Expected, e.Got)
	case ReasonCorrupt:
		return fmt.Sprintf("snap: corrupt block at offset %d", e.Offset)
	}
	return fmt.Sprintf("snap: unknown failure (reason %d)", e.Reason)
}

// Clone returns an independent copy of the error.
func (e *Error) Clone() *Error {
	if e == nil {
		return nil
	}
	c := *e
	if e.Header != nil {
		c.Header = append([]byte(nil), e.Header...)
	}
	return &c
}

// Encode frames src into a compressed stream. Large inputs are split into
// chunks of at most 32 KiB of uncompressed data each.
func Encode(src []byte) []byte {
	dst := make([]byte, 0, headerLen+snappy.MaxEncodedLen(len(src))+chunkHeaderLen)
	dst = append(dst, magic...)
	dst = append(dst, Version)

	for len(src) > 0 {
		n := len(src)
		if n > maxChunkLen {
			n = maxChunkLen
		}
		block := snappy.Encode(nil, src[:n])
		src = src[n:]

		var hdr [chunkHeaderLen]byte
		binary.BigEndian.PutUint32(hdr[0:4], uint32(len(block)))
		binary.BigEndian.PutUint64(hdr[4:12], xxhash.Sum64(block))
		dst = append(dst, hdr[:]...)
		dst = append(dst, block...)
	}
	return dst
}

// Decode unframes and decompresses a stream produced by Encode. Any failure
// is reported as *Error.
func Decode(src []byte) ([]byte, error) {
	if len(src) < headerLen {
		return nil, &Error{Reason: ReasonEmpty}
	}
	for i, b := range magic {
		if src[i] != b {
			return nil, &Error{Reason: ReasonHeader, Header: append([]byte(nil), src[:headerLen]...)}
		}
	}
	if src[headerLen-1] != Version {
		return nil, &Error{Reason: ReasonVersion, Byte: src[headerLen-1]}
	}

	var dst []byte
	for off := headerLen; off < len(src); {
		rest := src[off:]
		if len(rest) < chunkHeaderLen {
			return nil, &Error{
				Reason:   ReasonTruncated,
				Expected: chunkHeaderLen,
				Got:      uint64(len(rest)),
				Offset:   off,
			}
		}
		blockLen := binary.BigEndian.Uint32(rest[0:4])
		sum := binary.BigEndian.Uint64(rest[4:12])
		body := rest[chunkHeaderLen:]
		if uint64(len(body)) < uint64(blockLen) {
			return nil, &Error{
				Reason:   ReasonTruncated,
				Expected: uint64(blockLen),
				Got:      uint64(len(body)),
				Offset:   off,
			}
		}
		block := body[:blockLen]
		if got := xxhash.Sum64(block); got != sum {
			return nil, &Error{
				Reason:   ReasonChecksum,
				Expected: sum,
				Got:      got,
				Offset:   off,
			}
		}
		out, err := snappy.Decode(nil, block)
		if err != nil {
			return nil, &Error{Reason: ReasonCorrupt, Offset: off}
		}
		dst = append(dst, out...)
		off += chunkHeaderLen + int(blockLen)
	}
	return dst, nil
}
