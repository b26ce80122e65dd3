package protocol

import "encoding/binary"

// Wire framing: every message travels as a 4-byte unsigned big-endian
// length followed by that many payload bytes.

const frameHeaderSize = 4

// EncodeFrame prepends the length prefix to a payload.
func EncodeFrame(payload []byte) []byte {
	buf := make([]byte, frameHeaderSize+len(payload))
	binary.BigEndian.PutUint32(buf, uint32(len(payload)))
	copy(buf[frameHeaderSize:], payload)
	return buf
}

// FrameDecoder reassembles length-prefixed payloads from a byte stream
// that arrives in arbitrary chunks. A partial prefix or payload stays
// buffered until the remaining bytes arrive; there is no length cap, but
// memory grows only with bytes actually received, never with the declared
// length alone.
type FrameDecoder struct {
	buf []byte
}

// Feed appends p to the buffer and returns every payload that is now
// complete, in arrival order. Feeding empty input never produces frames.
func (d *FrameDecoder) Feed(p []byte) [][]byte {
	d.buf = append(d.buf, p...)
	var payloads [][]byte
	for {
		if len(d.buf) < frameHeaderSize {
			return payloads
		}
		size := binary.BigEndian.Uint32(d.buf)
		if uint64(len(d.buf)-frameHeaderSize) < uint64(size) {
			return payloads
		}
		payload := make([]byte, size)
		copy(payload, d.buf[frameHeaderSize:frameHeaderSize+int(size)])
		d.buf = d.buf[frameHeaderSize+int(size):]
		payloads = append(payloads, payload)
	}
}
