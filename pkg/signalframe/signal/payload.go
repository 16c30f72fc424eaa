package signal

import (
	"encoding/binary"
	"errors"
)

// ErrShortPayload is returned when a payload is too small for the layout it
// is being decoded as.
var ErrShortPayload = errors.New("signal: payload too short")

// Embedded returns the signal id carried in the first two bytes of a payload.
// Producers that report on behalf of another signal (pin verification, lock
// screen turn-on) place that signal first, little endian.
func Embedded(payload []byte) (ID, bool) {
	if len(payload) < 2 {
		return 0, false
	}
	return ID(binary.LittleEndian.Uint16(payload)), true
}

// Tag returns a two byte payload carrying only id.
func Tag(id ID) []byte {
	return binary.LittleEndian.AppendUint16(nil, uint16(id))
}

// VerifyResult is the payload of VerifyPasswordPass and VerifyPasswordFail.
// Signal names the request that triggered the verification.
type VerifyResult struct {
	Signal     ID
	ErrorCount uint16
}

const verifyResultLen = 4

// Encode lays the result out as signal, error count.
func (r VerifyResult) Encode() []byte {
	buf := make([]byte, 0, verifyResultLen)
	buf = binary.LittleEndian.AppendUint16(buf, uint16(r.Signal))
	buf = binary.LittleEndian.AppendUint16(buf, r.ErrorCount)
	return buf
}

// DecodeVerifyResult parses a VerifyResult payload.
func DecodeVerifyResult(payload []byte) (VerifyResult, error) {
	if len(payload) < verifyResultLen {
		return VerifyResult{}, ErrShortPayload
	}
	return VerifyResult{
		Signal:     ID(binary.LittleEndian.Uint16(payload[0:2])),
		ErrorCount: binary.LittleEndian.Uint16(payload[2:4]),
	}, nil
}

// EncodeEmit builds the message a producer queues for the UI task: the signal
// followed by its parameter bytes.
func EncodeEmit(id ID, param []byte) []byte {
	buf := make([]byte, 0, 2+len(param))
	buf = binary.LittleEndian.AppendUint16(buf, uint16(id))
	return append(buf, param...)
}

// DecodeEmit splits a queued emit message into signal and parameter.
// The parameter aliases data.
func DecodeEmit(data []byte) (ID, []byte, error) {
	if len(data) < 2 {
		return 0, nil, ErrShortPayload
	}
	id := ID(binary.LittleEndian.Uint16(data))
	if len(data) == 2 {
		return id, nil, nil
	}
	return id, data[2:], nil
}
