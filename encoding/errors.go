package encoding

import "errors"

// Sentinel errors for the codec's closed error taxonomy. Callers should
// match with errors.Is against these, or errors.As against *CodecError
// when the offending value or packet type is needed.
var (
	// ErrVariableByteIntegerTooLarge indicates an encode request for a
	// value exceeding MaxVariableByteInteger.
	ErrVariableByteIntegerTooLarge = errors.New("mqttcodec: variable byte integer exceeds maximum (268,435,455)")

	// ErrMalformedVariableByteInteger indicates a 5th continuation byte
	// was required to decode a variable byte integer.
	ErrMalformedVariableByteInteger = errors.New("mqttcodec: malformed variable byte integer")

	// ErrInvalidHeader covers reserved bits set incorrectly, packet type
	// 0 or 15, and mandatory low-nibble flag violations.
	ErrInvalidHeader = errors.New("mqttcodec: invalid fixed header")

	// ErrInvalidProtocol covers a CONNECT protocol name/level pair that
	// is not a recognized combination.
	ErrInvalidProtocol = errors.New("mqttcodec: invalid protocol name or level")

	// ErrInvalidConnectReturnCode covers a CONNACK return code outside 0..5.
	ErrInvalidConnectReturnCode = errors.New("mqttcodec: invalid connect return code")

	// ErrInvalidQoS covers a QoS byte not in {0, 1, 2}.
	ErrInvalidQoS = errors.New("mqttcodec: invalid QoS level")

	// ErrInvalidPid covers a packet identifier of 0.
	ErrInvalidPid = errors.New("mqttcodec: packet identifier must not be zero")

	// ErrInvalidString covers bytes declared as UTF-8 that fail validation.
	ErrInvalidString = errors.New("mqttcodec: invalid UTF-8 string")

	// ErrInvalidLength covers a varint overflowing the 4-byte cap, or a
	// declared length that overruns the bytes actually available.
	ErrInvalidLength = errors.New("mqttcodec: invalid length")

	// ErrTrailingBytes covers a fixed-shape packet body with unconsumed
	// bytes after a successful parse.
	ErrTrailingBytes = errors.New("mqttcodec: trailing bytes in packet body")

	// ErrBufferTooSmall covers a bounded-mode capacity exceeded during decode.
	ErrBufferTooSmall = errors.New("mqttcodec: buffer too small")

	// ErrWriteZero covers an encoder sink without enough remaining capacity.
	ErrWriteZero = errors.New("mqttcodec: sink has insufficient capacity")
)

// Kind reifies the spec's closed error taxonomy as an enum, one-to-one
// with the sentinel errors ErrInvalidHeader through ErrWriteZero above, so
// callers can switch on it without a chain of errors.Is calls. The two
// variable-byte-integer sentinels have no Kind of their own.
type Kind int

const (
	KindInvalidHeader Kind = iota
	KindInvalidProtocol
	KindInvalidConnectReturnCode
	KindInvalidQoS
	KindInvalidPid
	KindInvalidString
	KindInvalidLength
	KindTrailingBytes
	KindBufferTooSmall
	KindWriteZero
)

func (k Kind) String() string {
	names := [...]string{
		"InvalidHeader",
		"InvalidProtocol",
		"InvalidConnectReturnCode",
		"InvalidQoS",
		"InvalidPid",
		"InvalidString",
		"InvalidLength",
		"TrailingBytes",
		"BufferTooSmall",
		"WriteZero",
	}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// CodecError wraps one of the sentinel errors above with the context
// needed to act on it: the packet type being processed when the error
// occurred and, where applicable, the offending numeric value.
type CodecError struct {
	Kind  Kind
	Err   error
	Type  PacketType
	Value int64 // offending byte/length/value, when applicable; 0 otherwise
}

func (e *CodecError) Error() string {
	return e.Err.Error()
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

func newCodecError(kind Kind, err error, t PacketType, value int64) *CodecError {
	return &CodecError{Kind: kind, Err: err, Type: t, Value: value}
}

func errInvalidHeader(t PacketType) error {
	return newCodecError(KindInvalidHeader, ErrInvalidHeader, t, 0)
}

func errInvalidProtocol(t PacketType) error {
	return newCodecError(KindInvalidProtocol, ErrInvalidProtocol, t, 0)
}

func errInvalidConnectReturnCode(code byte) error {
	return newCodecError(KindInvalidConnectReturnCode, ErrInvalidConnectReturnCode, CONNACK, int64(code))
}

func errInvalidQoS(t PacketType, value byte) error {
	return newCodecError(KindInvalidQoS, ErrInvalidQoS, t, int64(value))
}

func errInvalidPid(t PacketType) error {
	return newCodecError(KindInvalidPid, ErrInvalidPid, t, 0)
}

func errInvalidString(t PacketType) error {
	return newCodecError(KindInvalidString, ErrInvalidString, t, 0)
}

func errInvalidLength(t PacketType, declared int64) error {
	return newCodecError(KindInvalidLength, ErrInvalidLength, t, declared)
}

func errTrailingBytes(t PacketType) error {
	return newCodecError(KindTrailingBytes, ErrTrailingBytes, t, 0)
}

func errBufferTooSmall(t PacketType, want int64) error {
	return newCodecError(KindBufferTooSmall, ErrBufferTooSmall, t, want)
}

func errWriteZero(t PacketType, want int64) error {
	return newCodecError(KindWriteZero, ErrWriteZero, t, want)
}
