package encoding

// ConnectReturnCode is the CONNACK result code. Decoders reject any
// value outside this set.
type ConnectReturnCode byte

const (
	Accepted ConnectReturnCode = iota
	RefusedProtocolVersion
	RefusedIdentifierRejected
	RefusedServerUnavailable
	RefusedBadUserNamePassword
	RefusedNotAuthorized
)

func (c ConnectReturnCode) valid() bool {
	return c <= RefusedNotAuthorized
}

// Connack is the CONNACK packet body.
type Connack struct {
	SessionPresent bool
	Code           ConnectReturnCode
}

// DecodeConnack decodes a two-byte CONNACK body.
func DecodeConnack(body []byte) (*Connack, error) {
	if len(body) != 2 {
		if len(body) < 2 {
			return nil, errInvalidLength(CONNACK, int64(len(body)))
		}
		return nil, errTrailingBytes(CONNACK)
	}

	flags := body[0]
	if flags&0xFE != 0 {
		return nil, errInvalidHeader(CONNACK)
	}

	code := ConnectReturnCode(body[1])
	if !code.valid() {
		return nil, errInvalidConnectReturnCode(body[1])
	}

	sessionPresent := flags&0x01 != 0
	if code != Accepted && sessionPresent {
		return nil, errInvalidHeader(CONNACK)
	}

	return &Connack{SessionPresent: sessionPresent, Code: code}, nil
}

// EncodeConnack appends the wire form of a CONNACK packet to buf.
func EncodeConnack(buf []byte, c *Connack) []byte {
	h := FixedHeader{Type: CONNACK, RemainingLength: 2}
	buf = appendFixedHeader(buf, h)

	var flags byte
	if c.SessionPresent {
		flags = 0x01
	}
	return append(buf, flags, byte(c.Code))
}
