package packet

import (
	"github.com/axmq/mqttcodec/encoding"
)

// Outcome is the tri-state result of Decode: exactly one of Complete,
// Incomplete, or Error describes what happened. It is a distinct type
// from encoding.Status so callers of this package's public API never
// need to import the lower-level encoding package just to branch on the
// result.
type Outcome int

const (
	OutcomeIncomplete Outcome = iota
	OutcomeComplete
	OutcomeError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeComplete:
		return "Complete"
	case OutcomeIncomplete:
		return "Incomplete"
	case OutcomeError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Decode attempts to frame and parse one packet from the start of
// accumulator.
//
//   - OutcomeComplete: pkt is populated, and consumed reports exactly how
//     many leading bytes of accumulator made up the packet — the caller
//     is expected to drop accumulator[:consumed] before the next call.
//   - OutcomeIncomplete: pkt is the zero value, consumed is 0, err is
//     nil. accumulator MUST be treated as unread; the caller awaits more
//     bytes and retries with the same (or an appended) buffer.
//   - OutcomeError: the byte accumulator is in an undefined state; the
//     caller MUST NOT retry decoding from it and should close the
//     stream.
func Decode(accumulator []byte, limits encoding.Limits) (pkt Packet, consumed int, outcome Outcome, err error) {
	header, headerLen, status, err := encoding.ParseFixedHeader(accumulator)
	switch status {
	case encoding.StatusIncomplete:
		return Packet{}, 0, OutcomeIncomplete, nil
	case encoding.StatusError:
		return Packet{}, 0, OutcomeError, err
	}

	total := headerLen + int(header.RemainingLength)
	if len(accumulator) < total {
		return Packet{}, 0, OutcomeIncomplete, nil
	}

	body := accumulator[headerLen:total]

	p, err := decodeBody(header, body, limits)
	if err != nil {
		return Packet{}, 0, OutcomeError, err
	}

	return p, total, OutcomeComplete, nil
}

func decodeBody(header encoding.FixedHeader, body []byte, limits encoding.Limits) (Packet, error) {
	switch header.Type {
	case encoding.CONNECT:
		c, err := encoding.DecodeConnect(body, limits)
		if err != nil {
			return Packet{}, err
		}
		return NewConnect(c), nil
	case encoding.CONNACK:
		c, err := encoding.DecodeConnack(body)
		if err != nil {
			return Packet{}, err
		}
		return NewConnack(c), nil
	case encoding.PUBLISH:
		p, err := encoding.DecodePublish(header, body, limits)
		if err != nil {
			return Packet{}, err
		}
		return NewPublish(p), nil
	case encoding.PUBACK:
		pid, err := encoding.DecodePid(encoding.PUBACK, body)
		if err != nil {
			return Packet{}, err
		}
		return NewPuback(pid), nil
	case encoding.PUBREC:
		pid, err := encoding.DecodePid(encoding.PUBREC, body)
		if err != nil {
			return Packet{}, err
		}
		return NewPubrec(pid), nil
	case encoding.PUBREL:
		pid, err := encoding.DecodePid(encoding.PUBREL, body)
		if err != nil {
			return Packet{}, err
		}
		return NewPubrel(pid), nil
	case encoding.PUBCOMP:
		pid, err := encoding.DecodePid(encoding.PUBCOMP, body)
		if err != nil {
			return Packet{}, err
		}
		return NewPubcomp(pid), nil
	case encoding.SUBSCRIBE:
		s, err := encoding.DecodeSubscribe(body, limits)
		if err != nil {
			return Packet{}, err
		}
		return NewSubscribe(s), nil
	case encoding.SUBACK:
		s, err := encoding.DecodeSuback(body)
		if err != nil {
			return Packet{}, err
		}
		return NewSuback(s), nil
	case encoding.UNSUBSCRIBE:
		u, err := encoding.DecodeUnsubscribe(body, limits)
		if err != nil {
			return Packet{}, err
		}
		return NewUnsubscribe(u), nil
	case encoding.UNSUBACK:
		pid, err := encoding.DecodePid(encoding.UNSUBACK, body)
		if err != nil {
			return Packet{}, err
		}
		return NewUnsuback(pid), nil
	case encoding.PINGREQ:
		if err := encoding.DecodeEmpty(encoding.PINGREQ, body); err != nil {
			return Packet{}, err
		}
		return NewPingreq(), nil
	case encoding.PINGRESP:
		if err := encoding.DecodeEmpty(encoding.PINGRESP, body); err != nil {
			return Packet{}, err
		}
		return NewPingresp(), nil
	case encoding.DISCONNECT:
		if err := encoding.DecodeEmpty(encoding.DISCONNECT, body); err != nil {
			return Packet{}, err
		}
		return NewDisconnect(), nil
	default:
		return Packet{}, encoding.ErrInvalidHeader
	}
}
