package packet

import (
	"github.com/axmq/mqttcodec/encoding"
)

// Encode writes p's wire form to sink, returning the number of bytes
// written. It computes remaining_length up front and checks the sink's
// capacity before writing; on ErrWriteZero nothing has been written to
// the sink.
func Encode(sink encoding.Sink, p Packet) (int, error) {
	var buf []byte
	switch p.typ {
	case encoding.CONNECT:
		buf = encoding.EncodeConnect(buf, p.Connect)
	case encoding.CONNACK:
		buf = encoding.EncodeConnack(buf, p.Connack)
	case encoding.PUBLISH:
		buf = encoding.EncodePublish(buf, p.Publish)
	case encoding.PUBACK:
		buf = encoding.EncodePid(buf, encoding.PUBACK, p.Puback)
	case encoding.PUBREC:
		buf = encoding.EncodePid(buf, encoding.PUBREC, p.Pubrec)
	case encoding.PUBREL:
		buf = encoding.EncodePid(buf, encoding.PUBREL, p.Pubrel)
	case encoding.PUBCOMP:
		buf = encoding.EncodePid(buf, encoding.PUBCOMP, p.Pubcomp)
	case encoding.SUBSCRIBE:
		buf = encoding.EncodeSubscribe(buf, p.Subscribe)
	case encoding.SUBACK:
		buf = encoding.EncodeSuback(buf, p.Suback)
	case encoding.UNSUBSCRIBE:
		buf = encoding.EncodeUnsubscribe(buf, p.Unsubscribe)
	case encoding.UNSUBACK:
		buf = encoding.EncodePid(buf, encoding.UNSUBACK, p.Unsuback)
	case encoding.PINGREQ:
		buf = encoding.EncodeEmpty(buf, encoding.PINGREQ)
	case encoding.PINGRESP:
		buf = encoding.EncodeEmpty(buf, encoding.PINGRESP)
	case encoding.DISCONNECT:
		buf = encoding.EncodeEmpty(buf, encoding.DISCONNECT)
	default:
		return 0, encoding.ErrInvalidHeader
	}

	if sink.Remaining() >= 0 && len(buf) > sink.Remaining() {
		return 0, encoding.ErrWriteZero
	}
	return sink.Write(buf)
}
