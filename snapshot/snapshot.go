// Package snapshot serializes a decoded packet.Packet to and from CBOR
// for use as a debugging/golden-fixture format. It never appears on the
// MQTT wire; it exists so tests can persist a corpus of decoded packets
// as structured, diffable fixtures instead of raw frame bytes.
package snapshot

import (
	"github.com/fxamacker/cbor/v2"

	"github.com/axmq/mqttcodec/codec/packet"
	"github.com/axmq/mqttcodec/encoding"
)

// dto mirrors packet.Packet's exported surface for CBOR marshaling.
// packet.Packet's discriminant is unexported by design (callers read it
// through Type()), so this package carries its own copy alongside the
// body fields and reconstructs the Packet through its constructors on
// Decode.
type dto struct {
	Type encoding.PacketType

	Connect     *encoding.Connect     `cbor:",omitempty"`
	Connack     *encoding.Connack     `cbor:",omitempty"`
	Publish     *encoding.Publish     `cbor:",omitempty"`
	Puback      encoding.Pid          `cbor:",omitempty"`
	Pubrec      encoding.Pid          `cbor:",omitempty"`
	Pubrel      encoding.Pid          `cbor:",omitempty"`
	Pubcomp     encoding.Pid          `cbor:",omitempty"`
	Subscribe   *encoding.Subscribe   `cbor:",omitempty"`
	Suback      *encoding.Suback      `cbor:",omitempty"`
	Unsubscribe *encoding.Unsubscribe `cbor:",omitempty"`
	Unsuback    encoding.Pid          `cbor:",omitempty"`
}

// Encode marshals p to CBOR, the same library and call shape
// (cbor.Marshal on a generic value) used elsewhere in this codebase's
// lineage for persisting arbitrary values.
func Encode(p packet.Packet) ([]byte, error) {
	d := dto{
		Type:        p.Type(),
		Connect:     p.Connect,
		Connack:     p.Connack,
		Publish:     p.Publish,
		Puback:      p.Puback,
		Pubrec:      p.Pubrec,
		Pubrel:      p.Pubrel,
		Pubcomp:     p.Pubcomp,
		Subscribe:   p.Subscribe,
		Suback:      p.Suback,
		Unsubscribe: p.Unsubscribe,
		Unsuback:    p.Unsuback,
	}
	return cbor.Marshal(d)
}

// Decode unmarshals a CBOR snapshot produced by Encode back into a
// packet.Packet.
func Decode(data []byte) (packet.Packet, error) {
	var d dto
	if err := cbor.Unmarshal(data, &d); err != nil {
		return packet.Packet{}, err
	}

	switch d.Type {
	case encoding.CONNECT:
		return packet.NewConnect(d.Connect), nil
	case encoding.CONNACK:
		return packet.NewConnack(d.Connack), nil
	case encoding.PUBLISH:
		return packet.NewPublish(d.Publish), nil
	case encoding.PUBACK:
		return packet.NewPuback(d.Puback), nil
	case encoding.PUBREC:
		return packet.NewPubrec(d.Pubrec), nil
	case encoding.PUBREL:
		return packet.NewPubrel(d.Pubrel), nil
	case encoding.PUBCOMP:
		return packet.NewPubcomp(d.Pubcomp), nil
	case encoding.SUBSCRIBE:
		return packet.NewSubscribe(d.Subscribe), nil
	case encoding.SUBACK:
		return packet.NewSuback(d.Suback), nil
	case encoding.UNSUBSCRIBE:
		return packet.NewUnsubscribe(d.Unsubscribe), nil
	case encoding.UNSUBACK:
		return packet.NewUnsuback(d.Unsuback), nil
	case encoding.PINGREQ:
		return packet.NewPingreq(), nil
	case encoding.PINGRESP:
		return packet.NewPingresp(), nil
	case encoding.DISCONNECT:
		return packet.NewDisconnect(), nil
	default:
		return packet.Packet{}, encoding.ErrInvalidHeader
	}
}
