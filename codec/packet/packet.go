// Package packet exposes the public Packet sum type and the top-level
// Decode/Encode entry points dispatching across all 14 MQTT 3.1.1
// control packet types.
package packet

import (
	"github.com/axmq/mqttcodec/encoding"
)

// Packet is a tagged union over the 14 MQTT 3.1.1 control packet
// types. The discriminant is unexported; callers read it with Type()
// and switch on it to find which body field is populated. Exactly one
// body field is meaningful for variants that carry one — the others
// remain the zero value.
type Packet struct {
	typ encoding.PacketType

	Connect     *encoding.Connect
	Connack     *encoding.Connack
	Publish     *encoding.Publish
	Puback      encoding.Pid
	Pubrec      encoding.Pid
	Pubrel      encoding.Pid
	Pubcomp     encoding.Pid
	Subscribe   *encoding.Subscribe
	Suback      *encoding.Suback
	Unsubscribe *encoding.Unsubscribe
	Unsuback    encoding.Pid
	// Pingreq, Pingresp, Disconnect carry no data beyond Type().
}

// Type reports which of the 14 variants p holds, mirroring the
// original implementation's get_type accessor.
func (p Packet) Type() encoding.PacketType {
	return p.typ
}

// String renders the packet's type name for logging/%v formatting.
func (p Packet) String() string {
	return p.typ.String()
}

func NewConnect(c *encoding.Connect) Packet         { return Packet{typ: encoding.CONNECT, Connect: c} }
func NewConnack(c *encoding.Connack) Packet         { return Packet{typ: encoding.CONNACK, Connack: c} }
func NewPublish(p *encoding.Publish) Packet         { return Packet{typ: encoding.PUBLISH, Publish: p} }
func NewPuback(pid encoding.Pid) Packet             { return Packet{typ: encoding.PUBACK, Puback: pid} }
func NewPubrec(pid encoding.Pid) Packet             { return Packet{typ: encoding.PUBREC, Pubrec: pid} }
func NewPubrel(pid encoding.Pid) Packet             { return Packet{typ: encoding.PUBREL, Pubrel: pid} }
func NewPubcomp(pid encoding.Pid) Packet            { return Packet{typ: encoding.PUBCOMP, Pubcomp: pid} }
func NewSubscribe(s *encoding.Subscribe) Packet     { return Packet{typ: encoding.SUBSCRIBE, Subscribe: s} }
func NewSuback(s *encoding.Suback) Packet           { return Packet{typ: encoding.SUBACK, Suback: s} }
func NewUnsubscribe(u *encoding.Unsubscribe) Packet { return Packet{typ: encoding.UNSUBSCRIBE, Unsubscribe: u} }
func NewUnsuback(pid encoding.Pid) Packet           { return Packet{typ: encoding.UNSUBACK, Unsuback: pid} }
func NewPingreq() Packet                            { return Packet{typ: encoding.PINGREQ} }
func NewPingresp() Packet                           { return Packet{typ: encoding.PINGRESP} }
func NewDisconnect() Packet                         { return Packet{typ: encoding.DISCONNECT} }
