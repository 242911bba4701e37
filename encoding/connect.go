package encoding

// Protocol is the protocol-name/level pair declared at the start of a
// CONNECT body. MQTT 3.1.1 uses name "MQTT" / level 4; the legacy
// "MQIsdp" / 3 pairing is also recognized. Any other combination is
// rejected.
type Protocol struct {
	Name  string
	Level byte
}

var (
	ProtocolMQTT311 = Protocol{Name: "MQTT", Level: 4}
	ProtocolMQIsdp3 = Protocol{Name: "MQIsdp", Level: 3}
)

func (p Protocol) valid() bool {
	return p == ProtocolMQTT311 || p == ProtocolMQIsdp3
}

// LastWill is the optional will message carried by a Connect body.
type LastWill struct {
	Topic   string
	Message []byte
	QoS     QoS
	Retain  bool
}

// Connect is the CONNECT packet body.
type Connect struct {
	Protocol      Protocol
	KeepAlive     uint16
	ClientID      string
	CleanSession  bool
	LastWill      *LastWill
	Username      *string
	Password      *[]byte
}

const (
	connectFlagCleanSession = 0x02
	connectFlagWill         = 0x04
	connectFlagWillQoSMask  = 0x18
	connectFlagWillQoSShift = 3
	connectFlagWillRetain   = 0x20
	connectFlagPassword     = 0x40
	connectFlagUsername     = 0x80
	connectFlagReserved     = 0x01
)

// DecodeConnect decodes a CONNECT body (the bytes after the fixed
// header) according to limits.
func DecodeConnect(body []byte, limits Limits) (*Connect, error) {
	name, n, err := ReadString(body, maxMQTTStringLen, CONNECT)
	if err != nil {
		return nil, err
	}
	body = body[n:]

	if len(body) < 1 {
		return nil, errInvalidLength(CONNECT, 1)
	}
	level := body[0]
	body = body[1:]

	proto := Protocol{Name: name, Level: level}
	if !proto.valid() {
		return nil, errInvalidProtocol(CONNECT)
	}

	if len(body) < 1 {
		return nil, errInvalidLength(CONNECT, 1)
	}
	flags := body[0]
	body = body[1:]

	if flags&connectFlagReserved != 0 {
		return nil, errInvalidHeader(CONNECT)
	}

	willFlag := flags&connectFlagWill != 0
	willQoS := QoS((flags & connectFlagWillQoSMask) >> connectFlagWillQoSShift)
	willRetain := flags&connectFlagWillRetain != 0
	passwordFlag := flags&connectFlagPassword != 0
	usernameFlag := flags&connectFlagUsername != 0

	if !willQoS.IsValid() {
		return nil, errInvalidQoS(CONNECT, byte(willQoS))
	}
	if !willFlag && (willQoS != QoS0 || willRetain) {
		return nil, errInvalidHeader(CONNECT)
	}

	keepAlive, n, err := ReadUint16(body, CONNECT)
	if err != nil {
		return nil, err
	}
	body = body[n:]

	clientID, n, err := ReadString(body, limits.MaxClientIDLen, CONNECT)
	if err != nil {
		return nil, err
	}
	body = body[n:]

	c := &Connect{
		Protocol:     proto,
		KeepAlive:    keepAlive,
		ClientID:     clientID,
		CleanSession: flags&connectFlagCleanSession != 0,
	}

	if willFlag {
		topic, n, err := ReadString(body, limits.MaxTopicLen, CONNECT)
		if err != nil {
			return nil, err
		}
		body = body[n:]

		message, n, err := ReadByteString(body, limits.MaxPayloadLen, CONNECT)
		if err != nil {
			return nil, err
		}
		body = body[n:]

		msgCopy := append([]byte(nil), message...)
		c.LastWill = &LastWill{Topic: topic, Message: msgCopy, QoS: willQoS, Retain: willRetain}
	}

	if usernameFlag {
		username, n, err := ReadString(body, limits.MaxUsernameLen, CONNECT)
		if err != nil {
			return nil, err
		}
		body = body[n:]
		c.Username = &username
	}

	if passwordFlag {
		password, n, err := ReadByteString(body, limits.MaxPasswordLen, CONNECT)
		if err != nil {
			return nil, err
		}
		body = body[n:]
		pwCopy := append([]byte(nil), password...)
		c.Password = &pwCopy
	}

	if len(body) != 0 {
		return nil, errTrailingBytes(CONNECT)
	}

	// Checked last so a malformed password/username field (e.g. a
	// declared length overrunning the body) is reported as that
	// malformation rather than masked by this cross-field rule.
	if passwordFlag && !usernameFlag {
		return nil, errInvalidHeader(CONNECT)
	}

	return c, nil
}

// flagsByte computes the connect-flags byte for c.
func (c *Connect) flagsByte() byte {
	var flags byte
	if c.CleanSession {
		flags |= connectFlagCleanSession
	}
	if c.LastWill != nil {
		flags |= connectFlagWill
		flags |= byte(c.LastWill.QoS) << connectFlagWillQoSShift
		if c.LastWill.Retain {
			flags |= connectFlagWillRetain
		}
	}
	if c.Username != nil {
		flags |= connectFlagUsername
	}
	if c.Password != nil {
		flags |= connectFlagPassword
	}
	return flags
}

// bodyLen computes the CONNECT body's remaining length.
func (c *Connect) bodyLen() uint32 {
	n := 2 + len(c.Protocol.Name) + 1 + 1 + 2 + 2 + len(c.ClientID)
	if c.LastWill != nil {
		n += 2 + len(c.LastWill.Topic) + 2 + len(c.LastWill.Message)
	}
	if c.Username != nil {
		n += 2 + len(*c.Username)
	}
	if c.Password != nil {
		n += 2 + len(*c.Password)
	}
	return uint32(n)
}

// EncodeConnect appends the wire form of the full CONNECT packet
// (fixed header + body) to buf.
func EncodeConnect(buf []byte, c *Connect) []byte {
	h := FixedHeader{Type: CONNECT, RemainingLength: c.bodyLen()}
	buf = appendFixedHeader(buf, h)

	buf = WriteString(buf, c.Protocol.Name)
	buf = append(buf, c.Protocol.Level, c.flagsByte())
	buf = WriteUint16(buf, c.KeepAlive)
	buf = WriteString(buf, c.ClientID)

	if c.LastWill != nil {
		buf = WriteString(buf, c.LastWill.Topic)
		buf = WriteByteString(buf, c.LastWill.Message)
	}
	if c.Username != nil {
		buf = WriteString(buf, *c.Username)
	}
	if c.Password != nil {
		buf = WriteByteString(buf, *c.Password)
	}
	return buf
}
