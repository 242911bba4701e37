package encoding

// SubscribeTopic is one (topic filter, requested QoS) pair in a
// SUBSCRIBE body.
type SubscribeTopic struct {
	TopicPath string
	QoS       QoS
}

// SubscribeReturnCode is one byte of a SUBACK body: either a granted
// QoS or a failure marker (wire value 0x80).
type SubscribeReturnCode struct {
	Success bool
	QoS     QoS // meaningful only if Success
}

const subscribeFailureCode = 0x80

func (c SubscribeReturnCode) encode() byte {
	if !c.Success {
		return subscribeFailureCode
	}
	return byte(c.QoS)
}

func decodeSubscribeReturnCode(b byte) (SubscribeReturnCode, error) {
	if b == subscribeFailureCode {
		return SubscribeReturnCode{Success: false}, nil
	}
	qos := QoS(b)
	if !qos.IsValid() {
		return SubscribeReturnCode{}, errInvalidQoS(SUBACK, b)
	}
	return SubscribeReturnCode{Success: true, QoS: qos}, nil
}

// Subscribe is the SUBSCRIBE packet body: a Pid and a non-empty
// sequence of topic subscriptions.
type Subscribe struct {
	Pid    Pid
	Topics []SubscribeTopic
}

// Suback is the SUBACK packet body: a Pid and a non-empty sequence of
// per-topic return codes.
type Suback struct {
	Pid         Pid
	ReturnCodes []SubscribeReturnCode
}

// Unsubscribe is the UNSUBSCRIBE packet body: a Pid and a non-empty
// sequence of topic filters.
type Unsubscribe struct {
	Pid    Pid
	Topics []string
}

// DecodeSubscribe decodes a SUBSCRIBE body.
func DecodeSubscribe(body []byte, limits Limits) (*Subscribe, error) {
	raw, n, err := ReadUint16(body, SUBSCRIBE)
	if err != nil {
		return nil, err
	}
	pid, err := NewPid(raw, SUBSCRIBE)
	if err != nil {
		return nil, err
	}
	body = body[n:]

	var topics []SubscribeTopic
	for len(body) > 0 {
		path, n, err := ReadString(body, limits.MaxTopicLen, SUBSCRIBE)
		if err != nil {
			return nil, err
		}
		body = body[n:]

		if len(body) < 1 {
			return nil, errInvalidLength(SUBSCRIBE, 1)
		}
		qos := QoS(body[0])
		if !qos.IsValid() {
			return nil, errInvalidQoS(SUBSCRIBE, body[0])
		}
		body = body[1:]

		topics = append(topics, SubscribeTopic{TopicPath: path, QoS: qos})
		if len(topics) > limits.MaxSubscriptions {
			return nil, errBufferTooSmall(SUBSCRIBE, int64(len(topics)))
		}
	}

	if len(topics) == 0 {
		return nil, errInvalidLength(SUBSCRIBE, 0)
	}

	return &Subscribe{Pid: pid, Topics: topics}, nil
}

// bodyLen computes the SUBSCRIBE body's remaining length.
func (s *Subscribe) bodyLen() uint32 {
	n := 2
	for _, t := range s.Topics {
		n += 2 + len(t.TopicPath) + 1
	}
	return uint32(n)
}

// EncodeSubscribe appends the wire form of a SUBSCRIBE packet to buf.
func EncodeSubscribe(buf []byte, s *Subscribe) []byte {
	h := FixedHeader{Type: SUBSCRIBE, RemainingLength: s.bodyLen()}
	buf = appendFixedHeader(buf, h)
	buf = WriteUint16(buf, uint16(s.Pid))
	for _, t := range s.Topics {
		buf = WriteString(buf, t.TopicPath)
		buf = append(buf, byte(t.QoS))
	}
	return buf
}

// DecodeSuback decodes a SUBACK body.
func DecodeSuback(body []byte) (*Suback, error) {
	raw, n, err := ReadUint16(body, SUBACK)
	if err != nil {
		return nil, err
	}
	pid, err := NewPid(raw, SUBACK)
	if err != nil {
		return nil, err
	}
	body = body[n:]

	if len(body) == 0 {
		return nil, errInvalidLength(SUBACK, 0)
	}

	codes := make([]SubscribeReturnCode, 0, len(body))
	for _, b := range body {
		code, err := decodeSubscribeReturnCode(b)
		if err != nil {
			return nil, err
		}
		codes = append(codes, code)
	}

	return &Suback{Pid: pid, ReturnCodes: codes}, nil
}

// EncodeSuback appends the wire form of a SUBACK packet to buf.
func EncodeSuback(buf []byte, s *Suback) []byte {
	h := FixedHeader{Type: SUBACK, RemainingLength: uint32(2 + len(s.ReturnCodes))}
	buf = appendFixedHeader(buf, h)
	buf = WriteUint16(buf, uint16(s.Pid))
	for _, c := range s.ReturnCodes {
		buf = append(buf, c.encode())
	}
	return buf
}

// DecodeUnsubscribe decodes an UNSUBSCRIBE body.
func DecodeUnsubscribe(body []byte, limits Limits) (*Unsubscribe, error) {
	raw, n, err := ReadUint16(body, UNSUBSCRIBE)
	if err != nil {
		return nil, err
	}
	pid, err := NewPid(raw, UNSUBSCRIBE)
	if err != nil {
		return nil, err
	}
	body = body[n:]

	var topics []string
	for len(body) > 0 {
		topic, n, err := ReadString(body, limits.MaxTopicLen, UNSUBSCRIBE)
		if err != nil {
			return nil, err
		}
		body = body[n:]
		topics = append(topics, topic)
		if len(topics) > limits.MaxSubscriptions {
			return nil, errBufferTooSmall(UNSUBSCRIBE, int64(len(topics)))
		}
	}

	if len(topics) == 0 {
		return nil, errInvalidLength(UNSUBSCRIBE, 0)
	}

	return &Unsubscribe{Pid: pid, Topics: topics}, nil
}

// bodyLen computes the UNSUBSCRIBE body's remaining length.
func (u *Unsubscribe) bodyLen() uint32 {
	n := 2
	for _, t := range u.Topics {
		n += 2 + len(t)
	}
	return uint32(n)
}

// EncodeUnsubscribe appends the wire form of an UNSUBSCRIBE packet to buf.
func EncodeUnsubscribe(buf []byte, u *Unsubscribe) []byte {
	h := FixedHeader{Type: UNSUBSCRIBE, RemainingLength: u.bodyLen()}
	buf = appendFixedHeader(buf, h)
	buf = WriteUint16(buf, uint16(u.Pid))
	for _, t := range u.Topics {
		buf = WriteString(buf, t)
	}
	return buf
}
