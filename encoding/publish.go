package encoding

// QosPid couples a QoS level with the packet identifier it requires:
// QoS0 carries none, QoS1/QoS2 carry a non-zero Pid. Constructing one
// directly with an inconsistent pairing is a programmer error; decode
// always produces a consistent value.
type QosPid struct {
	QoS QoS
	Pid Pid // zero and unused when QoS == QoS0
}

// AtMostOnce is the QoS0 QosPid, carrying no packet identifier.
var AtMostOnce = QosPid{QoS: QoS0}

// AtLeastOnce returns the QoS1 QosPid carrying pid.
func AtLeastOnce(pid Pid) QosPid {
	return QosPid{QoS: QoS1, Pid: pid}
}

// ExactlyOnce returns the QoS2 QosPid carrying pid.
func ExactlyOnce(pid Pid) QosPid {
	return QosPid{QoS: QoS2, Pid: pid}
}

// Publish is the PUBLISH packet body. Dup/QoS/Retain are carried
// separately on the fixed header on the wire but folded into QosPid and
// Dup here for a self-contained value.
type Publish struct {
	Dup       bool
	QosPid    QosPid
	Retain    bool
	TopicName string
	Payload   []byte
}

// DecodePublish decodes a PUBLISH body given the fixed header that
// preceded it (for Dup/QoS/Retain) and the bytes of the body.
func DecodePublish(header FixedHeader, body []byte, limits Limits) (*Publish, error) {
	topic, n, err := ReadString(body, limits.MaxTopicLen, PUBLISH)
	if err != nil {
		return nil, err
	}
	body = body[n:]

	var qosPid QosPid
	switch header.QoS {
	case QoS0:
		if header.Dup {
			return nil, errInvalidHeader(PUBLISH)
		}
		qosPid = AtMostOnce
	case QoS1, QoS2:
		raw, n, err := ReadUint16(body, PUBLISH)
		if err != nil {
			return nil, err
		}
		body = body[n:]
		pid, err := NewPid(raw, PUBLISH)
		if err != nil {
			return nil, err
		}
		if header.QoS == QoS1 {
			qosPid = AtLeastOnce(pid)
		} else {
			qosPid = ExactlyOnce(pid)
		}
	}

	if len(body) > limits.MaxPayloadLen {
		return nil, errBufferTooSmall(PUBLISH, int64(len(body)))
	}
	payload := make([]byte, len(body))
	copy(payload, body)

	return &Publish{
		Dup:       header.Dup,
		QosPid:    qosPid,
		Retain:    header.Retain,
		TopicName: topic,
		Payload:   payload,
	}, nil
}

// bodyLen computes the PUBLISH body's remaining length.
func (p *Publish) bodyLen() uint32 {
	n := 2 + len(p.TopicName) + len(p.Payload)
	if p.QosPid.QoS != QoS0 {
		n += 2
	}
	return uint32(n)
}

// EncodePublish appends the wire form of a PUBLISH packet to buf.
func EncodePublish(buf []byte, p *Publish) []byte {
	h := FixedHeader{
		Type:            PUBLISH,
		Dup:             p.Dup,
		QoS:             p.QosPid.QoS,
		Retain:          p.Retain,
		RemainingLength: p.bodyLen(),
	}
	buf = appendFixedHeader(buf, h)
	buf = WriteString(buf, p.TopicName)
	if p.QosPid.QoS != QoS0 {
		buf = WriteUint16(buf, uint16(p.QosPid.Pid))
	}
	return append(buf, p.Payload...)
}
