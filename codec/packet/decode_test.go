package packet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axmq/mqttcodec/encoding"
)

func allPackets(t *testing.T) []Packet {
	t.Helper()
	username := "bob"
	password := []byte("secret")

	return []Packet{
		NewConnect(&encoding.Connect{
			Protocol: encoding.ProtocolMQTT311, KeepAlive: 60, ClientID: "client-1", CleanSession: true,
		}),
		NewConnect(&encoding.Connect{
			Protocol: encoding.ProtocolMQTT311, KeepAlive: 10, ClientID: "client-2",
			LastWill: &encoding.LastWill{Topic: "will/topic", Message: []byte("bye"), QoS: encoding.QoS1, Retain: true},
			Username: &username, Password: &password,
		}),
		NewConnack(&encoding.Connack{SessionPresent: false, Code: encoding.Accepted}),
		NewConnack(&encoding.Connack{SessionPresent: true, Code: encoding.Accepted}),
		NewPublish(&encoding.Publish{QosPid: encoding.AtMostOnce, TopicName: "a/b", Payload: []byte("hello")}),
		NewPublish(&encoding.Publish{QosPid: encoding.AtLeastOnce(1), TopicName: "a/b", Payload: []byte("hello")}),
		NewPublish(&encoding.Publish{Dup: true, QosPid: encoding.ExactlyOnce(2), Retain: true, TopicName: "c", Payload: []byte{}}),
		NewPuback(1),
		NewPubrec(2),
		NewPubrel(3),
		NewPubcomp(4),
		NewSubscribe(&encoding.Subscribe{Pid: 1, Topics: []encoding.SubscribeTopic{
			{TopicPath: "a/b", QoS: encoding.QoS1}, {TopicPath: "c", QoS: encoding.QoS0},
		}}),
		NewSuback(&encoding.Suback{Pid: 1, ReturnCodes: []encoding.SubscribeReturnCode{
			{Success: true, QoS: encoding.QoS1}, {Success: false},
		}}),
		NewUnsubscribe(&encoding.Unsubscribe{Pid: 1, Topics: []string{"a/b", "c"}}),
		NewUnsuback(5),
		NewPingreq(),
		NewPingresp(),
		NewDisconnect(),
	}
}

func encodePacket(t *testing.T, p Packet) []byte {
	t.Helper()
	sink := encoding.NewGrowingSink()
	n, err := Encode(sink, p)
	require.NoError(t, err)
	require.Equal(t, n, len(sink.Bytes()))
	return sink.Bytes()
}

func TestRoundTrip(t *testing.T) {
	for _, p := range allPackets(t) {
		t.Run(p.Type().String(), func(t *testing.T) {
			buf := encodePacket(t, p)

			decoded, consumed, outcome, err := Decode(buf, encoding.DefaultLimits())
			require.NoError(t, err)
			require.Equal(t, OutcomeComplete, outcome)
			assert.Equal(t, len(buf), consumed)
			assert.Equal(t, p, decoded)
		})
	}
}

func TestPrefixStability(t *testing.T) {
	for _, p := range allPackets(t) {
		t.Run(p.Type().String(), func(t *testing.T) {
			buf := encodePacket(t, p)
			for k := 0; k < len(buf); k++ {
				prefix := append([]byte(nil), buf[:k]...)
				_, consumed, outcome, err := Decode(prefix, encoding.DefaultLimits())
				require.NoError(t, err, "k=%d", k)
				assert.Equal(t, OutcomeIncomplete, outcome, "k=%d", k)
				assert.Equal(t, 0, consumed, "k=%d", k)
				assert.Equal(t, buf[:k], prefix, "k=%d: accumulator mutated", k)
			}
		})
	}
}

// TestScenarioS1_NonUTF8Topic: Publish, non-UTF-8 topic, full frame present.
func TestScenarioS1_NonUTF8Topic(t *testing.T) {
	input := []byte{0x30, 0x0A, 0x00, 0x03, 'a', '/', 0xC0, 'h', 'e', 'l', 'l', 'o'}
	_, _, outcome, err := Decode(input, encoding.DefaultLimits())
	assert.Equal(t, OutcomeError, outcome)
	assert.ErrorIs(t, err, encoding.ErrInvalidString)
}

// TestScenarioS2_PasswordLengthOverrunsBody: Connect, inner password
// length beyond body.
func TestScenarioS2_PasswordLengthOverrunsBody(t *testing.T) {
	input := []byte{
		0x10, 0x14,
		0x00, 0x04, 'M', 'Q', 'T', 'T', 0x04, 0x40, 0x00, 0x0A,
		0x00, 0x04, 't', 'e', 's', 't',
		0x00, 0x03, 'm', 'q',
	}
	_, _, outcome, err := Decode(input, encoding.DefaultLimits())
	assert.Equal(t, OutcomeError, outcome)
	assert.ErrorIs(t, err, encoding.ErrInvalidLength)
}

// TestScenarioS3_ShortBuffer: input is the first byte of any encoded
// packet.
func TestScenarioS3_ShortBuffer(t *testing.T) {
	buf := encodePacket(t, NewPuback(42))
	first := append([]byte(nil), buf[:1]...)

	_, consumed, outcome, err := Decode(first, encoding.DefaultLimits())
	require.NoError(t, err)
	assert.Equal(t, OutcomeIncomplete, outcome)
	assert.Equal(t, 0, consumed)
	assert.Equal(t, buf[:1], first)
}

// TestScenarioS4_PubackRoundTrip: Encode Puback(42).
func TestScenarioS4_PubackRoundTrip(t *testing.T) {
	buf := encodePacket(t, NewPuback(42))
	assert.Equal(t, []byte{0x40, 0x02, 0x00, 0x2A}, buf)

	decoded, consumed, outcome, err := Decode(buf, encoding.DefaultLimits())
	require.NoError(t, err)
	assert.Equal(t, OutcomeComplete, outcome)
	assert.Equal(t, len(buf), consumed)
	assert.Equal(t, encoding.Pid(42), decoded.Puback)
}

// TestScenarioS5_PingRoundTrip.
func TestScenarioS5_PingRoundTrip(t *testing.T) {
	tests := []struct {
		p        Packet
		expected []byte
	}{
		{NewPingreq(), []byte{0xC0, 0x00}},
		{NewPingresp(), []byte{0xD0, 0x00}},
		{NewDisconnect(), []byte{0xE0, 0x00}},
	}
	for _, tt := range tests {
		buf := encodePacket(t, tt.p)
		assert.Equal(t, tt.expected, buf)

		decoded, _, outcome, err := Decode(buf, encoding.DefaultLimits())
		require.NoError(t, err)
		assert.Equal(t, OutcomeComplete, outcome)
		assert.Equal(t, tt.p, decoded)
	}
}

// TestScenarioS6_SubscribeTwoTopics.
func TestScenarioS6_SubscribeTwoTopics(t *testing.T) {
	p := NewSubscribe(&encoding.Subscribe{
		Pid: 1,
		Topics: []encoding.SubscribeTopic{
			{TopicPath: "a/b", QoS: encoding.QoS1},
			{TopicPath: "c", QoS: encoding.QoS0},
		},
	})
	buf := encodePacket(t, p)
	expected := []byte{
		0x82, 0x0C,
		0x00, 0x01,
		0x00, 0x03, 'a', '/', 'b', 0x01,
		0x00, 0x01, 'c', 0x00,
	}
	assert.Equal(t, expected, buf)

	decoded, consumed, outcome, err := Decode(buf, encoding.DefaultLimits())
	require.NoError(t, err)
	assert.Equal(t, OutcomeComplete, outcome)
	assert.Equal(t, len(buf), consumed)
	assert.Equal(t, p, decoded)
}

func TestDecode_TrailingBytesAfterPacket(t *testing.T) {
	buf := encodePacket(t, NewPuback(1))
	buf = append(buf, encodePacket(t, NewPuback(2))...)

	first, consumed, outcome, err := Decode(buf, encoding.DefaultLimits())
	require.NoError(t, err)
	assert.Equal(t, OutcomeComplete, outcome)
	assert.Equal(t, encoding.Pid(1), first.Puback)

	second, consumed2, outcome, err := Decode(buf[consumed:], encoding.DefaultLimits())
	require.NoError(t, err)
	assert.Equal(t, OutcomeComplete, outcome)
	assert.Equal(t, encoding.Pid(2), second.Puback)
	assert.Equal(t, len(buf)-consumed, consumed2)
}
