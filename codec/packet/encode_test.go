package packet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axmq/mqttcodec/encoding"
)

func TestEncode_BoundedSinkSufficientCapacity(t *testing.T) {
	p := NewPuback(7)
	sink := encoding.NewBoundedSink(make([]byte, 4))

	n, err := Encode(sink, p)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, []byte{0x40, 0x02, 0x00, 0x07}, sink.Bytes())
}

func TestEncode_BoundedSinkTooSmall(t *testing.T) {
	p := NewPuback(7)
	sink := encoding.NewBoundedSink(make([]byte, 2))

	_, err := Encode(sink, p)
	require.Error(t, err)
	assert.ErrorIs(t, err, encoding.ErrWriteZero)
}

func TestEncode_EncoderLengthAgreement(t *testing.T) {
	for _, p := range allPackets(t) {
		t.Run(p.Type().String(), func(t *testing.T) {
			sink := encoding.NewGrowingSink()
			n, err := Encode(sink, p)
			require.NoError(t, err)

			h, headerLen, status, err := encoding.ParseFixedHeader(sink.Bytes())
			require.NoError(t, err)
			require.Equal(t, encoding.StatusComplete, status)
			assert.Equal(t, headerLen+int(h.RemainingLength), n)
		})
	}
}
