// Package instrumented wraps the pure codec/packet dispatcher with
// decode/encode counters and optional structured logging, the way a
// caller embedding the codec in a long-running process would want to
// observe it without the codec's core needing to know about logging at
// all.
package instrumented

import (
	"sync/atomic"

	"github.com/axmq/mqttcodec/codec/packet"
	"github.com/axmq/mqttcodec/encoding"
	"github.com/axmq/mqttcodec/pkg/logger"
)

// Stats is a point-in-time snapshot of a Dispatcher's counters.
type Stats struct {
	DecodesComplete   uint64
	DecodesIncomplete uint64
	DecodesError      uint64
	Encodes           uint64
	EncodeErrors      uint64
	ErrorsByKind      map[encoding.Kind]uint64
}

// Dispatcher wraps packet.Decode/packet.Encode with atomic counters and
// an optional logger. The zero value is usable; Log defaults to a
// no-op if nil.
type Dispatcher struct {
	Log logger.Logger

	decodesComplete   uint64
	decodesIncomplete uint64
	decodesError      uint64
	encodes           uint64
	encodeErrors      uint64

	kindCounters [encodingKindCount]uint64
}

// encodingKindCount bounds the fixed array backing the per-Kind error
// counters; it must stay in sync with the number of Kind constants in
// the encoding package.
const encodingKindCount = 10

// Decode wraps packet.Decode, incrementing the counter matching the
// outcome and logging at error level on OutcomeError.
func (d *Dispatcher) Decode(accumulator []byte, limits encoding.Limits) (packet.Packet, int, packet.Outcome, error) {
	pkt, consumed, outcome, err := packet.Decode(accumulator, limits)

	switch outcome {
	case packet.OutcomeComplete:
		atomic.AddUint64(&d.decodesComplete, 1)
	case packet.OutcomeIncomplete:
		atomic.AddUint64(&d.decodesIncomplete, 1)
	case packet.OutcomeError:
		atomic.AddUint64(&d.decodesError, 1)
		if ce, ok := err.(*encoding.CodecError); ok && int(ce.Kind) < len(d.kindCounters) {
			atomic.AddUint64(&d.kindCounters[ce.Kind], 1)
		}
		if d.Log != nil {
			d.Log.Error("decode failed", "error", err)
		}
	}

	return pkt, consumed, outcome, err
}

// Encode wraps packet.Encode, incrementing the counter matching the
// outcome and logging at warn level on failure.
func (d *Dispatcher) Encode(sink encoding.Sink, p packet.Packet) (int, error) {
	n, err := packet.Encode(sink, p)
	if err != nil {
		atomic.AddUint64(&d.encodeErrors, 1)
		if d.Log != nil {
			d.Log.Warn("encode failed", "error", err, "type", p.Type().String())
		}
		return n, err
	}
	atomic.AddUint64(&d.encodes, 1)
	return n, nil
}

// Stats returns a snapshot of the dispatcher's counters.
func (d *Dispatcher) Stats() Stats {
	s := Stats{
		DecodesComplete:   atomic.LoadUint64(&d.decodesComplete),
		DecodesIncomplete: atomic.LoadUint64(&d.decodesIncomplete),
		DecodesError:      atomic.LoadUint64(&d.decodesError),
		Encodes:           atomic.LoadUint64(&d.encodes),
		EncodeErrors:      atomic.LoadUint64(&d.encodeErrors),
		ErrorsByKind:      make(map[encoding.Kind]uint64),
	}
	for i := range d.kindCounters {
		if n := atomic.LoadUint64(&d.kindCounters[i]); n > 0 {
			s.ErrorsByKind[encoding.Kind(i)] = n
		}
	}
	return s
}
