package encoding

// Pid is an MQTT packet identifier: an integer in [1, 65535]. Zero is
// forbidden on the wire; constructing or decoding a Pid of 0 fails.
type Pid uint16

// NewPid validates value as a wire packet identifier. A value of 0 is
// always rejected, per MQTT-2.3.1-1.
func NewPid(value uint16, t PacketType) (Pid, error) {
	if value == 0 {
		return 0, errInvalidPid(t)
	}
	return Pid(value), nil
}
