package core

// Call is the universal inbound message: an opaque payload addressed to the
// gateway, tagged with the originating caller and the transferred value.
type Call struct {
	Caller  Address // Original external caller, preserved across forwarding
	Payload []byte  // Raw call data; leading 4 bytes select an operation
	Value   uint64  // Transferred amount in credits
}

// Selector returns the leading 4 bytes of the payload, or false if the
// payload is too short to carry one.
func (c Call) Selector() ([4]byte, bool) {
	var sel [4]byte
	if len(c.Payload) < 4 {
		return sel, false
	}
	copy(sel[:], c.Payload[:4])
	return sel, true
}

// Args returns the payload after the selector.
func (c Call) Args() []byte {
	if len(c.Payload) <= 4 {
		return nil
	}
	return c.Payload[4:]
}
