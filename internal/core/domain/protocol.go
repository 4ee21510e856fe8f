package domain

import "encoding/json"

// Message types recognized by the relay. Anything outside this list is
// classified CategoryUnknown and relayed all the same.
const (
	TypeChat   = "chat"
	TypeImage  = "image"
	TypeFile   = "file"
	TypeOffer  = "offer"
	TypeAnswer = "answer"
	TypeICE    = "ice"
)

// Category buckets a message type for logging verbosity. It never affects
// delivery: every category is broadcast identically.
type Category string

const (
	CategoryContent Category = "content"
	CategorySignal  Category = "signal"
	CategoryUnknown Category = "unknown"
)

// Envelope is the decoded view of an inbound frame. Only the two fields the
// server inspects are declared here; everything else stays in the raw bytes
// and is forwarded untouched.
type Envelope struct {
	Type   string `json:"type"`
	Sender string `json:"sender"`
}

// DecodeEnvelope parses just enough of a frame to classify it. Malformed
// payloads are tolerated: the zero envelope classifies as unknown while the
// raw bytes remain relayable.
func DecodeEnvelope(raw []byte) Envelope {
	var env Envelope
	_ = json.Unmarshal(raw, &env)
	return env
}

// Category classifies the envelope's message type.
func (e Envelope) Category() Category {
	return Classify(e.Type)
}

// DisplaySender returns the sender name for log lines, or "unknown" when the
// frame carried none.
func (e Envelope) DisplaySender() string {
	if e.Sender == "" {
		return "unknown"
	}
	return e.Sender
}

// Classify maps a wire message type onto its logging category.
func Classify(msgType string) Category {
	switch msgType {
	case TypeChat, TypeImage, TypeFile:
		return CategoryContent
	case TypeOffer, TypeAnswer, TypeICE:
		return CategorySignal
	default:
		return CategoryUnknown
	}
}
