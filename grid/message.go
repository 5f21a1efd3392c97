package grid

// MessageKind says whether a pad went down or up
type MessageKind uint8

const (
	KindPress MessageKind = iota
	KindRelease
)

// Message is a single input event from the controller
type Message struct {
	Kind MessageKind
	Pad  Pad
}

func Press(p Pad) Message {
	return Message{Kind: KindPress, Pad: p}
}

func Release(p Pad) Message {
	return Message{Kind: KindRelease, Pad: p}
}

// IsPress reports whether this is a press of any pad
func (m Message) IsPress() bool {
	return m.Kind == KindPress
}

func (m Message) String() string {
	if m.Kind == KindPress {
		return "press " + m.Pad.String()
	}
	return "release " + m.Pad.String()
}
