package game

// Message is one (action, payload) pair. An empty action means the slot
// carries nothing and the router must skip it.
type Message struct {
	Action string         `json:"action"`
	Data   map[string]any `json:"data"`
}

func (m Message) Empty() bool { return m.Action == "" }

// Targeted is a message addressed to one specific player.
type Targeted struct {
	Message
	PlayerID string `json:"-"`
}

// Envelope is the uniform result of every engine operation: four independent
// delivery slots, each unused by default.
type Envelope struct {
	// Personal goes to the acting player's connection only.
	Personal Message
	// Broadcast goes to every connection of the match.
	Broadcast Message
	// Targeted goes to one named player, dropped if not connected.
	Targeted Targeted
	// System goes to every connection of the match on the lifecycle channel,
	// kept apart from gameplay broadcasts.
	System Message
}

func personal(action string, data map[string]any) Envelope {
	return Envelope{Personal: Message{Action: action, Data: data}}
}

func broadcast(action string, data map[string]any) Envelope {
	return Envelope{Broadcast: Message{Action: action, Data: data}}
}

func (e Envelope) withPersonal(action string, data map[string]any) Envelope {
	e.Personal = Message{Action: action, Data: data}
	return e
}

func (e Envelope) withBroadcast(action string, data map[string]any) Envelope {
	e.Broadcast = Message{Action: action, Data: data}
	return e
}

func (e Envelope) withTarget(playerID, action string, data map[string]any) Envelope {
	e.Targeted = Targeted{Message: Message{Action: action, Data: data}, PlayerID: playerID}
	return e
}

func (e Envelope) withSystem(action string, data map[string]any) Envelope {
	e.System = Message{Action: action, Data: data}
	return e
}

// fail wraps a rejection into a personal-only envelope. Broadcast, targeted
// and system slots stay empty so other players never learn of the attempt.
func fail(err *Error) Envelope {
	return personal("error", map[string]any{"code": err.Code, "message": err.Message})
}
