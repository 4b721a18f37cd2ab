package game

import "encoding/json"

// Action is a closed set of inbound message tags. Dispatch matches them
// exhaustively; anything else is answered with unimplemented_action.
type Action string

const (
	ActionStartMatch        Action = "start_match"
	ActionRollDie           Action = "roll_die"
	ActionMovePlayer        Action = "move_player"
	ActionEndTurn           Action = "end_turn"
	ActionAnnounceSuspicion Action = "announce_suspicion"
	ActionRespondSuspicion  Action = "respond_to_suspicion"
	ActionAccuse            Action = "accuse"
	ActionShowHand          Action = "show_hand"
	ActionChatMessage       Action = "chat_message"
)

// Inbound is one frame received from a player connection.
type Inbound struct {
	Action Action          `json:"action"`
	Data   json.RawMessage `json:"data"`
}

type movePayload struct {
	NewPosition int `json:"new_position"`
}

type suspicionPayload struct {
	SuspectCard string `json:"suspect_card"`
	VictimCard  string `json:"victim_card"`
}

type respondPayload struct {
	Card string `json:"card"`
}

type accusePayload struct {
	SuspectCard string `json:"suspect_card"`
	VictimCard  string `json:"victim_card"`
	RoomCard    string `json:"room_card"`
}

type chatPayload struct {
	Message string `json:"message"`
}
