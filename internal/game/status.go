package game

// Lifecycle and status envelopes used by the connection router around the
// inbound action flow.

func publicPlayers(m *Match) []map[string]any {
	out := make([]map[string]any, 0, len(m.Players))
	for _, p := range m.Players {
		out = append(out, map[string]any{
			"id":       p.ID,
			"name":     p.Name,
			"order":    p.Order,
			"position": p.Position,
			"in_turn":  m.Started() && p.Order == m.CurrentTurn,
		})
	}
	return out
}

// PlayerState is broadcast after every accepted action of a started match so
// clients stay in sync on positions and whose turn it is.
func (e *Engine) PlayerState(m *Match) Envelope {
	m.Lock()
	defer m.Unlock()
	if !m.Started() {
		return Envelope{}
	}
	return broadcast("player_state", map[string]any{
		"players":      publicPlayers(m),
		"current_turn": m.CurrentTurn,
	})
}

// ShowHand replays the caller's hand, for reconnects to a started match.
func (e *Engine) ShowHand(m *Match, p *Player) Envelope {
	m.Lock()
	defer m.Unlock()
	return e.showHand(m, p)
}

// WitchStatus privately reveals one solution card to the Salem Witch holder
// and announces the holder on the system channel.
func (e *Engine) WitchStatus(m *Match, p *Player) Envelope {
	m.Lock()
	defer m.Unlock()
	if !m.Started() || m.WitchHolderID != p.ID {
		return Envelope{}
	}
	return personal("salem_witch", map[string]any{
		"card": m.WitchCard,
	}).withSystem("salem_witch_holder", map[string]any{
		"player_name": p.Name,
	})
}

// PlayerConnected builds the lobby notice for a fresh connection.
func (e *Engine) PlayerConnected(m *Match, p *Player) Envelope {
	m.Lock()
	defer m.Unlock()
	names := make([]string, 0, len(m.Players))
	for _, pl := range m.Players {
		names = append(names, pl.Name)
	}
	return broadcast("player_joined", map[string]any{
		"player_name": p.Name,
		"players":     names,
	}).withSystem("player_connected", map[string]any{
		"player_name": p.Name,
	})
}

// PlayerDisconnected builds the leave notice. A disconnect is a connectivity
// event only: the player keeps their seat and turn slot.
func (e *Engine) PlayerDisconnected(m *Match, p *Player) Envelope {
	m.Lock()
	defer m.Unlock()
	return broadcast("player_left", map[string]any{
		"player_name": p.Name,
	}).withSystem("player_disconnected", map[string]any{
		"player_name": p.Name,
	})
}
