package cards

import "math/rand"

type Kind string

const (
	KindMonster Kind = "monster"
	KindVictim  Kind = "victim"
	KindRoom    Kind = "room"
)

// Card is an immutable value identified by catalog and name.
type Card struct {
	Kind Kind   `json:"kind"`
	Name string `json:"name"`
}

var (
	Monsters = []string{"Dracula", "Frankenstein", "Werewolf", "Ghost", "Mummy", "Dr. Jekyll"}
	Victims  = []string{"Count", "Countess", "Butler", "Housekeeper", "Maid", "Gardener"}
	Rooms    = []string{"Garage", "Laboratory", "Vestibule", "Pantheon", "Cellar", "Parlor", "Library", "Bedroom"}
)

var catalog = buildCatalog()

func buildCatalog() []Card {
	out := make([]Card, 0, len(Monsters)+len(Victims)+len(Rooms))
	for _, n := range Monsters {
		out = append(out, Card{Kind: KindMonster, Name: n})
	}
	for _, n := range Victims {
		out = append(out, Card{Kind: KindVictim, Name: n})
	}
	for _, n := range Rooms {
		out = append(out, Card{Kind: KindRoom, Name: n})
	}
	return out
}

// Catalog returns the full deck in its fixed order: monsters, victims, rooms.
func Catalog() []Card {
	out := make([]Card, len(catalog))
	copy(out, catalog)
	return out
}

func DeckSize() int { return len(catalog) }

// ByName looks a card up in the catalog.
func ByName(name string) (Card, bool) {
	for _, c := range catalog {
		if c.Name == name {
			return c, true
		}
	}
	return Card{}, false
}

// Solution is the hidden triple withheld from every hand.
type Solution struct {
	Monster Card `json:"monster"`
	Victim  Card `json:"victim"`
	Room    Card `json:"room"`
}

func (s Solution) Matches(monster, victim, room string) bool {
	return s.Monster.Name == monster && s.Victim.Name == victim && s.Room.Name == room
}

func (s Solution) Cards() []Card {
	return []Card{s.Monster, s.Victim, s.Room}
}

// Deal removes one random card of each kind to form the Solution and deals
// the rest round-robin to the given players in order. Every remaining card
// lands in exactly one hand.
func Deal(rng *rand.Rand, playerIDs []string) (map[string][]Card, Solution) {
	sol := Solution{
		Monster: Card{Kind: KindMonster, Name: Monsters[rng.Intn(len(Monsters))]},
		Victim:  Card{Kind: KindVictim, Name: Victims[rng.Intn(len(Victims))]},
		Room:    Card{Kind: KindRoom, Name: Rooms[rng.Intn(len(Rooms))]},
	}

	deck := make([]Card, 0, len(catalog)-3)
	for _, c := range catalog {
		if c == sol.Monster || c == sol.Victim || c == sol.Room {
			continue
		}
		deck = append(deck, c)
	}
	rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })

	hands := make(map[string][]Card, len(playerIDs))
	for i, c := range deck {
		id := playerIDs[i%len(playerIDs)]
		hands[id] = append(hands[id], c)
	}
	return hands, sol
}

// Matching returns every card in hand naming the suspected monster, victim or
// room, in catalog order.
func Matching(hand []Card, monster, victim, room string) []Card {
	var out []Card
	for _, c := range catalog {
		if c.Name != monster && c.Name != victim && c.Name != room {
			continue
		}
		for _, h := range hand {
			if h == c {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

// Disprove picks the card a hand shows against a suspicion. The first match
// in catalog order wins, so replays are reproducible.
func Disprove(hand []Card, monster, victim, room string) (Card, bool) {
	m := Matching(hand, monster, victim, room)
	if len(m) == 0 {
		return Card{}, false
	}
	return m[0], true
}
