package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Policy groups the house-rule toggles that the game sources leave open.
type Policy struct {
	// EndOnWin finishes the match after a correct accusation; every later
	// game action is rejected.
	EndOnWin bool
	// StrictEndTurn restricts end_turn to the player currently in turn.
	StrictEndTurn bool
	// FailedAccuserSpectates also revokes roll/move/suspicion rights after a
	// failed accusation (a failed accuser always loses the right to accuse).
	FailedAccuserSpectates bool
}

type Config struct {
	HTTPAddr string
	Policy   Policy
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func Load() Config {
	_ = godotenv.Load()
	return Config{
		HTTPAddr: getenv("HTTP_ADDR", ":8000"),
		Policy: Policy{
			EndOnWin:               getenvBool("END_ON_WIN", true),
			StrictEndTurn:          getenvBool("STRICT_END_TURN", false),
			FailedAccuserSpectates: getenvBool("FAILED_ACCUSER_SPECTATES", false),
		},
	}
}
