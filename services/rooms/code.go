package rooms

/**
 * Room code helpers. Codes are 6 characters from an alphabet without
 * look-alikes (no I, O, 0, 1), compared case-insensitively and stored
 * upper-cased.
 */

import (
	game_constants "VoxRace/constants/game"
	"math/rand/v2"
	"strings"
	"unicode"
)

// NormalizeCode trims and upper-cases a client supplied code
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// IsWellFormed accepts any non-empty run of ASCII letters and digits (up to
// 16). Clients may pick their own code, so the generator alphabet is not enforced.
func IsWellFormed(normalized string) bool {
	if normalized == "" || len(normalized) > 16 {
		return false
	}
	for _, r := range normalized {
		if r > unicode.MaxASCII || !(unicode.IsUpper(r) || unicode.IsDigit(r)) {
			return false
		}
	}
	return true
}

// GenerateCode draws a random code from the confusable-free alphabet
func GenerateCode() string {
	b := make([]byte, game_constants.ROOM_CODE_LENGTH)
	for i := range b {
		b[i] = game_constants.ROOM_CODE_ALPHABET[rand.IntN(len(game_constants.ROOM_CODE_ALPHABET))]
	}
	return string(b)
}
