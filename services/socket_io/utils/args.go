package socketio_utils

import (
	"math"
	"strconv"
	"strings"
)

// Ack is the acknowledgement callback socket.io appends to the event
// arguments when the client asked for one
type Ack = func([]any, error)

// SplitAck removes a trailing acknowledgement callback from args
func SplitAck(args []any) ([]any, Ack) {
	if n := len(args); n > 0 {
		if ack, ok := args[n-1].(func([]any, error)); ok {
			return args[:n-1], ack
		}
	}
	return args, nil
}

// StringArg returns args[i] as a string, or "" when it is missing
func StringArg(args []any, i int) string {
	if i < 0 || i >= len(args) {
		return ""
	}
	return toString(args[i])
}

// MapArg returns args[i] when it is a JSON object
func MapArg(args []any, i int) map[string]any {
	if i < 0 || i >= len(args) {
		return nil
	}
	m, _ := args[i].(map[string]any)
	return m
}

func StringField(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	return toString(m[key])
}

// IntField reads a number sent either as a JSON number or as a numeric
// string, as html form values often are. Anything else reads as 0.
func IntField(m map[string]any, key string) int {
	if m == nil {
		return 0
	}
	switch v := m[key].(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0
		}
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// RoomCodeArg accepts `code` or `{roomCode}` as the first argument
func RoomCodeArg(args []any) string {
	if m := MapArg(args, 0); m != nil {
		if code := StringField(m, "roomCode"); code != "" {
			return code
		}
		return StringField(m, "code")
	}
	return StringArg(args, 0)
}

// AnswerArgs accepts `{roomCode, answer}` or `code, answer`
func AnswerArgs(args []any) (code, answer string) {
	if m := MapArg(args, 0); m != nil {
		return RoomCodeArg(args), StringField(m, "answer")
	}
	return StringArg(args, 0), StringArg(args, 1)
}

func toString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return ""
	}
}
