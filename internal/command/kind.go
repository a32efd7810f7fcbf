package command

// Kind identifies the intent of a parsed command.
type Kind uint8

const (
	// KindNone is the sentinel for text that matched no pattern.
	KindNone Kind = iota
	// KindDeleteWords deletes a count of preceding words.
	KindDeleteWords
	// KindRepeat repeats a prior command a number of times.
	KindRepeat
	// KindWait pauses for a duration.
	KindWait
	// KindTypeText types a quoted literal string.
	KindTypeText
	// KindPressKey presses a single key or chord.
	KindPressKey
	// KindClick clicks a pointer button.
	KindClick
	// KindOpen opens a URL, file, or application.
	KindOpen
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindDeleteWords:
		return "delete_words"
	case KindRepeat:
		return "repeat"
	case KindWait:
		return "wait"
	case KindTypeText:
		return "type_text"
	case KindPressKey:
		return "press_key"
	case KindClick:
		return "click"
	case KindOpen:
		return "open"
	default:
		return "none"
	}
}

// Variables carries the values extracted for a parsed command.
type Variables map[string]any

// Int returns the named variable as an int, or 0 if absent.
func (v Variables) Int(name string) int {
	if n, ok := v[name].(int); ok {
		return n
	}
	return 0
}

// String returns the named variable as a string, or "" if absent.
func (v Variables) String(name string) string {
	if s, ok := v[name].(string); ok {
		return s
	}
	return ""
}
