package models

// ParsedCommand is the action name and flat parameter map derived from a command payload
type ParsedCommand struct {
	Action     string
	Parameters map[string]string
}
