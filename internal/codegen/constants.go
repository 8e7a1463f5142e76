// Package codegen emits standalone Go matchers from automaton transition
// tables.
package codegen

// Variable names used in generated code
const (
	InputName        = "input"
	StateName        = "state"
	SymbolName       = "symbol"
	CurrentStateName = "currentState"
)

// Function name suffixes appended to the configured name prefix
const (
	NextStateSuffix     = "NextState"
	ProcessStringSuffix = "ProcessString"
)

// LowerFirst converts the first character of a string to lowercase.
func LowerFirst(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]|0x20) + s[1:]
}

// UpperFirst converts the first character of a string to uppercase.
func UpperFirst(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]&^0x20) + s[1:]
}
