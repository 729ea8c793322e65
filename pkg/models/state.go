package models

import "strings"

// StateManagement defines the state-management approach of the generated app.
type StateManagement string

const (
	StateProvider StateManagement = "provider"
	StateRiverpod StateManagement = "riverpod"
	StateBloc     StateManagement = "bloc"
	StateGetX     StateManagement = "getx"
	StateMobX     StateManagement = "mobx"
	StateRedux    StateManagement = "redux"
)

var stateManagementNames = map[StateManagement]string{
	StateProvider: "Provider",
	StateRiverpod: "Riverpod",
	StateBloc:     "Bloc",
	StateGetX:     "GetX",
	StateMobX:     "MobX",
	StateRedux:    "Redux",
}

// ValidStateManagements returns all valid state-management values in display order.
func ValidStateManagements() []StateManagement {
	return []StateManagement{StateProvider, StateRiverpod, StateBloc, StateGetX, StateMobX, StateRedux}
}

// IsValid checks if the state management is a valid value.
func (s StateManagement) IsValid() bool {
	_, ok := stateManagementNames[s]
	return ok
}

// DisplayName returns the human-readable name, or the raw value when unknown.
func (s StateManagement) DisplayName() string {
	if name, ok := stateManagementNames[s]; ok {
		return name
	}
	return string(s)
}

// ParseStateManagement resolves user input such as "GetX" or "flutter bloc"
// to a StateManagement value.
func ParseStateManagement(s string) (StateManagement, bool) {
	sm := StateManagement(strings.TrimPrefix(squash(s), "flutter"))
	return sm, sm.IsValid()
}
