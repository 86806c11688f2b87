package valueobjects

import "fmt"

type Action string

const (
	ActionRead  Action = "read"
	ActionWrite Action = "write"
	ActionSign  Action = "sign"
	ActionSync  Action = "sync"
)

var validActions = map[Action]bool{
	ActionRead:  true,
	ActionWrite: true,
	ActionSign:  true,
	ActionSync:  true,
}

func NewAction(action string) (Action, error) {
	if action == "" {
		return "", fmt.Errorf("action cannot be empty")
	}

	a := Action(action)
	if !validActions[a] {
		return "", fmt.Errorf("invalid action: %s", action)
	}

	return a, nil
}

func (a Action) String() string {
	return string(a)
}
