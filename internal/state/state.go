// internal/state/state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"

	"draconis/internal/config"
)

// State is one screen of the application.
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// Titled is a state naming itself in the window title.
type Titled interface {
	Title() string
}

// StateMachine switches between screens. OnTitle, when set, receives the
// window title of every state entered.
type StateMachine struct {
	current State
	OnTitle func(title string)
}

// NewStateMachine creates a state machine without a state.
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState leaves the current state and enters newState.
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
	sm.RefreshTitle()
}

// RefreshTitle reports the current title to OnTitle.
func (sm *StateMachine) RefreshTitle() {
	if sm.OnTitle != nil {
		sm.OnTitle(sm.Title())
	}
}

// Title is the window title for the active state.
func (sm *StateMachine) Title() string {
	if t, ok := sm.current.(Titled); ok && t.Title() != "" {
		return config.WindowTitle + " - " + t.Title()
	}
	return config.WindowTitle
}

// Current returns the active state.
func (sm *StateMachine) Current() State { return sm.current }

func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
