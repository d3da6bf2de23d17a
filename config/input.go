package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID identifies a logical input action
type ActionID int

const (
	ActionMoveLeft ActionID = iota
	ActionMoveRight
	ActionJump
	ActionClimbUp
	ActionClimbDown
	ActionMenuUp
	ActionMenuDown
	ActionMenuSelect
	ActionMenuBack
	ActionCount
)

// InputBinding maps an action to its keyboard keys
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all action bindings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

var Input = &InputConfig{
	Bindings: map[ActionID]InputBinding{
		ActionMoveLeft:   {Keys: []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}},
		ActionMoveRight:  {Keys: []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}},
		ActionJump:       {Keys: []ebiten.Key{ebiten.KeySpace}},
		ActionClimbUp:    {Keys: []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}},
		ActionClimbDown:  {Keys: []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}},
		ActionMenuUp:     {Keys: []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}},
		ActionMenuDown:   {Keys: []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}},
		ActionMenuSelect: {Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter}},
		ActionMenuBack:   {Keys: []ebiten.Key{ebiten.KeyEscape}},
	},
}
