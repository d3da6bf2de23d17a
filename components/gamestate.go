package components

import "github.com/yohamta/donburi"

// GameStateData carries the level-run outcome the scene layer reacts
// to.
type GameStateData struct {
	LevelComplete bool
	PlayerDead    bool
}

var GameState = donburi.NewComponentType[GameStateData]()
