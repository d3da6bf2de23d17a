package components

import "github.com/yohamta/donburi"

type MenuData struct {
	SelectedIndex int
}

var Menu = donburi.NewComponentType[MenuData]()
