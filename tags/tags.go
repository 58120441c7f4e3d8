package tags

import "github.com/yohamta/donburi"

var (
	Level    = donburi.NewTag().SetName("Level")
	Banner   = donburi.NewTag().SetName("Banner")
	Editor   = donburi.NewTag().SetName("Editor")
	Settings = donburi.NewTag().SetName("Settings")
)
