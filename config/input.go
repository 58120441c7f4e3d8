package config

// ActionID represents a logical game action. Key bindings live in the
// systems package so this package stays free of ebiten.
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionRestart
	ActionToggleDebug
	ActionToggleMute
	ActionEditorSave
	ActionEditorClear
	ActionCount // Must be last - used for array sizing
)
