package menu

// Action is what the control panel asks the app to do after a frame
type Action int

const (
	ActionNone Action = iota
	ActionResetView
)
