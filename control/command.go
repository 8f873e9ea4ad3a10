// Package control defines lightweight command messages used by the UI to
// request selection changes from the application command loop. The command
// loop centralizes state changes so the selection state has a single writer.
package control

// CommandType enumerates supported command operations.
type CommandType int

const (
	CmdSelect CommandType = iota
	CmdPrev
	CmdNext
	// CmdDeliver runs Deliver on the command loop. The effect scheduler uses it
	// to hand due effects back to the state owner.
	CmdDeliver
)

// Command is the message sent from UI to AppManager.commandLoop. The
// optional Reply channel can be used by the commandLoop to confirm
// completion back to the sender (useful for keeping UI state in sync).
type Command struct {
	Type    CommandType
	Index   int // target for CmdSelect
	Deliver func()
	Reply   chan error // optional reply channel
}
