// Package engine defines the boundary to the external matching engine.
//
// The gateway never sees the engine's internals: it submits commands
// through API and receives outcomes asynchronously, either per command via
// the returned future channel or globally via the registered result
// handler. The simulated engine in this package stands in for the real
// core in single-process deployments and tests.
package engine

// ResultCode is the engine's outcome classification for a command.
type ResultCode int

const (
	Success ResultCode = iota
	AlreadyExists
	Other
)

func (c ResultCode) String() string {
	switch c {
	case Success:
		return "SUCCESS"
	case AlreadyExists:
		return "ALREADY_EXISTS"
	default:
		return "OTHER"
	}
}

// Command is a marker for engine commands the gateway can submit.
type Command interface {
	isCommand()
}

// AddUser provisions a trading account with the given numeric user ID.
// This is the only administrative command the gateway currently submits.
type AddUser struct {
	UID uint64
}

func (AddUser) isCommand() {}

// PlaceOrder is a trading command. The gateway never submits it, but the
// engine's result stream carries outcomes for it and the publisher must
// ignore them.
type PlaceOrder struct {
	UID     uint64
	OrderID uint64
}

func (PlaceOrder) isCommand() {}

// Result is a command outcome delivered by the engine.
type Result struct {
	Command Command
	Code    ResultCode
	Message string
}

// ResultHandler receives every command outcome the engine produces. It
// runs on the engine's delivery goroutine and must not block.
type ResultHandler func(Result)

// API is the opaque command-submission interface of the engine.
type API interface {
	// SubmitAsync hands a command to the engine and returns a future that
	// yields the command's Result exactly once. The call itself never
	// waits for execution.
	SubmitAsync(cmd Command) (<-chan Result, error)

	// Stop shuts the engine down. Pending commands are still resolved.
	Stop()
}
