package internal

import (
	"github.com/pkg/errors"
)

// The registry stands in for the host's registration step. Commands are kept
// in registration order, which is also the order a menu would show them in.
type Registry struct {
	commands []Command
}

// Registry with both snap commands, in menu order.
func NewRegistry() *Registry {
	r := &Registry{}
	r.Register(NewLookAtCursor())
	r.Register(&CursorToCircumcenter{})
	return r
}

// Register adds a command. Registering an ID twice is a bug in the caller and
// panics.
func (r *Registry) Register(cmd Command) {
	if r.Lookup(cmd.ID()) != nil {
		panic("command already registered: " + cmd.ID())
	}
	r.commands = append(r.commands, cmd)
}

func (r *Registry) Unregister(id string) bool {
	for i, cmd := range r.commands {
		if cmd.ID() == id {
			r.commands = append(r.commands[:i], r.commands[i+1:]...)
			return true
		}
	}
	return false
}

func (r *Registry) Lookup(id string) Command {
	for _, cmd := range r.commands {
		if cmd.ID() == id {
			return cmd
		}
	}
	return nil
}

func (r *Registry) Commands() []Command {
	return append([]Command(nil), r.commands...)
}

// IDs of the commands that poll true in ctx, in menu order.
func (r *Registry) Enabled(ctx *Context) []string {
	var ids []string
	for _, cmd := range r.commands {
		if poll(cmd, ctx) {
			ids = append(ids, cmd.ID())
		}
	}
	return ids
}

// Run polls and executes a command the way the host would. Unknown commands
// are an error. A command that doesn't poll, or one that hits an internal
// error, comes back cancelled with the scene left as it was.
func (r *Registry) Run(id string, ctx *Context) (Result, error) {
	cmd := r.Lookup(id)
	if cmd == nil {
		return Result{}, errors.Errorf("unknown command %q", id)
	}
	if !poll(cmd, ctx) {
		var result Result
		return result.cancel("%s is not available for the current selection", cmd.Label()), nil
	}
	return execute(cmd, ctx), nil
}

func poll(cmd Command, ctx *Context) (enabled bool) {
	defer func() {
		if err := HandleSnapPanicRecover(recover()); err != nil {
			enabled = false
		}
	}()
	return cmd.Poll(ctx)
}

func execute(cmd Command, ctx *Context) (result Result) {
	defer func() {
		if err := HandleSnapPanicRecover(recover()); err != nil {
			result = Result{}
			result.cancel("%s failed: %v", cmd.Label(), err)
		}
	}()
	return cmd.Execute(ctx)
}
