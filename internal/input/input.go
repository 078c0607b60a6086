// Package input maps key presses to named viewer actions. Bindings are
// registered once at startup and polled each frame.
package input

import (
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Binding is one key mapped to a named action.
type Binding struct {
	Key  int32
	Name string
	Help string // short hint, e.g. "W wireframe"
	Run  func()
}

// Bindings holds the registered key bindings in registration order.
type Bindings struct {
	list []Binding
}

// New returns an empty binding set.
func New() *Bindings {
	return &Bindings{}
}

// Bind registers an action for a key. Later bindings on the same key run
// after earlier ones; in practice keys are bound once.
func (b *Bindings) Bind(key int32, name, help string, run func()) {
	b.list = append(b.list, Binding{Key: key, Name: name, Help: help, Run: run})
}

// Poll runs every action whose key was pressed this frame. Call once per
// frame from the update step.
func (b *Bindings) Poll() {
	for _, bind := range b.list {
		if rl.IsKeyPressed(bind.Key) {
			bind.Run()
		}
	}
}

// HelpLine joins the binding hints into one line for the overlay.
func (b *Bindings) HelpLine() string {
	parts := make([]string, 0, len(b.list))
	for _, bind := range b.list {
		if bind.Help != "" {
			parts = append(parts, bind.Help)
		}
	}
	return strings.Join(parts, "   ")
}
