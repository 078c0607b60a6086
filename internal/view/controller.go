package view

import (
	"harvester-viewer/internal/scenegraph"
)

// Logger is the subset of the app logger the controller needs.
type Logger interface {
	Log(line string)
}

// Controller mediates every UI-triggered mutation of the scene: module
// selection, the wireframe and auto-rotate toggles, and camera resets. All
// module nodes stay resident; selection only flips visibility. Transitions
// run synchronously on the main thread.
type Controller struct {
	log      Logger
	modules  map[ModuleName]*scenegraph.Node
	presets  map[ModuleName]Camera
	order    []ModuleName
	roots    []*scenegraph.Node
	labels   []scenegraph.PrimRef
	drawable []*scenegraph.Primitive
	state    State

	// OnModuleChange, when set, is called after a successful SelectModule so
	// the presentation layer (caption panel, button highlight) can follow
	// without the controller knowing about it.
	OnModuleChange func(ModuleName)
}

// NewController returns a controller in the initial state: DefaultModule
// active, wireframe and auto-rotate off, default camera. log may be nil.
func NewController(log Logger) *Controller {
	return &Controller{
		log:     log,
		modules: make(map[ModuleName]*scenegraph.Node),
		presets: make(map[ModuleName]Camera),
		state: State{
			Active: DefaultModule,
			Camera: DefaultCamera,
		},
	}
}

// Register adds a built module under the given name with its camera preset.
// The node's visibility is set from the current active module, and its label
// and drawable primitives are collected once here; per-frame work iterates
// those lists instead of rescanning the graph.
func (c *Controller) Register(name ModuleName, node *scenegraph.Node, preset Camera) {
	c.modules[name] = node
	c.presets[name] = preset
	c.order = append(c.order, name)
	c.roots = append(c.roots, node)
	node.Visible = name == c.state.Active
	if node.Visible {
		c.state.Camera = preset
	}
	c.labels = append(c.labels, node.CollectRefs(func(p *scenegraph.Primitive) bool { return p.Mat.Label })...)
	c.drawable = append(c.drawable, node.Collect(func(p *scenegraph.Primitive) bool { return !p.Mat.Label })...)
}

// SelectModule activates the named module: all other modules become
// invisible, the current wireframe setting is re-applied to the target's
// drawables, and the camera moves to the module's preset. An unknown name is
// a logged no-op, not an error; the state is untouched.
func (c *Controller) SelectModule(name string) {
	target := ModuleName(name)
	node, ok := c.modules[target]
	if !ok {
		c.logf("select: unknown module " + name)
		return
	}
	for _, mn := range c.order {
		c.modules[mn].Visible = mn == target
	}
	node.EachPrimitive(func(p *scenegraph.Primitive) {
		if !p.Mat.Label {
			p.Mat.Wireframe = c.state.Wireframe
		}
	})
	c.state.Active = target
	c.state.Camera = c.presets[target]
	c.logf("select: " + name)
	if c.OnModuleChange != nil {
		c.OnModuleChange(target)
	}
}

// ToggleWireframe flips wireframe mode and applies it to every drawable
// primitive in every module. Labels are exempt.
func (c *Controller) ToggleWireframe() {
	c.state.Wireframe = !c.state.Wireframe
	for _, p := range c.drawable {
		p.Mat.Wireframe = c.state.Wireframe
	}
}

// ToggleAutoRotate flips the camera auto-orbit flag.
func (c *Controller) ToggleAutoRotate() {
	c.state.AutoRotate = !c.state.AutoRotate
}

// ResetView restores the single default camera pose, whatever the active
// module.
func (c *Controller) ResetView() {
	c.state.Camera = DefaultCamera
}

// State returns a snapshot of the current view state.
func (c *Controller) State() State {
	return c.state
}

// Active returns the active module name.
func (c *Controller) Active() ModuleName {
	return c.state.Active
}

// Roots returns the registered module nodes in registration order.
func (c *Controller) Roots() []*scenegraph.Node {
	return c.roots
}

// Labels returns the maintained list of label primitives across all
// modules, paired with their owning nodes.
func (c *Controller) Labels() []scenegraph.PrimRef {
	return c.labels
}

// Module returns the node registered under name, nil if unknown.
func (c *Controller) Module(name ModuleName) *scenegraph.Node {
	return c.modules[name]
}

func (c *Controller) logf(line string) {
	if c.log != nil {
		c.log.Log(line)
	}
}
