package view

import (
	"image/color"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"harvester-viewer/internal/scenegraph"
)

type recordLog struct {
	lines []string
}

func (r *recordLog) Log(line string) { r.lines = append(r.lines, line) }

// testModule builds a minimal module: one solid box and one label.
func testModule(name ModuleName) *scenegraph.Node {
	n := scenegraph.NewNode(string(name))
	scenegraph.AddBox(n, "body", math32.Vec3(1, 1, 1), math32.Vector3{}, scenegraph.NewMaterial(color.RGBA{128, 128, 128, 255}))
	scenegraph.AddLabel(n, "caption", string(name), 2, math32.Vec3(0, 2, 0), scenegraph.NewMaterial(color.RGBA{255, 255, 255, 255}))
	return n
}

func testController(log Logger) *Controller {
	c := NewController(log)
	for i, name := range ModuleOrder {
		preset := Camera{Position: math32.Vec3(float32(i)+10, 5, 5), Target: math32.Vector3{}, Fovy: 45}
		c.Register(name, testModule(name), preset)
	}
	return c
}

func TestInitialState(t *testing.T) {
	c := testController(nil)
	st := c.State()
	assert.Equal(t, DefaultModule, st.Active)
	assert.False(t, st.Wireframe)
	assert.False(t, st.AutoRotate)

	// Only the default module is visible after registration.
	for _, name := range ModuleOrder {
		assert.Equal(t, name == DefaultModule, c.Module(name).Visible, name)
	}
}

func TestSelectModuleExclusiveVisibility(t *testing.T) {
	c := testController(nil)
	for _, name := range ModuleOrder {
		c.SelectModule(string(name))
		for _, other := range ModuleOrder {
			assert.Equal(t, other == name, c.Module(other).Visible, "%s visible after selecting %s", other, name)
		}
		assert.Equal(t, name, c.Active())
	}
}

func TestSelectModuleMovesCameraToPreset(t *testing.T) {
	c := testController(nil)
	c.SelectModule(string(ModuleSorbant))
	assert.Equal(t, float32(11), c.State().Camera.Position.X)
	c.SelectModule(string(ModuleAssembly))
	assert.Equal(t, float32(14), c.State().Camera.Position.X)
}

func TestSelectUnknownModuleIsNoOp(t *testing.T) {
	log := &recordLog{}
	c := testController(log)
	before := c.State()

	c.SelectModule("turbine")

	assert.Equal(t, before, c.State(), "state must be untouched")
	for _, name := range ModuleOrder {
		assert.Equal(t, name == before.Active, c.Module(name).Visible, name)
	}
	require.NotEmpty(t, log.lines)
	assert.Contains(t, log.lines[len(log.lines)-1], "unknown module")
}

func TestToggleWireframeIsInvolution(t *testing.T) {
	c := testController(nil)

	c.ToggleWireframe()
	assert.True(t, c.State().Wireframe)
	c.ToggleWireframe()
	assert.False(t, c.State().Wireframe)

	// Two toggles restore every primitive's material.
	for _, root := range c.Roots() {
		root.EachPrimitive(func(p *scenegraph.Primitive) {
			assert.False(t, p.Mat.Wireframe, p.Name)
		})
	}
}

func TestWireframeExemptsLabels(t *testing.T) {
	c := testController(nil)
	c.ToggleWireframe()
	for _, root := range c.Roots() {
		root.EachPrimitive(func(p *scenegraph.Primitive) {
			if p.Mat.Label {
				assert.False(t, p.Mat.Wireframe, "label %s must stay solid", p.Name)
			} else {
				assert.True(t, p.Mat.Wireframe, p.Name)
			}
		})
	}
}

func TestSelectReappliesWireframeToTarget(t *testing.T) {
	c := testController(nil)
	c.ToggleWireframe()
	c.SelectModule(string(ModuleElectronics))
	c.Module(ModuleElectronics).EachPrimitive(func(p *scenegraph.Primitive) {
		if !p.Mat.Label {
			assert.True(t, p.Mat.Wireframe, p.Name)
		}
	})
}

func TestToggleAutoRotate(t *testing.T) {
	c := testController(nil)
	c.ToggleAutoRotate()
	assert.True(t, c.State().AutoRotate)
	c.ToggleAutoRotate()
	assert.False(t, c.State().AutoRotate)
}

func TestResetViewRestoresDefaultCamera(t *testing.T) {
	c := testController(nil)
	c.SelectModule(string(ModuleFiltration))
	require.NotEqual(t, DefaultCamera, c.State().Camera)

	c.ResetView()
	assert.Equal(t, DefaultCamera, c.State().Camera)
	// The active module does not change on a camera reset.
	assert.Equal(t, ModuleFiltration, c.Active())
}

func TestOnModuleChangeObserver(t *testing.T) {
	c := testController(nil)
	var got []ModuleName
	c.OnModuleChange = func(m ModuleName) { got = append(got, m) }

	c.SelectModule(string(ModuleSorbant))
	c.SelectModule("bogus")
	c.SelectModule(string(ModuleAssembly))

	assert.Equal(t, []ModuleName{ModuleSorbant, ModuleAssembly}, got, "observer fires only on successful selections")
}

func TestLabelsCollectedPerModule(t *testing.T) {
	c := testController(nil)
	labels := c.Labels()
	require.Len(t, labels, len(ModuleOrder))
	for _, ref := range labels {
		assert.True(t, ref.Prim.Mat.Label)
		assert.NotNil(t, ref.Node)
	}
}

func TestLightPulseRange(t *testing.T) {
	for _, elapsed := range []float32{0, 0.5, 1, 2.7, 10, 33.3} {
		v := LightPulse(elapsed)
		assert.GreaterOrEqual(t, v, float32(0.1))
		assert.LessOrEqual(t, v, float32(1))
	}
}
