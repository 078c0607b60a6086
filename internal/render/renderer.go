// Package render draws the scene graph with raylib: cached unit meshes for
// boxes and cylinders, uploaded custom meshes for tubes and tapered solids,
// billboard text labels, and the camera damping/auto-orbit logic.
package render

import (
	"unsafe"

	"cogentcore.org/core/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"harvester-viewer/internal/device"
	"harvester-viewer/internal/droplets"
	"harvester-viewer/internal/scenegraph"
	"harvester-viewer/internal/view"
)

const (
	cylinderSlices = 24
	// cameraDamp controls how fast the camera eases toward the preset pose.
	cameraDamp = float32(6)
	// orbitSpeed is the auto-rotate angular speed in radians per second.
	orbitSpeed = float32(0.45)
	// labelFontSize is the pixel size labels are rasterized at.
	labelFontSize = 64
	dropRadius    = float32(0.26)
)

// uploaded keeps a GPU mesh together with the CPU slices backing it, so the
// vertex data is not collected while raylib still references it.
type uploaded struct {
	mesh  rl.Mesh
	verts []float32
	norms []float32
	index []uint16
}

// Renderer owns all GPU resources. Resources are created lazily on the first
// frame so allocation happens after the window/GL context exists.
type Renderer struct {
	cam    rl.Camera3D
	shader rl.Shader
	mtl    rl.Material

	cube     rl.Mesh
	cylinder rl.Mesh

	meshes map[*scenegraph.Mesh]*uploaded
	labels map[*scenegraph.Primitive]rl.Texture2D

	ready      bool
	elapsed    float32
	orbitAngle float32
}

// New returns a renderer; GPU resources load on the first Frame call.
func New() *Renderer {
	return &Renderer{
		meshes: make(map[*scenegraph.Mesh]*uploaded),
		labels: make(map[*scenegraph.Primitive]rl.Texture2D),
	}
}

func (r *Renderer) ensureResources() {
	if r.ready {
		return
	}
	r.cube = rl.GenMeshCube(1, 1, 1)
	r.cylinder = rl.GenMeshCylinder(0.5, 1, cylinderSlices)
	r.mtl = rl.LoadMaterialDefault()
	if shader := loadLitShader(); rl.IsShaderValid(shader) {
		r.shader = shader
		r.mtl.Shader = shader
	}
	r.cam.Up = rl.NewVector3(0, 1, 0)
	r.cam.Projection = rl.CameraPerspective
	r.ready = true
}

// Frame advances time-driven state (camera easing, auto-orbit, status-light
// pulse) and draws one frame of the 3D scene. Call between BeginDrawing and
// EndDrawing; the 2D overlay draws after it.
func (r *Renderer) Frame(dt float32, ctrl *view.Controller, drops *droplets.Field) {
	r.ensureResources()
	r.elapsed += dt

	st := ctrl.State()
	r.updateCamera(dt, st)
	setLitUniforms(r.shader, r.cam.Position)

	pulse := view.LightPulse(r.elapsed)

	rl.BeginMode3D(r.cam)
	for _, root := range ctrl.Roots() {
		if !root.Visible {
			continue
		}
		r.drawNode(root, rl.MatrixIdentity(), pulse)
	}
	r.drawDrops(ctrl, drops)
	r.drawLabels(ctrl)
	rl.EndMode3D()
}

// updateCamera eases the camera toward the controller's pose and applies the
// auto-orbit rotation around the target.
func (r *Renderer) updateCamera(dt float32, st view.State) {
	desired := st.Camera
	if st.AutoRotate {
		r.orbitAngle += orbitSpeed * dt
		rel := desired.Position.Sub(desired.Target)
		rel = scenegraph.RotateEuler(rel, math32.Vec3(0, math32.RadToDeg(r.orbitAngle), 0))
		desired.Position = desired.Target.Add(rel)
	} else {
		r.orbitAngle = 0
	}
	// Exponential easing, frame-rate independent.
	k := 1 - math32.Exp(-cameraDamp*dt)
	pos := vec3(r.cam.Position).Lerp(desired.Position, k)
	tgt := vec3(r.cam.Target).Lerp(desired.Target, k)
	r.cam.Position = rlVec(pos)
	r.cam.Target = rlVec(tgt)
	r.cam.Fovy = desired.Fovy
}

// drawNode draws a node's primitives and recurses into visible children.
// parentM carries the accumulated ancestor transform.
func (r *Renderer) drawNode(n *scenegraph.Node, parentM rl.Matrix, pulse float32) {
	nodeM := rl.MatrixMultiply(rotEuler(n.Rot), rl.MatrixTranslate(n.Pos.X, n.Pos.Y, n.Pos.Z))
	nodeM = rl.MatrixMultiply(nodeM, parentM)
	for _, p := range n.Prims {
		r.drawPrimitive(p, nodeM, pulse)
	}
	for _, c := range n.Children {
		if c.Visible {
			r.drawNode(c, nodeM, pulse)
		}
	}
}

func (r *Renderer) drawPrimitive(p *scenegraph.Primitive, nodeM rl.Matrix, pulse float32) {
	if p.Kind == scenegraph.ShapeLabel {
		return // labels draw last, as billboards
	}
	local := rl.MatrixMultiply(rotEuler(p.Rot), rl.MatrixTranslate(p.Pos.X, p.Pos.Y, p.Pos.Z))
	world := rl.MatrixMultiply(local, nodeM)

	col := p.Mat.Color
	if p.Mat.Emissive {
		col.R = uint8(float32(col.R) * pulse)
		col.G = uint8(float32(col.G) * pulse)
		col.B = uint8(float32(col.B) * pulse)
	}
	col.A = uint8(p.Mat.Opacity * 255)
	if albedo := r.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = col
	}

	var mesh rl.Mesh
	switch p.Kind {
	case scenegraph.ShapeBox:
		scale := rl.MatrixScale(p.Size.X, p.Size.Y, p.Size.Z)
		world = rl.MatrixMultiply(scale, world)
		mesh = r.cube
	case scenegraph.ShapeCylinder:
		// Unit cylinder has its base at Y=0; recenter before scaling so the
		// primitive position is the cylinder center (same trick as raylib's
		// GenMeshCylinder examples).
		scale := rl.MatrixScale(p.Radius*2, p.Height, p.Radius*2)
		center := rl.MatrixTranslate(0, -0.5, 0)
		world = rl.MatrixMultiply(rl.MatrixMultiply(center, scale), world)
		mesh = r.cylinder
	case scenegraph.ShapeMesh:
		mesh = r.ensureMesh(p.Mesh).mesh
	}

	if p.Mat.Wireframe {
		rl.EnableWireMode()
	}
	if p.Mat.Transparent() || p.Kind == scenegraph.ShapeMesh {
		// Open tubes and see-through walls show their interior.
		rl.DisableBackfaceCulling()
	}
	rl.DrawMesh(mesh, r.mtl, world)
	rl.EnableBackfaceCulling()
	if p.Mat.Wireframe {
		rl.DisableWireMode()
	}
}

// ensureMesh uploads a scene mesh to the GPU on first use.
func (r *Renderer) ensureMesh(m *scenegraph.Mesh) *uploaded {
	if up, ok := r.meshes[m]; ok {
		return up
	}
	up := &uploaded{
		verts: make([]float32, 0, len(m.Vertices)*3),
		norms: make([]float32, 0, len(m.Normals)*3),
		index: make([]uint16, len(m.Indices)),
	}
	for _, v := range m.Vertices {
		up.verts = append(up.verts, v.X, v.Y, v.Z)
	}
	for _, n := range m.Normals {
		up.norms = append(up.norms, n.X, n.Y, n.Z)
	}
	for i, ix := range m.Indices {
		up.index[i] = uint16(ix)
	}
	up.mesh.VertexCount = int32(len(m.Vertices))
	up.mesh.TriangleCount = int32(len(m.Indices) / 3)
	up.mesh.Vertices = unsafe.SliceData(up.verts)
	up.mesh.Normals = unsafe.SliceData(up.norms)
	up.mesh.Indices = unsafe.SliceData(up.index)
	rl.UploadMesh(&up.mesh, false)
	r.meshes[m] = up
	return up
}

// drawLabels draws every label on a visible node as a camera-facing
// billboard, so labels re-orient to the camera each frame.
func (r *Renderer) drawLabels(ctrl *view.Controller) {
	for _, ref := range ctrl.Labels() {
		if !ref.Node.VisibleInTree() {
			continue
		}
		tex := r.ensureLabelTexture(ref.Prim)
		pos := ref.Prim.WorldPos(ref.Node)
		rl.DrawBillboard(r.cam, tex, rlVec(pos), ref.Prim.TextSize, ref.Prim.Mat.Color)
	}
}

// ensureLabelTexture rasterizes the label text once and caches the texture.
func (r *Renderer) ensureLabelTexture(p *scenegraph.Primitive) rl.Texture2D {
	if tex, ok := r.labels[p]; ok {
		return tex
	}
	img := rl.ImageText(p.Text, labelFontSize, rl.White)
	tex := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	r.labels[p] = tex
	return tex
}

// drawDrops renders the condensate drip when the Peltier chamber is on
// screen (standalone or inside the assembly).
func (r *Renderer) drawDrops(ctrl *view.Controller, drops *droplets.Field) {
	if drops == nil {
		return
	}
	var offsetY float32
	switch ctrl.Active() {
	case view.ModulePeltier:
		offsetY = 0
	case view.ModuleAssembly:
		offsetY = device.OffsetPeltier
	default:
		return
	}
	for _, d := range drops.Drops {
		rl.DrawSphere(rl.NewVector3(d.Pos.X, d.Pos.Y+offsetY, d.Pos.Z), dropRadius, rl.NewColor(120, 180, 240, 200))
	}
}

func vec3(v rl.Vector3) math32.Vector3 {
	return math32.Vec3(v.X, v.Y, v.Z)
}

func rlVec(v math32.Vector3) rl.Vector3 {
	return rl.NewVector3(v.X, v.Y, v.Z)
}

// rotEuler builds a rotation matrix from Euler XYZ angles in degrees.
func rotEuler(deg math32.Vector3) rl.Matrix {
	if deg.X == 0 && deg.Y == 0 && deg.Z == 0 {
		return rl.MatrixIdentity()
	}
	return rl.MatrixRotateXYZ(rl.NewVector3(
		math32.DegToRad(deg.X), math32.DegToRad(deg.Y), math32.DegToRad(deg.Z)))
}
