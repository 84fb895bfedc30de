package primitives

import (
	"diorama/internal/layout"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// cached holds the unit mesh and material for one primitive kind. Created lazily on first Draw.
type cached struct {
	mesh rl.Mesh
	mtl  rl.Material
}

// Registry maps primitive kinds to mesh+material. Meshes are created on first use
// so that GPU resources are allocated after the window/OpenGL context exists.
type Registry struct {
	cache  map[layout.Kind]cached
	shader rl.Shader
	loaded bool

	viewPos [3]float32
	light   Light
}

// NewRegistry returns a registry with no meshes. The default light comes from above-right.
func NewRegistry() *Registry {
	return &Registry{
		cache: make(map[layout.Kind]cached),
		light: DirectionalFrom([3]float32{5, 10, 5}, [3]float32{1, 1, 1}, 3, 0.3),
	}
}

// SetView sets camera position and light for this frame. Call once per frame
// before drawing so primitives get correct shading.
func (r *Registry) SetView(viewPos [3]float32, light Light) {
	r.viewPos = viewPos
	r.light = light
}

func (r *Registry) ensureShader() {
	if r.loaded {
		return
	}
	r.loaded = true
	r.shader = rl.LoadShaderFromMemory(litVS, litFS)
}

// ensure creates the unit mesh for kind if not yet cached. Planes are 1x1 in XZ,
// boxes 1x1x1; both centred on the origin and scaled per draw.
func (r *Registry) ensure(kind layout.Kind) (cached, bool) {
	if c, ok := r.cache[kind]; ok {
		return c, true
	}
	r.ensureShader()
	var mesh rl.Mesh
	switch kind {
	case layout.Plane:
		mesh = rl.GenMeshPlane(1, 1, 1, 1)
	case layout.Box:
		mesh = rl.GenMeshCube(1, 1, 1)
	default:
		return cached{}, false
	}
	mtl := rl.LoadMaterialDefault()
	if rl.IsShaderValid(r.shader) {
		mtl.Shader = r.shader
	}
	c := cached{mesh: mesh, mtl: mtl}
	r.cache[kind] = c
	return c, true
}

const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	// Planes are drawn two-sided, so back faces flip their normal.
	litFS = `#version 330
in vec3 fragPosition;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightDir;
uniform vec3 lightColor;
uniform float lightIntensity;
uniform float ambient;
uniform float specularPower;
uniform float specularStrength;
out vec4 finalColor;
void main() {
  vec4 tint = colDiffuse;
  vec3 N = normalize(fragNormal);
  if (!gl_FrontFacing) N = -N;
  vec3 L = normalize(lightDir);
  vec3 V = normalize(viewPos - fragPosition);
  float NdotL = max(dot(N, L), 0.0);
  vec3 diffuse = tint.rgb * NdotL * lightColor * lightIntensity;
  vec3 amb = ambient * lightColor * tint.rgb;
  vec3 H = normalize(L + V);
  float spec = pow(max(dot(N, H), 0.0), specularPower) * specularStrength;
  vec3 specular = lightColor * spec * (NdotL > 0.0 ? 1.0 : 0.0);
  finalColor = vec4(min(amb + diffuse + specular, vec3(1.0)), tint.a);
}
`
)

// setUniforms sets view, light and material uniforms (cgo-safe: local arrays).
func (r *Registry) setUniforms(shader rl.Shader, m Material) {
	if !rl.IsShaderValid(shader) {
		return
	}
	viewPos := [3]float32{r.viewPos[0], r.viewPos[1], r.viewPos[2]}
	lightDir := [3]float32{r.light.Direction[0], r.light.Direction[1], r.light.Direction[2]}
	lightColor := [3]float32{r.light.Color[0], r.light.Color[1], r.light.Color[2]}
	power, strength := specular(m.Roughness)
	if loc := rl.GetShaderLocation(shader, "viewPos"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, viewPos[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightDir"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, lightDir[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightColor"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, lightColor[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightIntensity"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{r.light.Intensity}, rl.ShaderUniformFloat)
	}
	if loc := rl.GetShaderLocation(shader, "ambient"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{r.light.Ambient}, rl.ShaderUniformFloat)
	}
	if loc := rl.GetShaderLocation(shader, "specularPower"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{power}, rl.ShaderUniformFloat)
	}
	if loc := rl.GetShaderLocation(shader, "specularStrength"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{strength}, rl.ShaderUniformFloat)
	}
}

// transform builds scale, then orientation, then translation for p.
// Layout planes lie in XY facing +Z while the raylib plane mesh lies in XZ facing +Y,
// so planes get an extra quarter turn about X before their own rotation.
func transform(p layout.Primitive) rl.Matrix {
	var m rl.Matrix
	switch p.Kind {
	case layout.Plane:
		m = rl.MatrixMultiply(rl.MatrixScale(p.Size[0], 1, p.Size[1]), rl.MatrixRotateX(math32.Pi/2))
	default:
		m = rl.MatrixScale(p.Size[0], p.Size[1], p.Size[2])
	}
	if p.Rotation != [3]float32{} {
		rot := rl.MatrixRotateXYZ(rl.NewVector3(p.Rotation[0], p.Rotation[1], p.Rotation[2]))
		m = rl.MatrixMultiply(m, rot)
	}
	return rl.MatrixMultiply(m, rl.MatrixTranslate(p.Position[0], p.Position[1], p.Position[2]))
}

// Draw draws one primitive with material m.
// Must be called between BeginMode3D and EndMode3D, after SetView.
func (r *Registry) Draw(p layout.Primitive, m Material) {
	c, ok := r.ensure(p.Kind)
	if !ok {
		return
	}
	if albedo := c.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = rl.NewColor(m.Color.R, m.Color.G, m.Color.B, m.Color.A)
	}
	r.setUniforms(c.mtl.Shader, m)
	if p.Kind == layout.Plane {
		rl.DisableBackfaceCulling()
		rl.DrawMesh(c.mesh, c.mtl, transform(p))
		rl.EnableBackfaceCulling()
		return
	}
	rl.DrawMesh(c.mesh, c.mtl, transform(p))
}

// Unload releases every mesh and the shared shader. The registry can be reused afterwards.
func (r *Registry) Unload() {
	for k, c := range r.cache {
		rl.UnloadMesh(&c.mesh)
		delete(r.cache, k)
	}
	if r.loaded && rl.IsShaderValid(r.shader) {
		rl.UnloadShader(r.shader)
	}
	r.loaded = false
}
