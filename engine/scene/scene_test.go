package scene

import (
	"fmt"
	"testing"

	"github.com/Carmen-Shannon/vista-go/engine/mesh"
	"github.com/Carmen-Shannon/vista-go/engine/texture"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// eventSink records uniform writes into a shared ordered event log so tests
// can assert state is pushed before the draw call it belongs to.
type eventSink struct {
	events *[]string
	mat4s  map[string]mgl32.Mat4
}

func newEventSink(events *[]string) *eventSink {
	return &eventSink{events: events, mat4s: make(map[string]mgl32.Mat4)}
}

func (e *eventSink) record(format string, args ...any) {
	*e.events = append(*e.events, fmt.Sprintf(format, args...))
}

func (e *eventSink) SetMat4(name string, value mgl32.Mat4) {
	e.mat4s[name] = value
	e.record("mat4:%s", name)
}
func (e *eventSink) SetVec2(name string, value mgl32.Vec2) { e.record("vec2:%s", name) }
func (e *eventSink) SetVec3(name string, value mgl32.Vec3) { e.record("vec3:%s", name) }
func (e *eventSink) SetVec4(name string, value mgl32.Vec4) { e.record("vec4:%s", name) }
func (e *eventSink) SetFloat(name string, value float32)   { e.record("float:%s", name) }
func (e *eventSink) SetInt(name string, value int32)       { e.record("int:%s", name) }
func (e *eventSink) SetBool(name string, value bool)       { e.record("bool:%s=%v", name, value) }
func (e *eventSink) SetSampler2D(name string, unit int32)  { e.record("sampler:%s=%d", name, unit) }

type fakeMeshBackend struct {
	events *[]string
	next   uint32
}

func (f *fakeMeshBackend) Upload(geo mesh.Geometry) (mesh.Buffers, error) {
	f.next++
	return mesh.Buffers{VAO: f.next, IndexCount: int32(len(geo.Indices))}, nil
}

func (f *fakeMeshBackend) Draw(buf mesh.Buffers) {
	*f.events = append(*f.events, fmt.Sprintf("draw:%d", buf.VAO))
}

func (f *fakeMeshBackend) Delete(buf mesh.Buffers) {}

type fakeTextureBackend struct {
	next texture.Handle
}

func (f *fakeTextureBackend) Upload(img texture.Image) (texture.Handle, error) {
	f.next++
	return f.next, nil
}

func (f *fakeTextureBackend) BindUnit(unit int, handle texture.Handle) {}
func (f *fakeTextureBackend) Delete(handle texture.Handle)             {}

type fakeDecoder struct {
	failPaths map[string]bool
}

func (f *fakeDecoder) Decode(path string, flipVertically bool) (texture.Image, error) {
	if f.failPaths[path] {
		return texture.Image{}, fmt.Errorf("decode %s: no such file", path)
	}
	return texture.Image{Pixels: []byte{0, 0, 0, 255}, Width: 1, Height: 1, Channels: 4}, nil
}

func newTestScene(events *[]string, options ...SceneOption) Scene {
	base := []SceneOption{
		WithDecoder(&fakeDecoder{}),
		WithTextureRegistry(texture.NewRegistry(texture.WithBackend(&fakeTextureBackend{}))),
		WithMeshProvider(mesh.NewProvider(mesh.WithBackend(&fakeMeshBackend{events: events}))),
		WithDecodeWorkers(2),
	}
	return NewScene(append(base, options...)...)
}

func TestComposeTransformOrder(t *testing.T) {
	scale := mgl32.Vec3{2, 3, 4}
	position := mgl32.Vec3{1, -2, 5}
	rotX, rotY, rotZ := float32(30), float32(45), float32(-15)

	want := mgl32.Translate3D(position.X(), position.Y(), position.Z()).
		Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(rotZ))).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(rotY))).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(rotX))).
		Mul4(mgl32.Scale3D(scale.X(), scale.Y(), scale.Z()))

	got := ComposeTransform(scale, rotX, rotY, rotZ, position)
	for i := 0; i < 16; i++ {
		assert.InDelta(t, float64(want[i]), float64(got[i]), 1e-5)
	}
}

func TestSetTransformationsPushesModel(t *testing.T) {
	var events []string
	sink := newEventSink(&events)

	SetTransformations(sink, mgl32.Vec3{1, 1, 1}, 0, 90, 0, mgl32.Vec3{0, 1, 0})

	require.Contains(t, sink.mat4s, "model")
	want := ComposeTransform(mgl32.Vec3{1, 1, 1}, 0, 90, 0, mgl32.Vec3{0, 1, 0})
	assert.Equal(t, want, sink.mat4s["model"])
}

func TestRenderPushesStateBeforeEachDraw(t *testing.T) {
	var events []string
	s := newTestScene(&events,
		WithTextureSources([]TextureSource{{Tag: "wood", Path: "wood.png"}}),
		WithSteps([]DrawStep{
			{Kind: mesh.KindPlane, Scale: mgl32.Vec3{1, 1, 1}, TextureTag: "wood"},
			{Kind: mesh.KindBox, Scale: mgl32.Vec3{1, 1, 1}, Color: mgl32.Vec4{1, 0, 0, 1}},
		}),
	)

	sink := newEventSink(&events)
	require.NoError(t, s.Prepare(sink))

	events = events[:0]
	s.Render(sink)

	var order []string
	for _, ev := range events {
		switch ev {
		case "mat4:model", "bool:bUseTexture=true", "bool:bUseTexture=false", "sampler:objectTexture=0":
			order = append(order, ev)
		default:
			if len(ev) > 4 && ev[:4] == "draw" {
				order = append(order, "draw")
			}
		}
	}

	assert.Equal(t, []string{
		"mat4:model", "bool:bUseTexture=true", "sampler:objectTexture=0", "draw",
		"mat4:model", "bool:bUseTexture=false", "draw",
	}, order)
}

func TestRenderMissingTextureBindsNegativeUnit(t *testing.T) {
	var events []string
	s := newTestScene(&events,
		WithTextureSources([]TextureSource{}),
		WithSteps([]DrawStep{
			{Kind: mesh.KindBox, Scale: mgl32.Vec3{1, 1, 1}, TextureTag: "absent"},
		}),
	)

	sink := newEventSink(&events)
	require.NoError(t, s.Prepare(sink))

	events = events[:0]
	s.Render(sink)
	assert.Contains(t, events, "sampler:objectTexture=-1")
}

func TestPrepareSkipsFailedDecodes(t *testing.T) {
	var events []string
	s := newTestScene(&events,
		WithDecoder(&fakeDecoder{failPaths: map[string]bool{"broken.png": true}}),
		WithTextureSources([]TextureSource{
			{Tag: "good", Path: "good.png"},
			{Tag: "bad", Path: "broken.png"},
		}),
		WithSteps([]DrawStep{{Kind: mesh.KindBox, Scale: mgl32.Vec3{1, 1, 1}}}),
	)

	sink := newEventSink(&events)
	require.NoError(t, s.Prepare(sink))

	assert.True(t, s.Textures().Exists("good"))
	assert.False(t, s.Textures().Exists("bad"))
}

func TestPrepareConfiguresLightsOnSink(t *testing.T) {
	var events []string
	s := newTestScene(&events,
		WithTextureSources([]TextureSource{}),
		WithSteps([]DrawStep{{Kind: mesh.KindBox, Scale: mgl32.Vec3{1, 1, 1}}}),
	)

	sink := newEventSink(&events)
	require.NoError(t, s.Prepare(sink))
	assert.Contains(t, events, "bool:bUseLighting=true")
}

func TestDeskSceneDefaults(t *testing.T) {
	var events []string
	s := newTestScene(&events)

	steps := s.Steps()
	require.NotEmpty(t, steps)
	assert.Equal(t, mesh.KindPlane, steps[0].Kind)
	assert.Equal(t, "wood", steps[0].TextureTag)

	sink := newEventSink(&events)
	require.NoError(t, s.Prepare(sink))

	glass, ok := s.Materials().Find("glass")
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec3{0.1, 0.1, 0.1}, glass.Diffuse())
	assert.Equal(t, mgl32.Vec3{0.6, 0.6, 0.6}, glass.Specular())
	assert.InDelta(t, 32.0, float64(glass.Shininess()), 1e-6)
}

func TestRenderAfterReleaseIsNoOp(t *testing.T) {
	var events []string
	s := newTestScene(&events,
		WithTextureSources([]TextureSource{}),
		WithSteps([]DrawStep{{Kind: mesh.KindBox, Scale: mgl32.Vec3{1, 1, 1}}}),
	)

	sink := newEventSink(&events)
	require.NoError(t, s.Prepare(sink))
	s.Release()

	events = events[:0]
	s.Render(sink)
	assert.Empty(t, events)
}
