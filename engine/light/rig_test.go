package light

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

// recordingSink captures every uniform write in order.
type recordingSink struct {
	bools map[string]bool
	vecs  map[string]mgl32.Vec3
	names []string
}

func newRecordingSink() *recordingSink {
	return &recordingSink{bools: make(map[string]bool), vecs: make(map[string]mgl32.Vec3)}
}

func (s *recordingSink) SetMat4(name string, _ mgl32.Mat4)  { s.names = append(s.names, name) }
func (s *recordingSink) SetVec2(name string, _ mgl32.Vec2)  { s.names = append(s.names, name) }
func (s *recordingSink) SetVec4(name string, _ mgl32.Vec4)  { s.names = append(s.names, name) }
func (s *recordingSink) SetFloat(name string, _ float32)    { s.names = append(s.names, name) }
func (s *recordingSink) SetInt(name string, _ int32)        { s.names = append(s.names, name) }
func (s *recordingSink) SetSampler2D(name string, _ int32)  { s.names = append(s.names, name) }

func (s *recordingSink) SetVec3(name string, v mgl32.Vec3) {
	s.vecs[name] = v
	s.names = append(s.names, name)
}

func (s *recordingSink) SetBool(name string, v bool) {
	s.bools[name] = v
	s.names = append(s.names, name)
}

func TestDeskRigWritesEverySlot(t *testing.T) {
	sink := newRecordingSink()
	NewDeskRig().Apply(sink)

	assert.True(t, sink.bools["bUseLighting"])
	assert.True(t, sink.bools["directionalLight.bActive"])
	assert.Equal(t, mgl32.Vec3{-0.3, -1.0, -0.3}, sink.vecs["directionalLight.direction"])

	assert.True(t, sink.bools["pointLights[0].bActive"])
	assert.Equal(t, mgl32.Vec3{1, 3, 2}, sink.vecs["pointLights[0].position"])

	// Inactive slots must still be written so stale active flags cannot persist.
	for _, name := range []string{
		"pointLights[1].bActive",
		"pointLights[2].bActive",
		"pointLights[3].bActive",
		"pointLights[4].bActive",
		"spotLight.bActive",
	} {
		v, written := sink.bools[name]
		assert.True(t, written, "%s must be written", name)
		assert.False(t, v, "%s must be inactive", name)
	}
}

func TestRigWithNilSlotsWritesInactive(t *testing.T) {
	sink := newRecordingSink()
	Rig{}.Apply(sink)

	assert.False(t, sink.bools["directionalLight.bActive"])
	assert.False(t, sink.bools["pointLights[4].bActive"])
	assert.False(t, sink.bools["spotLight.bActive"])
}

func TestLightBuilderDefaults(t *testing.T) {
	l := NewLight()
	assert.Equal(t, TypeDirectional, l.Type())
	assert.False(t, l.Active())
	assert.Equal(t, mgl32.Vec3{}, l.Diffuse())
}
