package light

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/vista-go/engine/shader"
)

// PointSlots is the fixed number of point-light slots in the shader program.
const PointSlots = 5

// Rig is the fixed lighting configuration for a scene: one directional slot,
// PointSlots point slots, and one spot slot.
//
// Apply writes every slot to the uniform sink, including inactive ones. The
// sink's uniform state persists across configurations, so skipping an inactive
// slot would leave a stale active flag from a previous frame's setup; writing
// all slots every time makes the sink state match the rig by construction.
type Rig struct {
	// Directional is the single directional light slot.
	Directional Light
	// Points are the fixed point-light slots.
	Points [PointSlots]Light
	// Spot is the single spot light slot.
	Spot Light
}

// NewDeskRig returns the lighting setup for the composed desk scene: an active
// warm-grey directional light, one active red-tinted point light above the
// desk, and all remaining slots inactive.
//
// Returns:
//   - Rig: the desk scene lighting rig
func NewDeskRig() Rig {
	rig := Rig{
		Directional: NewLight(
			WithType(TypeDirectional),
			WithActive(true),
			WithDirection(mgl32.Vec3{-0.3, -1.0, -0.3}),
			WithAmbient(mgl32.Vec3{0.3, 0.3, 0.3}),
			WithDiffuse(mgl32.Vec3{0.6, 0.6, 0.6}),
			WithSpecular(mgl32.Vec3{1.0, 1.0, 1.0}),
		),
		Spot: NewLight(WithType(TypeSpot)),
	}
	rig.Points[0] = NewLight(
		WithType(TypePoint),
		WithActive(true),
		WithPosition(mgl32.Vec3{1.0, 3.0, 2.0}),
		WithAmbient(mgl32.Vec3{0.2, 0.1, 0.1}),
		WithDiffuse(mgl32.Vec3{0.9, 0.3, 0.3}),
		WithSpecular(mgl32.Vec3{0.9, 0.3, 0.3}),
	)
	for i := 1; i < PointSlots; i++ {
		rig.Points[i] = NewLight(WithType(TypePoint))
	}
	return rig
}

// Apply enables lighting and writes every slot to the uniform sink.
// Call once at scene setup, and again whenever the rig changes.
//
// Parameters:
//   - sink: the uniform sink to write to
func (r Rig) Apply(sink shader.UniformSink) {
	sink.SetBool("bUseLighting", true)

	r.applyDirectional(sink, r.Directional)
	for i, p := range r.Points {
		r.applyPoint(sink, i, p)
	}
	r.applySpot(sink, r.Spot)
}

func (r Rig) applyDirectional(sink shader.UniformSink, l Light) {
	if l == nil {
		l = NewLight(WithType(TypeDirectional))
	}
	sink.SetBool("directionalLight.bActive", l.Active())
	sink.SetVec3("directionalLight.direction", l.Direction())
	sink.SetVec3("directionalLight.ambient", l.Ambient())
	sink.SetVec3("directionalLight.diffuse", l.Diffuse())
	sink.SetVec3("directionalLight.specular", l.Specular())
}

func (r Rig) applyPoint(sink shader.UniformSink, slot int, l Light) {
	if l == nil {
		l = NewLight(WithType(TypePoint))
	}
	prefix := fmt.Sprintf("pointLights[%d]", slot)
	sink.SetBool(prefix+".bActive", l.Active())
	sink.SetVec3(prefix+".position", l.Position())
	sink.SetVec3(prefix+".ambient", l.Ambient())
	sink.SetVec3(prefix+".diffuse", l.Diffuse())
	sink.SetVec3(prefix+".specular", l.Specular())
}

func (r Rig) applySpot(sink shader.UniformSink, l Light) {
	if l == nil {
		l = NewLight(WithType(TypeSpot))
	}
	sink.SetBool("spotLight.bActive", l.Active())
	sink.SetVec3("spotLight.position", l.Position())
	sink.SetVec3("spotLight.direction", l.Direction())
	sink.SetFloat("spotLight.cutOff", l.CutOff())
	sink.SetFloat("spotLight.outerCutOff", l.OuterCutOff())
	sink.SetVec3("spotLight.ambient", l.Ambient())
	sink.SetVec3("spotLight.diffuse", l.Diffuse())
	sink.SetVec3("spotLight.specular", l.Specular())
}
