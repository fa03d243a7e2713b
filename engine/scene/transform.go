package scene

import (
	"github.com/Carmen-Shannon/vista-go/engine/shader"
	"github.com/go-gl/mathgl/mgl32"
)

// ComposeTransform builds a model matrix from the given scale, per-axis
// rotations and translation. The multiplication order is fixed: translation
// outermost, then Z rotation, then Y rotation, then X rotation, then scale.
// Every draw step depends on this exact order.
//
// Parameters:
//   - scale: per-axis scale factors
//   - rotXDeg: rotation around the X axis in degrees
//   - rotYDeg: rotation around the Y axis in degrees
//   - rotZDeg: rotation around the Z axis in degrees
//   - position: world-space translation
//
// Returns:
//   - mgl32.Mat4: the composed model matrix
func ComposeTransform(scale mgl32.Vec3, rotXDeg, rotYDeg, rotZDeg float32, position mgl32.Vec3) mgl32.Mat4 {
	translation := mgl32.Translate3D(position.X(), position.Y(), position.Z())
	rotationZ := mgl32.HomogRotate3DZ(mgl32.DegToRad(rotZDeg))
	rotationY := mgl32.HomogRotate3DY(mgl32.DegToRad(rotYDeg))
	rotationX := mgl32.HomogRotate3DX(mgl32.DegToRad(rotXDeg))
	scaling := mgl32.Scale3D(scale.X(), scale.Y(), scale.Z())

	return translation.Mul4(rotationZ).Mul4(rotationY).Mul4(rotationX).Mul4(scaling)
}

// SetTransformations composes a model matrix and pushes it to the sink under
// the "model" slot.
//
// Parameters:
//   - sink: the uniform sink to write to
//   - scale: per-axis scale factors
//   - rotXDeg: rotation around the X axis in degrees
//   - rotYDeg: rotation around the Y axis in degrees
//   - rotZDeg: rotation around the Z axis in degrees
//   - position: world-space translation
func SetTransformations(sink shader.UniformSink, scale mgl32.Vec3, rotXDeg, rotYDeg, rotZDeg float32, position mgl32.Vec3) {
	sink.SetMat4("model", ComposeTransform(scale, rotXDeg, rotYDeg, rotZDeg, position))
}
