package scene

import (
	"github.com/Carmen-Shannon/vista-go/engine/material"
	"github.com/Carmen-Shannon/vista-go/engine/mesh"
	"github.com/go-gl/mathgl/mgl32"
)

// deskTextureSources lists the image files the desk scene loads at Prepare.
func deskTextureSources() []TextureSource {
	return []TextureSource{
		{Tag: "wood", Path: "assets/textures/wood.png"},
		{Tag: "mouse_body", Path: "assets/textures/mouse_body.png"},
		{Tag: "mouse_buttons", Path: "assets/textures/mouse_buttons.png"},
	}
}

// defineDeskMaterials fills the table with the desk scene's materials.
func defineDeskMaterials(table material.Table) {
	table.Define("wood", mgl32.Vec3{0.4, 0.3, 0.2}, mgl32.Vec3{0.2, 0.2, 0.2}, 8)
	table.Define("plastic", mgl32.Vec3{0.5, 0.5, 0.5}, mgl32.Vec3{0.4, 0.4, 0.4}, 16)
	table.Define("glass", mgl32.Vec3{0.1, 0.1, 0.1}, mgl32.Vec3{0.6, 0.6, 0.6}, 32)
}

// deskSteps is the desk scene's draw list: a wooden desktop, a mouse with two
// buttons, a keyboard, a stress ball cluster and a pair of reading glasses.
// Order matters for uniform state: each step fully re-establishes its
// appearance before drawing.
func deskSteps() []DrawStep {
	steps := []DrawStep{
		// desktop surface
		{
			Kind:        mesh.KindPlane,
			Scale:       mgl32.Vec3{20, 1, 10},
			Position:    mgl32.Vec3{0, 0, 0},
			TextureTag:  "wood",
			UVScale:     mgl32.Vec2{4, 2},
			MaterialTag: "wood",
		},
		// mouse body
		{
			Kind:        mesh.KindSphere,
			Scale:       mgl32.Vec3{0.9, 0.5, 1.3},
			RotZ:        -15,
			Position:    mgl32.Vec3{-2, 0.5, 0},
			TextureTag:  "mouse_body",
			MaterialTag: "plastic",
		},
	}

	// mouse buttons
	for i := 0; i < 2; i++ {
		steps = append(steps, DrawStep{
			Kind:        mesh.KindTaperedCylinder,
			Scale:       mgl32.Vec3{0.2, 0.05, 0.2},
			RotX:        90,
			Position:    mgl32.Vec3{-2.15 + 0.3*float32(i), 0.65, 0.2},
			TextureTag:  "mouse_buttons",
			MaterialTag: "plastic",
		})
	}

	// keyboard
	steps = append(steps, DrawStep{
		Kind:        mesh.KindBox,
		Scale:       mgl32.Vec3{3, 0.3, 1.5},
		Position:    mgl32.Vec3{1, 0.15, 0},
		Color:       mgl32.Vec4{0.9, 0.9, 0.9, 1},
		MaterialTag: "plastic",
	})

	// stress ball cluster
	for i := 0; i < 3; i++ {
		steps = append(steps, DrawStep{
			Kind:        mesh.KindSphere,
			Scale:       mgl32.Vec3{0.6, 0.6, 0.6},
			Position:    mgl32.Vec3{-0.5 + 0.6*float32(i), 0.35, -0.6},
			Color:       mgl32.Vec4{1, 1, 1, 1},
			MaterialTag: "plastic",
		})
	}

	// glasses rims
	for i := 0; i < 2; i++ {
		steps = append(steps, DrawStep{
			Kind:        mesh.KindTorus,
			Scale:       mgl32.Vec3{0.3, 0.3, 0.3},
			RotX:        90,
			Position:    mgl32.Vec3{-0.5 + 0.8*float32(i), 0.5, 1.0},
			Color:       mgl32.Vec4{0.1, 0.1, 0.1, 1},
			MaterialTag: "glass",
		})
	}

	// glasses bridge
	steps = append(steps, DrawStep{
		Kind:        mesh.KindBox,
		Scale:       mgl32.Vec3{0.8, 0.05, 0.05},
		Position:    mgl32.Vec3{-0.1, 0.5, 1.0},
		Color:       mgl32.Vec4{0.1, 0.1, 0.1, 1},
		MaterialTag: "glass",
	})

	return steps
}
