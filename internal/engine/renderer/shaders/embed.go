// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// PanelVertexShader places a unit quad with a model-view-projection matrix.
//
//go:embed panel.vert
var PanelVertexShader string

// PanelFragmentShader samples the panel's photo texture.
//
//go:embed panel.frag
var PanelFragmentShader string

// OverlayVertexShader places a unit quad on a pixel rectangle.
//
//go:embed overlay.vert
var OverlayVertexShader string

// OverlayFragmentShader fills overlay rectangles, discs and text.
//
//go:embed overlay.frag
var OverlayFragmentShader string
