// Package render provides interchangeable drawing backends for a board.
//
// All backends satisfy [Renderer] and are built with [New]:
//
//   - [CanvasRenderer]: immediate-mode pixel surface (gg.Context)
//   - [SVGRenderer]: retained node tree serialised as SVG
//   - [SceneRenderer]: vector scene graph (gg/scene) rasterised to a pixmap
//
// A renderer is mounted into exactly one [Container] and attaches a
// [Surface] to it. Surfaces can be encoded to PNG or SVG by the host.
//
// # Degraded surfaces
//
// Draw never fails. A renderer that is not mounted skips the frame and
// logs a warning; callers can check Mounted to detect the state.
//
// Renderers are not safe for concurrent use and must not be shared
// between boards.
package render
