// Package board holds the mutable scene drawn by a render.Renderer.
//
// Every mutation (AddElement, Clear, Resize) triggers a full synchronous
// render pass, and each pass publishes a RenderComplete event with its
// wall-clock duration. AddElement also publishes ElementAdded before the
// pass runs, so subscribers see the element before its frame.
//
// A Board is not safe for concurrent use.
package board
