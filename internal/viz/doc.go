// Package viz draws boards and render timings in the terminal.
//
//   - [Canvas]: braille dot grid; [Canvas.Sketch] plots an element list
//   - [Preview]: downsamples a pixel surface onto a Canvas
//   - [Theme] and [Styles]: lipgloss color schemes for the playground
package viz
