// Package canvas provides a retained-state 2D vector render context
// backed by a pure-Go software rasterizer.
//
// # Overview
//
// canvas exposes an immediate-mode drawing API similar to HTML Canvas:
// paths, fills, strokes, linear gradients, clipping, text, and image
// blits. Drawing calls mutate the pixel buffer synchronously; there is
// no deferred command list.
//
// # Quick Start
//
//	import "github.com/gocanvas/canvas"
//
//	ctx, err := canvas.New(512, 512)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx.SetFillStyle(canvas.SolidColor{Color: canvas.ColorFromHex("#FF0000")})
//	ctx.FillRect(10, 10, 100, 100)
//
//	ctx.BeginPath()
//	ctx.Arc(256, 256, 100, 0, 2*math.Pi)
//	ctx.Fill()
//
//	ctx.SavePNG("output.png")
//
// # Error Handling
//
// Drawing calls never return errors. Invalid geometry, degenerate
// paints, and missing fonts degrade visually instead of aborting, so a
// single bad draw call cannot halt a frame. The only fatal condition is
// failing to allocate the pixel buffer at construction or resize time.
//
// # Concurrency
//
// A RenderContext is single-threaded: it exclusively owns its pixel
// buffer, path state, font registry, and state stack. Callers must
// serialize access externally, e.g. one context per drawing goroutine.
package canvas
