// Package grasp converts raw per-frame hand-tracking data into discrete,
// debounced interaction events and drives UI state machines from them.
//
// Grasp is the interaction layer for hand-tracked 3D scenes: it consumes
// named joint positions (thumb tip, index tip, wrist) per hand per frame and
// produces pinch edges, proximity hits, drag capture/follow/release
// lifecycles, continuous rotation input, and state transitions for common
// affordances (press buttons, binary toggles, stepped selectors, radial
// pickers, pull switches). Scene loading, materials, and rendering stay with
// the host; grasp only reads world positions and emits tween requests.
//
// # Quick start
//
// Create an [Engine], register affordances, and feed it one [HandFrame] per
// tracked hand from your render loop:
//
//	engine := grasp.NewEngine()
//	engine.SetSceneRoot(root)
//
//	sw := grasp.NewPullSwitch(grasp.PullSwitchConfig{
//		Handle: handleNode,
//		Target: grasp.NodeTarget("drawer-handle", handleNode, 0.08),
//	})
//	sw.OnToggle = func(open bool) { /* open or close the drawer */ }
//	engine.AddPullSwitch(sw)
//
//	// Each frame:
//	engine.Update(frames, dt)
//
// # Frame model
//
// Everything runs synchronously inside [Engine.Update], in a fixed order:
// joint sampling, pinch detection, hit testing and rotation tracking,
// cooldown checks, state-machine transitions, and finally the tween runner
// tick. There is no internal concurrency; the engine is owned by the host
// render loop.
//
// # Visual transitions
//
// State machines never interpolate anything themselves. They hand a target
// value, duration, and easing to the [TweenRunner] (built on [gween]) and
// advance on its completion events. Starting a new tween on the same node
// channel supersedes the in-flight one.
//
// [gween]: https://github.com/tanema/gween
package grasp
