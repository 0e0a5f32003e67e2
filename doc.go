// iw is a playback and rendering engine for pedestrian trajectory data
// recorded during field experiments, designed to be used with the
// Ebitengine game engine.
//
// The engine draws many moving markers over a fixed environment,
// synchronized to a caller-owned frame clock, with entity selection,
// attribute filtering, recoloring, per-condition tiled panes and trail
// persistence.
//
// Common usage only needs a store, a configuration and a [Renderer]:
//
//	observations, _ := dataset.LoadTrajectories("trajectory.json.gz")
//	metadata, _ := dataset.LoadMetadata("meta.json.gz")
//	store := trajstore.New(observations, metadata, nil)
//	renderer := iw.NewRenderer(store, cfg, environment)
//
// Then, inside the game loop, advance the clock and draw:
//
//	renderer.Render(frame)  // from Update; frame is yours to drive
//	renderer.Draw(screen)   // from Draw
//
// Render accepts any frame number, in any order: forward play, speed
// changes and backward seeks are all plain Render calls. See the
// examples folder for a complete playback controller.
package iw
