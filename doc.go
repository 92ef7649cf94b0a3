// Package arbor is the runtime core of a small 2D game framework for
// [Ebitengine].
//
// Arbor composes game entities into a tree, dispatches per-frame update and
// draw passes through that tree, and feeds a thin rendering abstraction that
// turns 2D affine transforms into indexed GPU draws.
//
// # Quick start
//
// [Run] opens a window, builds the root node, and drives the loop:
//
//	type World struct {
//		arbor.Object
//	}
//
//	func NewWorld(g *arbor.Game, _ struct{}) (*World, error) {
//		w := &World{}
//		hero, err := arbor.Make(g, arbor.SpriteFromTexture("hero.png"), arbor.NewSprite)
//		if err != nil {
//			return nil, err
//		}
//		w.AddChild(hero)
//		return w, nil
//	}
//
//	func main() {
//		if err := arbor.Run(arbor.RunConfig{Title: "demo"}, NewWorld); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// # Scene tree
//
// A node is any type that embeds [Object]. It may also implement [Updater],
// [Drawer], or both; embedding [Spatial] gives it a [Transform]. Capabilities
// are resolved once when the node is built by [Make] or attached by
// [Object.AddChild], so the per-frame walk never inspects types.
//
// The update pass visits children before their parent; the draw pass draws a
// parent before its children. Siblings always run in attach order.
// Transforms are not inherited: each node draws with its own.
//
// # Transforms
//
// A [Transform] maps a point p to (p - Pivot) * Linear + Offset, using row
// vectors. Builder methods such as [Transform.ScaledUniform] accumulate into
// the existing component by element-wise addition rather than composing.
//
// # Assets
//
// [Load] and [LoadGPU] return one shared instance per (type, path) for the
// lifetime of an [Assets] cache. Built-in asset types are [Image], [Texture],
// and [Atlas]. Failures return an [*AssetError] and are not cached.
//
// # Rendering
//
// [RenderContext] wraps a [Device] and owns the default pipeline, the shared
// quad index buffer, and the pixel to NDC viewport transform. [EbitenDevice]
// is the production device; tests can supply their own.
//
// # Input
//
// [Input] holds key and mouse state updated by host callbacks on [Game].
// Events can be forwarded to a Donburi world via arbor/ecs, and replayed from
// JSON with [Script].
//
// [Ebitengine]: https://ebitengine.org
package arbor
