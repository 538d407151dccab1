package ecs

import (
	"sort"

	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// EntityID is a unique identifier for an entity (never recycled)
type EntityID uint64

// cellSize is the broadphase cell edge in world units
const cellSize = 32

// spaceMargin extends the broadphase on every side so entities slightly
// outside the stage (jump apex, fall) still get cells.
const spaceMargin = 512

// World holds all component maps, the kind registry and the broadphase
type World struct {
	nextID EntityID

	// Components
	Body   map[EntityID]Body
	Value  map[EntityID]int
	Effect map[EntityID]Effect

	// Registry: live entities grouped by kind
	kinds  map[Kind]map[EntityID]struct{}
	kindOf map[EntityID]Kind

	// Broadphase objects for every collidable entity
	space  *resolv.Space
	shapes map[EntityID]*resolv.Object

	// Gravity applied to dynamic bodies (world units/s²)
	Gravity float64

	// Singleton references
	PlayerID EntityID
}

// NewWorld creates an empty world covering width×height world units
func NewWorld(width, height int, gravity float64) *World {
	kinds := make(map[Kind]map[EntityID]struct{})
	for k := KindPlayer; k <= KindEffect; k++ {
		kinds[k] = make(map[EntityID]struct{})
	}
	return &World{
		nextID:  1, // 0 is "nil"
		Body:    make(map[EntityID]Body),
		Value:   make(map[EntityID]int),
		Effect:  make(map[EntityID]Effect),
		kinds:   kinds,
		kindOf:  make(map[EntityID]Kind),
		space:   resolv.NewSpace(width+2*spaceMargin, height+2*spaceMargin, cellSize, cellSize),
		shapes:  make(map[EntityID]*resolv.Object),
		Gravity: gravity,
	}
}

// NewEntity returns a new unique entity ID registered under kind
func (w *World) NewEntity(kind Kind) EntityID {
	id := w.nextID
	w.nextID++
	w.kinds[kind][id] = struct{}{}
	w.kindOf[id] = kind
	return id
}

// DestroyEntity removes all components for an entity
func (w *World) DestroyEntity(id EntityID) {
	if kind, ok := w.kindOf[id]; ok {
		delete(w.kinds[kind], id)
		delete(w.kindOf, id)
	}
	if obj, ok := w.shapes[id]; ok {
		w.space.Remove(obj)
		delete(w.shapes, id)
	}
	delete(w.Body, id)
	delete(w.Value, id)
	delete(w.Effect, id)
	if w.PlayerID == id {
		w.PlayerID = 0
	}
}

// Exists reports whether the entity is still registered
func (w *World) Exists(id EntityID) bool {
	_, ok := w.kindOf[id]
	return ok
}

// ByKind returns a snapshot of the live entities of a kind, in creation order
func (w *World) ByKind(kind Kind) []EntityID {
	ids := make([]EntityID, 0, len(w.kinds[kind]))
	for id := range w.kinds[kind] {
		ids = append(ids, id)
	}
	sortIDs(ids)
	return ids
}

// Count returns the number of live entities of a kind
func (w *World) Count(kind Kind) int {
	return len(w.kinds[kind])
}

// cellExtent is the size an entity occupies in the broadphase.
// resolv stops at cell X+W-1, so boxes are registered one unit larger
// to keep sub-unit overlaps across a cell edge in each other's cells.
// Overlaps stays the exact test.
func cellExtent(body Body) (float64, float64) {
	return body.W + 1, body.H + 1
}

// addBody creates a collidable entity and registers it in the broadphase
func (w *World) addBody(kind Kind, body Body) EntityID {
	id := w.NewEntity(kind)
	w.Body[id] = body

	bw, bh := cellExtent(body)
	obj := resolv.NewObject(body.X+spaceMargin, body.Y+spaceMargin, bw, bh, kind.String())
	obj.SetShape(resolv.NewRectangle(0, 0, bw, bh))
	obj.Data = id
	w.space.Add(obj)
	w.shapes[id] = obj
	return id
}

// CreatePlayer creates the player entity
func (w *World) CreatePlayer(x, y, width, height float64) EntityID {
	id := w.addBody(KindPlayer, Body{X: x, Y: y, W: width, H: height, Dynamic: true})
	w.PlayerID = id
	return id
}

// CreatePlatform creates a solid platform
func (w *World) CreatePlatform(x, y, width, height float64) EntityID {
	return w.addBody(KindPlatform, Body{X: x, Y: y, W: width, H: height})
}

// CreateCollectible creates a pickup that adds value to the score
func (w *World) CreateCollectible(x, y, width, height float64, value int) EntityID {
	id := w.addBody(KindCollectible, Body{X: x, Y: y, W: width, H: height})
	w.Value[id] = value
	return id
}

// CreateJumpboost creates a temporary jump-force pickup
func (w *World) CreateJumpboost(x, y, width, height float64) EntityID {
	return w.addBody(KindJumpboost, Body{X: x, Y: y, W: width, H: height})
}

// CreatePower creates a pickup that adds value to the power counter
func (w *World) CreatePower(x, y, width, height float64, value int) EntityID {
	id := w.addBody(KindPower, Body{X: x, Y: y, W: width, H: height})
	w.Value[id] = value
	return id
}

// CreateEnemy creates a static enemy
func (w *World) CreateEnemy(x, y, width, height float64) EntityID {
	return w.addBody(KindEnemy, Body{X: x, Y: y, W: width, H: height})
}

// EmitEffect spawns a particle burst at (x, y). Effects never collide.
func (w *World) EmitEffect(x, y float64, preset EffectPreset) EntityID {
	id := w.NewEntity(KindEffect)
	w.Body[id] = Body{X: x, Y: y}
	w.Effect[id] = Effect{
		Preset: preset,
		Alpha:  1,
		fade:   gween.New(1, 0, float32(preset.Lifetime), ease.OutQuad),
	}
	return id
}

// SetBody replaces an entity's body and keeps the broadphase in sync
func (w *World) SetBody(id EntityID, body Body) {
	if !w.Exists(id) {
		return
	}
	w.Body[id] = body
	if obj, ok := w.shapes[id]; ok {
		if bw, bh := cellExtent(body); obj.W != bw || obj.H != bh {
			obj.W = bw
			obj.H = bh
			obj.SetShape(resolv.NewRectangle(0, 0, bw, bh))
		}
		obj.X = body.X + spaceMargin
		obj.Y = body.Y + spaceMargin
		obj.Update()
	}
}

// Overlaps tests two entities' boxes against each other
func (w *World) Overlaps(a, b EntityID) bool {
	ba, okA := w.Body[a]
	bb, okB := w.Body[b]
	if !okA || !okB {
		return false
	}
	return ba.Overlaps(bb)
}

// Candidates returns a snapshot of the entities of a kind sharing a
// broadphase cell with id. Callers narrow it down with Overlaps.
func (w *World) Candidates(id EntityID, kind Kind) []EntityID {
	obj, ok := w.shapes[id]
	if !ok {
		return nil
	}
	check := obj.Check(0, 0, kind.String())
	if check == nil {
		return nil
	}

	seen := make(map[EntityID]struct{})
	ids := make([]EntityID, 0, len(check.Objects))
	for _, o := range check.ObjectsByTags(kind.String()) {
		other, ok := o.Data.(EntityID)
		if !ok || other == id {
			continue
		}
		if _, dup := seen[other]; dup {
			continue
		}
		seen[other] = struct{}{}
		ids = append(ids, other)
	}
	sortIDs(ids)
	return ids
}

// Overlapping returns a snapshot of the entities of a kind whose boxes
// currently intersect id's box
func (w *World) Overlapping(id EntityID, kind Kind) []EntityID {
	candidates := w.Candidates(id, kind)
	ids := candidates[:0]
	for _, other := range candidates {
		if w.Overlaps(id, other) {
			ids = append(ids, other)
		}
	}
	return ids
}

// GetPlayerBody returns the player's body
func (w *World) GetPlayerBody() Body {
	return w.Body[w.PlayerID]
}

func sortIDs(ids []EntityID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
