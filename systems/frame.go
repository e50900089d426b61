package systems

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/pixel-shooter/core"
	"github.com/automoto/pixel-shooter/input"
)

// Render layers, drawn in order.
const (
	LayerArena ecs.LayerID = iota
	LayerActors
	LayerHUD
)

// Controller is the frontend's view of the game loop.
type Controller interface {
	Submit(cmd core.Command) bool
	Snapshot() *core.Snapshot
	Input() *input.Holder
}

// FrameData is the per-scene singleton the desktop systems share. The
// snapshot is refreshed once per ebiten frame, so every renderer in that
// frame sees the same tick.
type FrameData struct {
	Controller Controller
	Snapshot   *core.Snapshot

	// Input buffers: current becomes previous each frame
	Current  [ActionCount]bool
	Previous [ActionCount]bool

	healthTween  *gween.Tween
	shownHealth  float32
	targetHealth float32
	healthPrimed bool
}

var Frame = donburi.NewComponentType[FrameData]()

// NewFrame creates the frame singleton in w.
func NewFrame(w donburi.World, c Controller) *donburi.Entry {
	entry := w.Entry(w.Create(Frame))
	Frame.SetValue(entry, FrameData{
		Controller: c,
		Snapshot:   c.Snapshot(),
	})
	return entry
}

func frameOf(e *ecs.ECS) *FrameData {
	entry, ok := Frame.First(e.World)
	if !ok {
		return nil
	}
	return Frame.Get(entry)
}

// UpdateFrame pulls the latest published snapshot. Must run first.
func UpdateFrame(e *ecs.ECS) {
	f := frameOf(e)
	if f == nil {
		return
	}
	f.Snapshot = f.Controller.Snapshot()
}

func (f *FrameData) justPressed(a ActionID) bool {
	return f.Current[a] && !f.Previous[a]
}
