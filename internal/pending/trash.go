package pending

import (
	"sync"

	"gvr-gl/internal/glctx"
	"gvr-gl/internal/logging"
	"gvr-gl/internal/profiling"
)

// Trash collects texture handles released off the render thread. GL calls
// are only legal on the thread that owns the context, so the handles are
// deleted later by Empty at a checkpoint on that thread.
type Trash struct {
	sync.Mutex
	textures []uint32
}

// Discard schedules id for deletion. Safe to call from any goroutine.
func (t *Trash) Discard(id uint32) {
	if id == 0 {
		return
	}
	t.Lock()
	t.textures = append(t.textures, id)
	t.Unlock()
}

// Len returns the number of handles awaiting deletion.
func (t *Trash) Len() int {
	t.Lock()
	defer t.Unlock()
	return len(t.textures)
}

// Empty deletes every discarded handle. Call it on the render thread.
func (t *Trash) Empty(ctx glctx.Context) int {
	t.Lock()
	ids := t.textures
	t.textures = nil
	t.Unlock()

	for _, id := range ids {
		ctx.DeleteTexture(id)
		profiling.Count("texture.delete")
	}
	if len(ids) > 0 {
		logging.Logger().Debug("trash emptied", "textures", len(ids))
	}
	return len(ids)
}
