// Package texture owns GL texture handles whose creation is deferred until
// a GL context is known to be current.
//
// A Texture is built off the render thread in one of three modes and realized
// later: either on first call to ID, or by a pending.Queue sweep during the
// GPU-ready phase of a frame. Realization generates the handle and applies
// sampler state exactly once.
package texture

import (
	"fmt"

	"github.com/launchdarkly/go-jsonstream/v3/jwriter"

	"gvr-gl/internal/config"
	"gvr-gl/internal/glctx"
	"gvr-gl/internal/logging"
	"gvr-gl/internal/profiling"
)

// ParamCount is the length of a texture parameter array.
const ParamCount = 10

// Indices into Params.
const (
	ParamMinFilter = iota
	ParamMagFilter
	ParamAnisotropy
	ParamWrapS
	ParamWrapT
	ParamInternalFormat
	ParamWidth
	ParamHeight
	ParamFormat
	ParamType
)

// Params is the fixed initialization array accepted by NewWithParams.
// Storage is only allocated when internal format, width, height, format and
// type are all positive; otherwise only sampler state is applied. That lets
// callers create sampler-only textures whose image comes from elsewhere,
// such as an imported EGL image.
type Params [ParamCount]int32

// HasStorage reports whether the storage fields describe an allocatable image.
func (p Params) HasStorage() bool {
	return p[ParamInternalFormat] > 0 && p[ParamWidth] > 0 && p[ParamHeight] > 0 &&
		p[ParamFormat] > 0 && p[ParamType] > 0
}

// Target is the binding point of a texture, e.g. glctx.Texture2D.
type Target uint32

func (t Target) String() string {
	return glctx.TargetName(uint32(t))
}

type pendingTask uint8

const (
	taskNone pendingTask = iota
	taskInitDefault
	taskInitWithParams
)

func (p pendingTask) String() string {
	switch p {
	case taskInitDefault:
		return "InitDefault"
	case taskInitWithParams:
		return "InitWithParams"
	}
	return "None"
}

// noCopy lets go vet's copylocks check flag accidental copies of a Texture.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Texture exclusively owns one GL texture handle. It must not be copied and
// is not safe for concurrent use; confine it to the render thread.
type Texture struct {
	noCopy noCopy

	target    Target
	id        uint32
	pending   pendingTask
	params    Params
	hasParams bool
	released  bool
}

// New returns a texture that is realized with clamp-to-edge wrapping and
// linear filtering. No GL calls are made until it is realized.
func New(target Target) *Texture {
	return &Texture{target: target, pending: taskInitDefault}
}

// Adopt takes ownership of an existing handle. Nothing is run at realization,
// but Release still deletes id.
func Adopt(target Target, id uint32) *Texture {
	return &Texture{target: target, id: id}
}

// NewWithParams returns a texture realized from params, which is copied.
func NewWithParams(target Target, params Params) *Texture {
	return &Texture{target: target, pending: taskInitWithParams, params: params, hasParams: true}
}

// ID realizes the texture if needed and returns its handle.
func (t *Texture) ID(ctx glctx.Context) uint32 {
	t.RunPendingGL(ctx)
	return t.id
}

// Target returns the binding point. It never realizes the texture.
func (t *Texture) Target() Target {
	return t.target
}

// Pending reports whether realization has yet to run.
func (t *Texture) Pending() bool {
	return t.pending != taskNone
}

// Realized reports whether the texture currently holds a handle.
func (t *Texture) Realized() bool {
	return t.id != 0
}

// Params returns the initialization array, if the texture was built with one.
func (t *Texture) Params() (Params, bool) {
	return t.params, t.hasParams
}

// RunPendingGL performs the deferred initialization. Calls after the first
// are no-ops.
func (t *Texture) RunPendingGL(ctx glctx.Context) {
	if t.pending == taskNone {
		return
	}
	defer profiling.Track("texture.realize")()

	switch t.pending {
	case taskInitDefault:
		t.initDefault(ctx)
	case taskInitWithParams:
		t.initWithParams(ctx)
	}
	profiling.Count("texture.gen")
	logging.Logger().Debug("texture realized",
		"id", t.id, "target", t.target, "task", t.pending)

	t.pending = taskNone
}

func (t *Texture) initDefault(ctx glctx.Context) {
	target := uint32(t.target)

	t.id = ctx.GenTexture()
	ctx.BindTexture(target, t.id)
	ctx.TexParameteri(target, glctx.TextureWrapS, glctx.ClampToEdge)
	ctx.TexParameteri(target, glctx.TextureWrapT, glctx.ClampToEdge)
	ctx.TexParameteri(target, glctx.TextureWrapR, glctx.ClampToEdge)
	ctx.TexParameteri(target, glctx.TextureMinFilter, glctx.Linear)
	ctx.TexParameteri(target, glctx.TextureMagFilter, glctx.Linear)
	ctx.BindTexture(target, 0)
}

func (t *Texture) initWithParams(ctx glctx.Context) {
	target := uint32(t.target)
	p := t.params

	t.id = ctx.GenTexture()
	ctx.BindTexture(target, t.id)

	// 1 is the GL default, so only larger values are worth a call
	if p[ParamAnisotropy] > 1 {
		level := float32(p[ParamAnisotropy])
		if ceiling := config.GetMaxAnisotropy(); ceiling > 0 {
			level = min(level, ceiling)
		}
		ctx.TexParameterf(target, glctx.TextureMaxAnisotropy, level)
	}

	ctx.TexParameteri(target, glctx.TextureWrapS, p[ParamWrapS])
	ctx.TexParameteri(target, glctx.TextureWrapT, p[ParamWrapT])
	ctx.TexParameteri(target, glctx.TextureMinFilter, p[ParamMinFilter])
	ctx.TexParameteri(target, glctx.TextureMagFilter, p[ParamMagFilter])

	if p.HasStorage() {
		ctx.TexImage2D(glctx.Texture2D, 0, p[ParamInternalFormat], p[ParamWidth], p[ParamHeight],
			uint32(p[ParamFormat]), uint32(p[ParamType]))
	} else {
		logging.Logger().Debug("texture storage skipped",
			"id", t.id, "width", p[ParamWidth], "height", p[ParamHeight])
	}

	ctx.BindTexture(target, 0)
}

// Release deletes the handle if one is held. A texture that was never
// realized makes no GL call, and its pending initialization is dropped.
// Release is safe to call more than once, so it can be deferred on every
// exit path of the owning scope.
func (t *Texture) Release(ctx glctx.Context) {
	if t.released {
		return
	}
	t.released = true
	t.pending = taskNone

	if t.id == 0 {
		return
	}
	ctx.DeleteTexture(t.id)
	profiling.Count("texture.delete")
	logging.Logger().Debug("texture released", "id", t.id, "target", t.target)
	t.id = 0
}

// Discarder defers handle deletion to the render thread.
type Discarder interface {
	Discard(id uint32)
}

// ReleaseTo is Release for owners that are not on the render thread: the
// handle is handed to d instead of being deleted here.
func (t *Texture) ReleaseTo(d Discarder) {
	if t.released {
		return
	}
	t.released = true
	t.pending = taskNone

	if t.id == 0 {
		return
	}
	d.Discard(t.id)
	t.id = 0
}

// Released reports whether Release or ReleaseTo has been called.
func (t *Texture) Released() bool {
	return t.released
}

func (t *Texture) String() string {
	return fmt.Sprintf("texture(%s id=%d pending=%s)", t.target, t.id, t.pending)
}

// WriteJSON writes the texture state into an open JSON object.
func (t *Texture) WriteJSON(json *jwriter.ObjectState) {
	json.Name("Target").String(t.target.String())
	json.Name("ID").Int(int(t.id))
	json.Name("Pending").String(t.pending.String())
	json.Name("Released").Bool(t.released)

	if t.hasParams {
		arr := json.Name("Params").Array()
		for _, v := range t.params {
			arr.Int(int(v))
		}
		arr.End()
	}
}
