package main

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"

	"gvr-gl/internal/config"
	"gvr-gl/internal/glctx"
	"gvr-gl/internal/glctx/native"
	"gvr-gl/internal/logging"
	"gvr-gl/internal/pending"
	"gvr-gl/internal/profiling"
	"gvr-gl/internal/texture"
)

const checkerSize = 256

func run() error {
	if err := glfw.Init(); err != nil {
		return errors.Wrap(err, "init glfw")
	}
	defer glfw.Terminate()

	window, err := setupWindow()
	if err != nil {
		return err
	}
	defer window.Destroy()

	nativeCtx, err := native.New()
	if err != nil {
		return err
	}
	if maxAniso := nativeCtx.MaxAnisotropy(); maxAniso > 0 {
		config.SetMaxAnisotropy(maxAniso)
	}
	logging.Logger().Info("GL context ready",
		"version", nativeCtx.Version(), "maxAnisotropy", config.GetMaxAnisotropy())

	ctx := glctx.WithErrorLog(nativeCtx, logging.Logger())

	// Built before the GPU-ready phase; nothing below touches GL until RunAll.
	plain := texture.New(texture.Target(glctx.Texture2D))
	cube := texture.New(texture.Target(glctx.TextureCubeMap))
	checker := texture.NewWithParams(texture.Target(glctx.Texture2D), texture.Params{
		texture.ParamMinFilter:      glctx.Linear,
		texture.ParamMagFilter:      glctx.Nearest,
		texture.ParamAnisotropy:     int32(*anisotropy),
		texture.ParamWrapS:          glctx.Repeat,
		texture.ParamWrapT:          glctx.Repeat,
		texture.ParamInternalFormat: glctx.RGBA8,
		texture.ParamWidth:          checkerSize,
		texture.ParamHeight:         checkerSize,
		texture.ParamFormat:         glctx.RGBA,
		texture.ParamType:           glctx.UnsignedByte,
	})
	samplerOnly := texture.NewWithParams(texture.Target(glctx.Texture2D), texture.Params{
		texture.ParamMinFilter: glctx.Linear,
		texture.ParamMagFilter: glctx.Linear,
		texture.ParamWrapS:     glctx.ClampToEdge,
		texture.ParamWrapT:     glctx.ClampToEdge,
		texture.ParamWidth:     -1,
	})

	// A handle created outside the wrapper, e.g. by an image decoder
	var external uint32
	gl.GenTextures(1, &external)
	adopted := texture.Adopt(texture.Target(glctx.Texture2D), external)

	defer plain.Release(ctx)
	defer cube.Release(ctx)
	defer checker.Release(ctx)
	defer adopted.Release(ctx)
	defer samplerOnly.Release(ctx)

	queue := pending.NewQueue()
	for _, tex := range []*texture.Texture{plain, cube, checker, samplerOnly, adopted} {
		queue.Add(tex)
	}
	if *dump {
		printQueue(queue)
	}

	profiling.ResetFrame()
	ran := queue.RunAll(ctx)
	logging.Logger().Info("pending sweep done", "ran", ran, "took", profiling.TopN(1))

	upload(checker.ID(ctx), checkerboard(checkerSize, 8))

	q, err := newQuad()
	if err != nil {
		return err
	}
	defer q.dispose()

	gl.Viewport(0, 0, windowWidth, windowHeight)
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	q.draw(checker.ID(ctx))

	var pixel [4]uint8
	gl.ReadPixels(windowWidth/2, windowHeight/2, 1, 1, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(&pixel[0]))
	logging.Logger().Info("frame drawn", "center", pixel)

	window.SwapBuffers()
	glfw.PollEvents()

	// Hand the sampler-only texture to a worker that owns its teardown; the
	// handle comes back through the trash and is deleted here.
	var trash pending.Trash
	done := make(chan struct{})
	handoff := make(chan *texture.Texture, 1)
	go func() {
		defer close(done)
		(<-handoff).ReleaseTo(&trash)
	}()
	handoff <- samplerOnly
	<-done
	logging.Logger().Info("trash emptied", "textures", trash.Empty(ctx))

	if *dump {
		queue.Add(plain)
		queue.Add(cube)
		queue.Add(checker)
		queue.Add(samplerOnly)
		queue.Add(adopted)
		printQueue(queue)
	}
	return nil
}

func printQueue(queue *pending.Queue) {
	w := jwriter.NewWriter()
	queue.PrintDetailedMap(&w)
	os.Stdout.Write(append(w.Bytes(), '\n'))
}
