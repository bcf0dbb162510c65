package glctx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	"gvr-gl/internal/config"
)

// fakeContext records call names and serves queued error codes.
type fakeContext struct {
	calls  []string
	errors []uint32
}

func (f *fakeContext) GenTexture() uint32 {
	f.calls = append(f.calls, "gen")
	return 3
}
func (f *fakeContext) DeleteTexture(uint32)                  { f.calls = append(f.calls, "delete") }
func (f *fakeContext) BindTexture(uint32, uint32)            { f.calls = append(f.calls, "bind") }
func (f *fakeContext) TexParameteri(uint32, uint32, int32)   { f.calls = append(f.calls, "parami") }
func (f *fakeContext) TexParameterf(uint32, uint32, float32) { f.calls = append(f.calls, "paramf") }
func (f *fakeContext) TexImage2D(uint32, int32, int32, int32, int32, uint32, uint32) {
	f.calls = append(f.calls, "image")
}
func (f *fakeContext) GetError() uint32 {
	if len(f.errors) == 0 {
		return 0
	}
	code := f.errors[0]
	f.errors = f.errors[1:]
	return code
}

func TestDrainErrorsEmpty(t *testing.T) {
	require.NoError(t, DrainErrors(&fakeContext{}))
}

func TestDrainErrorsCollectsCodes(t *testing.T) {
	ctx := &fakeContext{errors: []uint32{uint32(InvalidEnum), uint32(OutOfMemory)}}
	err := DrainErrors(ctx)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrGL))
	require.Contains(t, err.Error(), "GL_INVALID_ENUM")
	require.Empty(t, ctx.errors)
}

func TestDrainErrorsStopsOnStuckContext(t *testing.T) {
	stuck := make([]uint32, 100)
	for i := range stuck {
		stuck[i] = uint32(InvalidOperation)
	}
	ctx := &fakeContext{errors: stuck}
	require.Error(t, DrainErrors(ctx))
	require.Len(t, ctx.errors, 100-maxErrorDrain)
}

func TestWithErrorLogLogsAndContinues(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	inner := &fakeContext{errors: []uint32{uint32(InvalidValue)}}
	ctx := WithErrorLog(inner, log)

	ctx.BindTexture(Texture2D, 3)
	ctx.TexParameteri(Texture2D, TextureWrapS, ClampToEdge)

	require.Equal(t, []string{"bind", "parami"}, inner.calls)
	require.Contains(t, buf.String(), "glBindTexture")
	require.Contains(t, buf.String(), "GL_INVALID_VALUE")
	require.NotContains(t, buf.String(), "glTexParameteri")
}

func TestWithErrorLogDisabled(t *testing.T) {
	config.SetGLErrorChecks(false)
	defer config.SetGLErrorChecks(true)

	inner := &fakeContext{}
	require.Same(t, inner, WithErrorLog(inner, nil))
}

func TestWithErrorLogDoesNotStack(t *testing.T) {
	inner := &fakeContext{}
	once := WithErrorLog(inner, nil)
	twice := WithErrorLog(once, nil)
	require.Same(t, Context(inner), twice.(*errorLogContext).ctx)
}

func TestErrorCodeString(t *testing.T) {
	require.Equal(t, "GL_OUT_OF_MEMORY", OutOfMemory.String())
	require.Equal(t, "GL_ERROR_0x0999", ErrorCode(0x999).String())
}
