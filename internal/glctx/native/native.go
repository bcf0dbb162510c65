// Package native implements glctx.Context on top of the go-gl bindings.
package native

import (
	"github.com/cockroachdb/errors"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Context forwards to the GL context current on the calling thread. The
// caller must keep the OS thread locked for its whole lifetime.
type Context struct{}

// New loads the GL function pointers. A context must already be current.
func New() (*Context, error) {
	if err := gl.Init(); err != nil {
		return nil, errors.Wrap(err, "load GL functions")
	}
	return &Context{}, nil
}

func (*Context) GenTexture() uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	return id
}

func (*Context) DeleteTexture(id uint32) {
	gl.DeleteTextures(1, &id)
}

func (*Context) BindTexture(target, id uint32) {
	gl.BindTexture(target, id)
}

func (*Context) TexParameteri(target, pname uint32, param int32) {
	gl.TexParameteri(target, pname, param)
}

func (*Context) TexParameterf(target, pname uint32, param float32) {
	gl.TexParameterf(target, pname, param)
}

func (*Context) TexImage2D(target uint32, level, internalFormat, width, height int32, format, xtype uint32) {
	gl.TexImage2D(target, level, internalFormat, width, height, 0, format, xtype, nil)
}

func (*Context) GetError() uint32 {
	return gl.GetError()
}

// MaxAnisotropy queries the driver's anisotropic filtering ceiling. It
// returns 0 when the extension is missing.
func (*Context) MaxAnisotropy() float32 {
	var maxAnisotropy float32
	gl.GetFloatv(gl.MAX_TEXTURE_MAX_ANISOTROPY, &maxAnisotropy)
	return maxAnisotropy
}

// Version returns the GL_VERSION string.
func (*Context) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}
