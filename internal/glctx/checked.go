package glctx

import (
	"log/slog"

	"gvr-gl/internal/config"
	"gvr-gl/internal/logging"
)

// WithErrorLog wraps ctx so that every call is followed by a glGetError
// drain. Failures are logged and execution continues; nothing is returned to
// the caller. When error checks are disabled in config, ctx is returned as is.
func WithErrorLog(ctx Context, log *slog.Logger) Context {
	if !config.GetGLErrorChecks() {
		return ctx
	}
	if log == nil {
		log = logging.Logger()
	}
	if c, ok := ctx.(*errorLogContext); ok {
		return &errorLogContext{ctx: c.ctx, log: log}
	}
	return &errorLogContext{ctx: ctx, log: log}
}

type errorLogContext struct {
	ctx Context
	log *slog.Logger
}

func (c *errorLogContext) check(call string) {
	if err := DrainErrors(c.ctx); err != nil {
		c.log.Error("GL call failed", "call", call, "err", err)
	}
}

func (c *errorLogContext) GenTexture() uint32 {
	id := c.ctx.GenTexture()
	c.check("glGenTextures")
	return id
}

func (c *errorLogContext) DeleteTexture(id uint32) {
	c.ctx.DeleteTexture(id)
	c.check("glDeleteTextures")
}

func (c *errorLogContext) BindTexture(target, id uint32) {
	c.ctx.BindTexture(target, id)
	c.check("glBindTexture")
}

func (c *errorLogContext) TexParameteri(target, pname uint32, param int32) {
	c.ctx.TexParameteri(target, pname, param)
	c.check("glTexParameteri")
}

func (c *errorLogContext) TexParameterf(target, pname uint32, param float32) {
	c.ctx.TexParameterf(target, pname, param)
	c.check("glTexParameterf")
}

func (c *errorLogContext) TexImage2D(target uint32, level, internalFormat, width, height int32, format, xtype uint32) {
	c.ctx.TexImage2D(target, level, internalFormat, width, height, format, xtype)
	c.check("glTexImage2D")
}

func (c *errorLogContext) GetError() uint32 {
	return c.ctx.GetError()
}
