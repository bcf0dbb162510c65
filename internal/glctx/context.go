// Package glctx defines the slice of the GL API the resource wrappers use.
// The context is passed explicitly to every operation that touches GL, which
// keeps callers honest about which thread owns it and lets tests swap in a mock.
package glctx

// Context is a current GL context. Implementations are not safe for
// concurrent use; all calls must come from the thread the context is current on.
type Context interface {
	GenTexture() uint32
	DeleteTexture(id uint32)
	BindTexture(target, id uint32)
	TexParameteri(target, pname uint32, param int32)
	TexParameterf(target, pname uint32, param float32)
	// TexImage2D allocates level storage without uploading pixel data.
	TexImage2D(target uint32, level, internalFormat, width, height int32, format, xtype uint32)
	GetError() uint32
}
