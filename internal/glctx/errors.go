package glctx

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrorCode is a value returned by glGetError.
type ErrorCode uint32

const (
	NoError                     ErrorCode = 0
	InvalidEnum                 ErrorCode = 0x0500
	InvalidValue                ErrorCode = 0x0501
	InvalidOperation            ErrorCode = 0x0502
	StackOverflow               ErrorCode = 0x0503
	StackUnderflow              ErrorCode = 0x0504
	OutOfMemory                 ErrorCode = 0x0505
	InvalidFramebufferOperation ErrorCode = 0x0506
)

func (c ErrorCode) String() string {
	switch c {
	case NoError:
		return "GL_NO_ERROR"
	case InvalidEnum:
		return "GL_INVALID_ENUM"
	case InvalidValue:
		return "GL_INVALID_VALUE"
	case InvalidOperation:
		return "GL_INVALID_OPERATION"
	case StackOverflow:
		return "GL_STACK_OVERFLOW"
	case StackUnderflow:
		return "GL_STACK_UNDERFLOW"
	case OutOfMemory:
		return "GL_OUT_OF_MEMORY"
	case InvalidFramebufferOperation:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	}
	return fmt.Sprintf("GL_ERROR_0x%04X", uint32(c))
}

// ErrGL marks every error produced from a glGetError code.
var ErrGL = errors.New("gl error")

// A lost context can report errors forever, so draining stops here.
const maxErrorDrain = 16

// DrainErrors reads glGetError until the queue is empty and folds the codes
// into one error. It returns nil when no error was pending.
func DrainErrors(ctx Context) error {
	var combined error
	for i := 0; i < maxErrorDrain; i++ {
		code := ErrorCode(ctx.GetError())
		if code == NoError {
			break
		}
		err := errors.Mark(errors.Newf("%s (0x%04X)", errors.Safe(code.String()), uint32(code)), ErrGL)
		combined = errors.CombineErrors(combined, err)
	}
	return combined
}
