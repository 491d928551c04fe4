package script

import (
	"errors"

	"github.com/ezrec/m6502/translate"
)

var f = translate.From

// STEP_FUNCTION is the name of the function a script must define.
const STEP_FUNCTION = "step"

var (
	ErrScript      = errors.New(f("script"))
	ErrScriptStep  = errors.New(f("script does not define %v()", STEP_FUNCTION))
	ErrScriptValue = errors.New(f("script value out of range"))
)

// ErrNoAttr is an unknown or read-only cpu attribute.
type ErrNoAttr string

func (err ErrNoAttr) Error() string {
	return f("cpu has no writable attribute %v", string(err))
}
