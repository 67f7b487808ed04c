package parse

import (
	"github.com/tliron/commonlog"
)

const traceLogName = "combinate.trace"

// Trace wraps p so that every invocation is logged at debug level under
// name. The returned parser behaves exactly like p.
func Trace[T any](name string, p Parser[T]) Parser[T] {
	return New(func(c Cursor) Result[T] {
		log := commonlog.GetLogger(traceLogName)
		if !log.AllowLevel(commonlog.Debug) {
			return p.Parse(c)
		}
		log.Debugf("enter %s at %s", name, c.Position())
		r := p.Parse(c)
		if r.ok {
			log.Debugf("match %s at %s, continuing at %s", name, c.Position(), r.rest.Position())
		} else {
			log.Debugf("fail %s at %s: %s", name, c.Position(), r.Error())
		}
		return r
	})
}
