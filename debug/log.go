package debug

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/mother/encode"
	"github.com/signadot/mother/ir"
)

// Logf writes to stderr. *ir.Node arguments are rendered as compact JSON.
func Logf(msg string, args ...any) {
	logTo(os.Stderr, msg, args...)
}

func logTo(w io.Writer, msg string, args ...any) {
	for i := range args {
		x, ok := args[i].(*ir.Node)
		if !ok {
			continue
		}
		s, err := encode.String(x, encode.EncodeWire(true))
		if err != nil {
			args[i] = fmt.Sprintf("[raw *ir.Node] %+v", *x)
			continue
		}
		args[i] = s
	}
	fmt.Fprintf(w, msg, args...)
}
