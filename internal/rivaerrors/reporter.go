package rivaerrors

import (
	"fmt"
	"io"
)

// Reporter renders scan failures for the front end.
type Reporter interface {
	Report(err error)
}

type writerReporter struct {
	w io.Writer
}

func NewReporter(w io.Writer) *writerReporter {
	return &writerReporter{w: w}
}

// Report implements Reporter.
func (r *writerReporter) Report(err error) {
	fmt.Fprintf(r.w, "ERROR %v\n", err)
}

var _ Reporter = (*writerReporter)(nil)
