package ports

import (
	"io"

	"heartscope/domain/report"
)

// DocumentRenderer turns an assembled report document into a displayed
// artifact. The core never depends on a renderer's internals, only on
// deterministic output for identical documents.
type DocumentRenderer interface {
	Render(w io.Writer, doc report.Document) error
}
