package ports

import (
	"heartscope/domain/table"
)

// TableReader loads a tabular dataset from some backing source.
// Implementations return an error carrying the DATASET_NOT_FOUND code
// when the source does not exist, so callers can recover in-page
// instead of failing the process.
type TableReader interface {
	ReadTable() (table.Table, error)
}
