// Package tabular reads CSV and Excel dataset files into the in-memory
// table model.
package tabular

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"time"

	"heartscope/domain/table"
	applog "heartscope/internal"
	"heartscope/internal/errors"
	"heartscope/ports"

	"github.com/xuri/excelize/v2"
)

// DataReader handles reading Excel and CSV files
type DataReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
	log      *applog.Logger
}

var _ ports.TableReader = (*DataReader)(nil)

// NewDataReader creates a new data reader that handles both Excel and CSV files
func NewDataReader(filePath string) *DataReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "csv"
	if ext == ".xlsx" || ext == ".xls" {
		fileType = "xlsx"
	}
	return &DataReader{
		filePath: filePath,
		fileType: fileType,
		log:      applog.DefaultLogger,
	}
}

// ReadTable reads the configured file into a Table. A missing file is
// reported with the DATASET_NOT_FOUND code so the report can render a
// notice instead of crashing.
func (r *DataReader) ReadTable() (table.Table, error) {
	r.log.Debug("[DataReader] Starting to read %s file: %s", r.fileType, r.filePath)

	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return table.Table{}, errors.DatasetNotFound(r.filePath)
	}

	switch r.fileType {
	case "csv":
		return r.readCSV()
	case "xlsx":
		return r.readExcel()
	default:
		return table.Table{}, errors.InvalidInput("unsupported file type: " + r.fileType)
	}
}

// readCSV reads CSV data into a Table
func (r *DataReader) readCSV() (table.Table, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return table.Table{}, errors.Wrap(err, "failed to open CSV file")
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // tolerate ragged rows, Table pads them

	readStart := time.Now()
	rows, err := reader.ReadAll()
	if err != nil {
		return table.Table{}, errors.Wrap(errors.DatasetMalformed(err.Error()), "failed to read CSV file")
	}
	r.log.Debug("[DataReader] CSV file read in %.2fms (%d rows)",
		float64(time.Since(readStart).Nanoseconds())/1e6, len(rows))

	return r.buildTable(rows)
}

// readExcel reads Sheet1 of an Excel workbook into a Table
func (r *DataReader) readExcel() (table.Table, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return table.Table{}, errors.Wrap(err, "failed to open Excel file")
	}
	defer f.Close()

	// Always use the first sheet
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return table.Table{}, errors.DatasetMalformed("Excel workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return table.Table{}, errors.Wrapf(err, "failed to read sheet %s", sheets[0])
	}
	r.log.Debug("[DataReader] Sheet %s read (%d rows)", sheets[0], len(rows))

	return r.buildTable(rows)
}

// buildTable converts raw string rows into a Table
func (r *DataReader) buildTable(rows [][]string) (table.Table, error) {
	if len(rows) < 2 {
		return table.Table{}, errors.DatasetMalformed("file must have at least a header row and one data row")
	}

	t := table.New(rows[0], rows[1:])
	r.log.Info("[DataReader] %s file processed (%d columns, %d rows)",
		strings.ToUpper(r.fileType), t.NumCols(), t.NumRows())
	return t, nil
}
