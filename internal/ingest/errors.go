package ingest

import "errors"

var (
	ErrSheetNotFound = errors.New("sheet not found")
	ErrBadWorkbook   = errors.New("invalid workbook")
)
