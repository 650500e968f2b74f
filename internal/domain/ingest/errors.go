package ingest

import "errors"

var (
	ErrNoFile            = errors.New("no file uploaded")
	ErrUnsupportedFormat = errors.New("invalid file format, upload a CSV or Excel file")
	ErrEmptyFile         = errors.New("uploaded file has no data rows")
)
