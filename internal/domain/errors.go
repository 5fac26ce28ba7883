package domain

import "errors"

var (
	ErrNotFound            = errors.New("resource not found")
	ErrDocumentNotFound    = errors.New("document not found")
	ErrSnapshotNotFound    = errors.New("loan snapshot not found")
	ErrDispositionNotFound = errors.New("disposition not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrConflict            = errors.New("resource conflict")
	ErrExtractionMissing   = errors.New("document has no extraction data")
	ErrUnsupportedDocType  = errors.New("unsupported document type")
	ErrFileTooLarge        = errors.New("file exceeds maximum size")
	ErrInvalidFileType     = errors.New("invalid file type")
	ErrTokenExpired        = errors.New("token expired")
	ErrTokenInvalid        = errors.New("token invalid")
)
