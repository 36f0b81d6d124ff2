// Package document models an uploaded artifact attached to a request.
// Documents are append-only from the workflow's perspective: they carry no
// state machine, only referential integrity to their request.
package document

import (
	"errors"
	"strings"

	"lockers/internal/pkg/errs"
)

// ErrDocumentIsNotConstructed is returned when a Document instance was not
// created through NewDocument or RestoreDocument.
var ErrDocumentIsNotConstructed = errors.New("Document must be created via NewDocument constructor")

// Document is an uploaded artifact belonging to exactly one request.
type Document struct {
	id        uint64
	requestID uint64
	docType   string

	// fileURL is the public reference the storage collaborator returned.
	fileURL string

	isConstructed bool
}

// NewDocument creates a Document referencing a stored artifact.
func NewDocument(requestID uint64, docType, fileURL string) (*Document, error) {
	d := &Document{isConstructed: true}

	if err := errors.Join(
		d.setRequestID(requestID),
		d.setDocType(docType),
		d.setFileURL(fileURL),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDocument reconstructs a Document from persistence.
func RestoreDocument(id, requestID uint64, docType, fileURL string) (*Document, error) {
	d, err := NewDocument(requestID, docType, fileURL)
	if err != nil {
		return nil, err
	}

	d.id = id
	return d, nil
}

// Validate ensures the Document instance was properly constructed.
func (d *Document) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDocumentIsNotConstructed
	}
	return nil
}

// AssignID records the store-generated identifier after first persistence.
func (d *Document) AssignID(id uint64) error {
	if d.id != 0 {
		return errs.NewValueIsInvalidError("document ID is already assigned")
	}
	if id == 0 {
		return errs.NewValueIsRequiredError("id")
	}
	d.id = id
	return nil
}

// ID returns the document's identifier, 0 if not yet persisted.
func (d *Document) ID() uint64 { return d.id }

// RequestID returns the identifier of the owning request.
func (d *Document) RequestID() uint64 { return d.requestID }

// DocType returns the document's type tag.
func (d *Document) DocType() string { return d.docType }

// FileURL returns the stored artifact reference.
func (d *Document) FileURL() string { return d.fileURL }

func (d *Document) setRequestID(requestID uint64) error {
	if requestID == 0 {
		return errs.NewValueIsRequiredError("requestID")
	}
	d.requestID = requestID
	return nil
}

func (d *Document) setDocType(docType string) error {
	if strings.TrimSpace(docType) == "" {
		return errs.NewValueIsRequiredError("docType")
	}
	d.docType = strings.TrimSpace(docType)
	return nil
}

func (d *Document) setFileURL(fileURL string) error {
	if strings.TrimSpace(fileURL) == "" {
		return errs.NewValueIsRequiredError("fileURL")
	}
	d.fileURL = fileURL
	return nil
}
