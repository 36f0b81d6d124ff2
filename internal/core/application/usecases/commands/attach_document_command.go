package commands

import (
	"errors"

	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/pkg/errs"
	"lockers/internal/pkg/guard"
)

// MaxUploadSize is the largest accepted upload, matching the ingest limit of
// the HTTP layer.
const MaxUploadSize = 10 << 20

var (
	ErrAttachDocumentCommandIsNotConstructed = errors.New(
		"AttachDocumentCommand must be created via NewAttachDocumentCommand constructor",
	)
	ErrDocTypeIsRequired     = errors.New("document type is required")
	ErrFileContentIsRequired = errors.New("file content is required")
)

// AttachDocumentCommand represents a student uploading a supporting document
// (study enrollment proof, ID card scan) for their locker request.
type AttachDocumentCommand struct { //nolint:recvcheck //using for validation
	actor       kernel.Principal
	requestID   uint64
	docType     string
	content     []byte
	contentType string

	guard guard.ConstructorGuard
}

// NewAttachDocumentCommand creates a command to attach a document to a request.
// Rejects empty files and files over MaxUploadSize.
func NewAttachDocumentCommand(
	actor kernel.Principal, requestID uint64, docType string, content []byte, contentType string,
) (AttachDocumentCommand, error) {
	command := AttachDocumentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setActor(actor),
		command.setRequestID(requestID),
		command.setDocType(docType),
		command.setContent(content),
	); err != nil {
		return AttachDocumentCommand{}, err
	}

	command.contentType = contentType

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AttachDocumentCommand) Validate() error {
	return c.guard.Validate(ErrAttachDocumentCommandIsNotConstructed)
}

// Actor returns the authenticated principal issuing the command.
func (c AttachDocumentCommand) Actor() kernel.Principal {
	return c.actor
}

// RequestID returns the identifier of the request the document supports.
func (c AttachDocumentCommand) RequestID() uint64 {
	return c.requestID
}

// DocType returns the declared kind of document.
func (c AttachDocumentCommand) DocType() string {
	return c.docType
}

// Content returns the raw file bytes.
func (c AttachDocumentCommand) Content() []byte {
	return c.content
}

// ContentType returns the declared media type of the upload.
func (c AttachDocumentCommand) ContentType() string {
	return c.contentType
}

func (c *AttachDocumentCommand) setActor(actor kernel.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *AttachDocumentCommand) setRequestID(requestID uint64) error {
	if requestID == 0 {
		return ErrRequestIDIsRequired
	}

	c.requestID = requestID
	return nil
}

func (c *AttachDocumentCommand) setDocType(docType string) error {
	if docType == "" {
		return ErrDocTypeIsRequired
	}

	c.docType = docType
	return nil
}

func (c *AttachDocumentCommand) setContent(content []byte) error {
	if len(content) == 0 {
		return ErrFileContentIsRequired
	}
	if len(content) > MaxUploadSize {
		return errs.NewValueIsTooLargeError("file", int64(len(content)), MaxUploadSize)
	}

	c.content = content
	return nil
}
