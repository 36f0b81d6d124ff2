package commands

import (
	"context"

	"lockers/internal/core/domain/model/document"
	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/core/domain/services"
	"lockers/internal/core/ports"
	"lockers/internal/pkg/errs"
)

// documentStorageCategory prefixes object keys for supporting documents.
const documentStorageCategory = "documents"

// AttachDocumentCommandHandler stores the uploaded file in object storage and
// records its reference against the owning request. The store write happens
// before the transaction so a failed insert never leaves a dangling row; an
// orphaned object is tolerated.
type AttachDocumentCommandHandler struct {
	uowFactory DocumentUoWFactory
	storage    ports.ObjectStorage
}

// NewAttachDocumentCommandHandler creates a handler for document uploads.
func NewAttachDocumentCommandHandler(
	uowFactory DocumentUoWFactory, storage ports.ObjectStorage,
) AttachDocumentCommandHandler {
	return AttachDocumentCommandHandler{
		uowFactory: uowFactory,
		storage:    storage,
	}
}

// Handle processes the document attachment command.
// Only the request's owner may attach documents to it. Returns the
// store-assigned document identifier.
func (h AttachDocumentCommandHandler) Handle(ctx context.Context, cmd AttachDocumentCommand) (uint64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	actor, err := services.NewAccessPolicy().Authorize(cmd.Actor(), kernel.Student, kernel.Coordinator)
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	requestEntity, err := uow.RequestRepository().Get(ctx, cmd.RequestID())
	if err != nil {
		return 0, err
	}

	if !requestEntity.IsOwnedBy(actor.UserID()) {
		return 0, errs.NewForbiddenError("attach document to another user's request")
	}

	fileURL, err := h.storage.Put(ctx, documentStorageCategory, cmd.Content(), cmd.ContentType())
	if err != nil {
		return 0, err
	}

	documentEntity, err := document.NewDocument(cmd.RequestID(), cmd.DocType(), fileURL)
	if err != nil {
		return 0, err
	}

	if err = uow.DocumentRepository().Add(ctx, documentEntity); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return documentEntity.ID(), nil
}
