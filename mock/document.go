package mock

import (
	"context"

	"github.com/hkwon/pagesum"
)

var _ pagesum.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of pagesum.DocumentService.
type DocumentService struct {
	CreateDocumentFn func(ctx context.Context, doc *pagesum.Document) error
	FindDocumentsFn  func(ctx context.Context, filter pagesum.DocumentFilter) ([]*pagesum.Document, error)
}

func (s *DocumentService) CreateDocument(ctx context.Context, doc *pagesum.Document) error {
	return s.CreateDocumentFn(ctx, doc)
}

func (s *DocumentService) FindDocuments(ctx context.Context, filter pagesum.DocumentFilter) ([]*pagesum.Document, error) {
	return s.FindDocumentsFn(ctx, filter)
}
