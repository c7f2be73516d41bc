package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/kendall-kelly/essay-orders-api/utils"
	"go.uber.org/zap"
)

// documentKeyPrefix is where uploaded order documents live in the bucket
const documentKeyPrefix = "orders/documents/"

// UserDocumentPrefix is the folder holding the documents uploaded by userID
func UserDocumentPrefix(userID uint) string {
	return fmt.Sprintf("%s%d/", documentKeyPrefix, userID)
}

// OwnsDocument reports whether key was issued to userID by Upload
func OwnsDocument(userID uint, key string) bool {
	prefix := UserDocumentPrefix(userID)
	return path.Clean(key) == key && strings.HasPrefix(key, prefix) && len(key) > len(prefix)
}

// UploadedDocument is what a client sends back as a SupportingFile when placing an order
type UploadedDocument struct {
	FileURL      string `json:"fileUrl"`
	OriginalName string `json:"originalName"`
	DisplayName  string `json:"displayName"`
	ContentType  string `json:"contentType"`
	Size         int64  `json:"size"`
}

// DocumentService validates and stores order documents
type DocumentService struct {
	store  ObjectStore
	logger *zap.Logger
}

var documentServiceInstance *DocumentService

// NewDocumentService creates a document service writing to store
func NewDocumentService(store ObjectStore, logger *zap.Logger) *DocumentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DocumentService{store: store, logger: logger}
}

// InitDocumentService creates the document service instance used by the controllers
func InitDocumentService(store ObjectStore, logger *zap.Logger) *DocumentService {
	documentServiceInstance = NewDocumentService(store, logger)
	return documentServiceInstance
}

// GetDocumentService returns the initialized document service instance
func GetDocumentService() *DocumentService {
	return documentServiceInstance
}

// SetDocumentService sets the document service instance (primarily for testing)
func SetDocumentService(service *DocumentService) {
	documentServiceInstance = service
}

// Upload validates the file and stores it under a fresh key in the uploader's folder
func (s *DocumentService) Upload(ctx context.Context, userID uint, fileHeader *multipart.FileHeader) (*UploadedDocument, error) {
	if err := utils.ValidateDocumentFile(fileHeader); err != nil {
		return nil, err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			s.logger.Warn("Failed to close uploaded file", zap.Error(closeErr))
		}
	}()

	name := filepath.Base(fileHeader.Filename)
	ext := strings.ToLower(filepath.Ext(name))
	key := UserDocumentPrefix(userID) + uuid.NewString() + ext
	contentType := utils.ContentTypeFor(name)

	if err := s.store.PutObject(ctx, key, contentType, file, fileHeader.Size); err != nil {
		return nil, fmt.Errorf("failed to store document: %w", err)
	}

	s.logger.Info("Document uploaded",
		zap.Uint("user_id", userID),
		zap.String("key", key),
		zap.Int64("size", fileHeader.Size),
	)
	return &UploadedDocument{
		FileURL:      key,
		OriginalName: name,
		DisplayName:  utils.SanitizeFileName(name),
		ContentType:  contentType,
		Size:         fileHeader.Size,
	}, nil
}

// DownloadURL returns a presigned link for a stored document
func (s *DocumentService) DownloadURL(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", nil
	}
	url, err := s.store.PresignGet(ctx, key)
	if err != nil {
		return "", fmt.Errorf("failed to generate document URL: %w", err)
	}
	return url, nil
}

// Delete removes a stored document
func (s *DocumentService) Delete(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	if err := s.store.DeleteObject(ctx, key); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	s.logger.Info("Document deleted", zap.String("key", key))
	return nil
}
