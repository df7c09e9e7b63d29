package entities

import (
	"time"

	"github.com/google/uuid"
)

// KYCDocumentStatus represents the review state of an uploaded KYC document
type KYCDocumentStatus string

const (
	KYCDocumentPending  KYCDocumentStatus = "pending"
	KYCDocumentApproved KYCDocumentStatus = "approved"
	KYCDocumentRejected KYCDocumentStatus = "rejected"
)

// KYCDocument holds the metadata of a client KYC upload. The document
// bytes live in external file storage; only metadata is tracked here.
type KYCDocument struct {
	ID          uuid.UUID         `json:"id"`
	ClientID    uuid.UUID         `json:"clientId"`
	FileName    string            `json:"fileName"`
	ContentType string            `json:"contentType"`
	SizeBytes   int64             `json:"sizeBytes"`
	Status      KYCDocumentStatus `json:"status"`
	UploadedAt  time.Time         `json:"uploadedAt"`
}
