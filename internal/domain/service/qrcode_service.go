package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateOutfitQR generates a QR code PNG for sharing an outfit
	GenerateOutfitQR(outfitID uuid.UUID) ([]byte, error)

	// ParseOutfitQR parses QR code data and returns the outfit ID
	ParseOutfitQR(qrData string) (uuid.UUID, error)
}
