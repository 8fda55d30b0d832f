package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for outfit share QR generation and parsing.
type QRCodeService interface {
	// GenerateOutfitQR generates a QR code PNG that links back to an outfit card.
	GenerateOutfitQR(outfitID uuid.UUID) ([]byte, error)

	// ParseOutfitQR parses QR code data and returns the outfit card ID.
	ParseOutfitQR(qrData string) (uuid.UUID, error)
}
