package qrcode

import (
	"encoding/json"
	"fmt"

	"stylebank/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	OutfitID string `json:"outfit_id"`
	Type     string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateOutfitQR generates a QR code PNG that links back to an outfit card
func (s *qrcodeService) GenerateOutfitQR(outfitID uuid.UUID) ([]byte, error) {
	data := QRCodeData{
		OutfitID: outfitID.String(),
		Type:     "outfit",
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseOutfitQR parses QR code data and returns the outfit card ID
func (s *qrcodeService) ParseOutfitQR(qrData string) (uuid.UUID, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != "outfit" {
		return uuid.Nil, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	outfitID, err := uuid.Parse(data.OutfitID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse outfit ID: %w", err)
	}

	return outfitID, nil
}
