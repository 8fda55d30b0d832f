package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRCodeService_GenerateOutfitQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	outfitID := uuid.New()
	png, err := svc.GenerateOutfitQR(outfitID)

	require.NoError(t, err)
	assert.NotEmpty(t, png)
	// PNG magic bytes
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, png[:4])
}

func TestQRCodeService_ParseOutfitQR(t *testing.T) {
	svc := NewQRCodeService(256, "H")
	outfitID := uuid.New()

	payload, err := json.Marshal(QRCodeData{OutfitID: outfitID.String(), Type: "outfit"})
	require.NoError(t, err)

	parsed, err := svc.ParseOutfitQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, outfitID, parsed)
}

func TestQRCodeService_ParseOutfitQR_Invalid(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	_, err := svc.ParseOutfitQR("not json")
	assert.Error(t, err)

	payload, _ := json.Marshal(QRCodeData{OutfitID: uuid.NewString(), Type: "coupon"})
	_, err = svc.ParseOutfitQR(string(payload))
	assert.ErrorContains(t, err, "invalid QR code type")

	payload, _ = json.Marshal(QRCodeData{OutfitID: "not-a-uuid", Type: "outfit"})
	_, err = svc.ParseOutfitQR(string(payload))
	assert.Error(t, err)
}
