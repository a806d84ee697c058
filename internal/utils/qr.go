package utils

import (
	"encoding/base64"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// GenerateOrderQRBase64 encode la référence de commande dans un QR PNG
// en base64, prêt à être embarqué dans un <img src="data:...">
func GenerateOrderQRBase64(orderID string) (string, error) {
	payload := fmt.Sprintf("dukani:order:%s", orderID)
	png, err := qrcode.Encode(payload, qrcode.Medium, 256)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(png), nil
}
