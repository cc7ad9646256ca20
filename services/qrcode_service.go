// services/qrcode_service.go
package services

import (
	"fmt"
	"os"

	"github.com/skip2/go-qrcode"
)

// GenerateTeamQRCode creates a QR code PNG linking to a team's page,
// used on posters and invite handouts.
func GenerateTeamQRCode(teamID string, size int) ([]byte, error) {
	applicationURL := os.Getenv("APPLICATION_URL")
	if applicationURL == "" {
		applicationURL = "http://localhost:8080" // Default for local testing
	}

	png, err := qrcode.Encode(fmt.Sprintf("%s/teams/%s", applicationURL, teamID), qrcode.Medium, size)
	if err != nil {
		return nil, err
	}
	return png, nil
}
