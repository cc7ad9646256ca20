// file: services/qrcode_service_test.go
package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus-teams/services"
)

func TestGenerateTeamQRCode(t *testing.T) {
	png, err := services.GenerateTeamQRCode("team-123", 256)
	require.NoError(t, err)
	assert.NotEmpty(t, png)
	// PNG signature
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestGenerateTeamQRCode_InvalidSize(t *testing.T) {
	// Zero size is still rendered by the library at a minimum size.
	png, err := services.GenerateTeamQRCode("team-123", 0)
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
