package dataset

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVehicleTypeLabels(t *testing.T) {
	assert.Equal(t,
		[]string{"Supperminicar", "Smallfamiliycar", "Mediumfamilycar", "Executivecar", "Sports"},
		VehicleTypeLabels(),
	)
	assert.Len(t, VehicleTypes(), 5)
}

func TestParseVehicleType(t *testing.T) {
	for _, vehicleType := range VehicleTypes() {
		parsed, err := ParseVehicleType(vehicleType.String())
		require.NoError(t, err)
		assert.Equal(t, vehicleType, parsed)
	}

	_, err := ParseVehicleType("Minivan")
	assert.Error(t, err)
}

func TestVehicleTypeProfiles(t *testing.T) {
	tests := []struct {
		vehicleType VehicleType
		popularity  float64
		basePrice   float64
	}{
		{Superminicar, 0.8, 15000},
		{SmallFamilyCar, 1.2, 20000},
		{MediumFamilyCar, 1.5, 30000},
		{ExecutiveCar, 1.1, 45000},
		{Sports, 0.7, 60000},
	}

	for _, tt := range tests {
		t.Run(tt.vehicleType.String(), func(t *testing.T) {
			assert.Equal(t, tt.popularity, tt.vehicleType.Popularity())
			assert.Equal(t, tt.basePrice, tt.vehicleType.BasePrice())
		})
	}
}

func TestVehicleTypeJSON(t *testing.T) {
	encoded, err := json.Marshal(struct {
		Type VehicleType `json:"type"`
	}{Type: ExecutiveCar})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"Executivecar"}`, string(encoded))

	var decoded struct {
		Type VehicleType `json:"type"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"type":"Sports"}`), &decoded))
	assert.Equal(t, Sports, decoded.Type)

	assert.False(t, VehicleType(7).Valid())
	assert.Equal(t, "VehicleType(7)", VehicleType(7).String())
}
