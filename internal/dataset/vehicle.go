package dataset

import "fmt"

// VehicleType is one of the five market segments in the dataset.
type VehicleType int

// The declaration order is the per-month generation order.
const (
	Superminicar VehicleType = iota
	SmallFamilyCar
	MediumFamilyCar
	ExecutiveCar
	Sports
)

type vehicleProfile struct {
	label      string
	popularity float64
	basePrice  float64
}

// Labels keep the spelling used by the published dataset the dashboard was
// built against.
var vehicleProfiles = [...]vehicleProfile{
	Superminicar:    {label: "Supperminicar", popularity: 0.8, basePrice: 15000},
	SmallFamilyCar:  {label: "Smallfamiliycar", popularity: 1.2, basePrice: 20000},
	MediumFamilyCar: {label: "Mediumfamilycar", popularity: 1.5, basePrice: 30000},
	ExecutiveCar:    {label: "Executivecar", popularity: 1.1, basePrice: 45000},
	Sports:          {label: "Sports", popularity: 0.7, basePrice: 60000},
}

// VehicleTypes returns all vehicle types in generation order.
func VehicleTypes() []VehicleType {
	types := make([]VehicleType, len(vehicleProfiles))
	for i := range vehicleProfiles {
		types[i] = VehicleType(i)
	}
	return types
}

// VehicleTypeLabels returns the display labels in generation order.
func VehicleTypeLabels() []string {
	labels := make([]string, len(vehicleProfiles))
	for i, profile := range vehicleProfiles {
		labels[i] = profile.label
	}
	return labels
}

// ParseVehicleType resolves a display label back to its VehicleType.
func ParseVehicleType(label string) (VehicleType, error) {
	for i, profile := range vehicleProfiles {
		if profile.label == label {
			return VehicleType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown vehicle type %q", label)
}

// Valid reports whether v is one of the defined vehicle types.
func (v VehicleType) Valid() bool {
	return v >= 0 && int(v) < len(vehicleProfiles)
}

// String returns the display label.
func (v VehicleType) String() string {
	if !v.Valid() {
		return fmt.Sprintf("VehicleType(%d)", int(v))
	}
	return vehicleProfiles[v].label
}

// Popularity is the sales multiplier applied to this segment.
func (v VehicleType) Popularity() float64 {
	return vehicleProfiles[v].popularity
}

// BasePrice is the list price before per-record variation.
func (v VehicleType) BasePrice() float64 {
	return vehicleProfiles[v].basePrice
}

// MarshalText encodes the display label.
func (v VehicleType) MarshalText() ([]byte, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("invalid vehicle type %d", int(v))
	}
	return []byte(v.String()), nil
}

// UnmarshalText decodes a display label.
func (v *VehicleType) UnmarshalText(text []byte) error {
	parsed, err := ParseVehicleType(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
