package models

// Default settings values applied when a user identifier is first seen.
const (
	DefaultCurrency   = "USD"
	DefaultAppName    = "FarmLedger"
	DefaultWeightUnit = "kg"
	DefaultVolumeUnit = "liters"
)

// UnitPreferences holds the user's preferred measurement units.
// The mapping is fixed-shape: one weight unit and one volume unit.
type UnitPreferences struct {
	Weight string `json:"weight"`
	Volume string `json:"volume"`
}

// UserSettings holds per-device display preferences.
// Exactly one record exists per user identifier once bootstrapped.
type UserSettings struct {
	// UserID is the opaque device identifier this record belongs to.
	UserID string `json:"user_id"`

	// Currency is an ISO-style currency code used as a display label.
	// Free text; no conversion is ever performed.
	Currency string `json:"currency"`

	// AppName is the display name shown by the client.
	AppName string `json:"app_name"`

	// Units are the preferred measurement units for item entry.
	Units UnitPreferences `json:"unit_preferences"`

	// CreatedAt and UpdatedAt are Unix timestamps.
	CreatedAt int64 `json:"created_at"`
	UpdatedAt int64 `json:"updated_at"`
}

// DefaultSettings returns a settings record with all-default field values
// for the given user identifier.
func DefaultSettings(userID string) *UserSettings {
	return &UserSettings{
		UserID:   userID,
		Currency: DefaultCurrency,
		AppName:  DefaultAppName,
		Units: UnitPreferences{
			Weight: DefaultWeightUnit,
			Volume: DefaultVolumeUnit,
		},
	}
}
