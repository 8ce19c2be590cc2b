package domain

// TrackedFlight is one aircraft state vector as shown on the live map.
type TrackedFlight struct {
	ICAO24        string   `json:"icao24"`
	Callsign      string   `json:"callsign"`
	OriginCountry string   `json:"origin_country"`
	TimePosition  *int64   `json:"time_position"`
	LastContact   int64    `json:"last_contact"`
	Longitude     *float64 `json:"longitude"`
	Latitude      *float64 `json:"latitude"`
	BaroAltitude  *float64 `json:"baro_altitude"`
	OnGround      bool     `json:"on_ground"`
	Velocity      *float64 `json:"velocity"`
	Heading       *float64 `json:"heading"`
	Aircraft      string   `json:"aircraft,omitempty"`
}

type Tracking struct {
	Flights []TrackedFlight `json:"flights"`
	Source  string          `json:"source"`
}

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Name      string  `json:"name,omitempty"`
}

// Weather carries forecast sections through as received from the provider.
type Weather struct {
	Success  bool           `json:"success"`
	Error    string         `json:"error,omitempty"`
	Airport  string         `json:"airport,omitempty"`
	Location *Location      `json:"location,omitempty"`
	Current  map[string]any `json:"current,omitempty"`
	Hourly   map[string]any `json:"hourly,omitempty"`
	Daily    map[string]any `json:"daily,omitempty"`
	Source   string         `json:"source"`
}
