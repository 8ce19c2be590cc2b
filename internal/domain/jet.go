package domain

type Jet struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	Type       string   `json:"type"`
	Capacity   int      `json:"capacity"`
	Range      int      `json:"range"`
	Speed      int      `json:"speed,omitempty"`
	HourlyRate int      `json:"hourlyRate"`
	Amenities  []string `json:"amenities"`
}

type MembershipTier struct {
	Name     string   `json:"name"`
	Price    int      `json:"price"`
	Hours    int      `json:"hours"`
	Benefits []string `json:"benefits"`
}

type Member struct {
	Program string           `json:"program"`
	Tiers   []MembershipTier `json:"tiers"`
}

type DashboardMetrics struct {
	Users        int `json:"users"`
	Bookings     int `json:"bookings"`
	CarbonOffset int `json:"carbonOffset"`
	Revenue      int `json:"revenue"`
	EmptyLegs    int `json:"emptyLegs"`
}
