package domain

import "time"

type FlightCategory string

const (
	CategoryLight   FlightCategory = "light"
	CategoryMidsize FlightCategory = "midsize"
	CategoryHeavy   FlightCategory = "heavy"
)

type Endpoint struct {
	Airport  string `json:"airport"`
	City     string `json:"city"`
	Country  string `json:"country,omitempty"`
	Terminal string `json:"terminal,omitempty"`
	Gate     string `json:"gate,omitempty"`
	Time     string `json:"time"`
}

type Aircraft struct {
	Type         string `json:"type"`
	Registration string `json:"registration,omitempty"`
	Operator     string `json:"operator"`
	Capacity     int    `json:"capacity"`
}

type FlightPrice struct {
	Base           float64 `json:"base"`
	Total          float64 `json:"total"`
	Currency       string  `json:"currency"`
	PricePerPerson float64 `json:"pricePerPerson,omitempty"`
	Original       float64 `json:"original,omitempty"`
	Savings        float64 `json:"savings,omitempty"`
	Discount       int     `json:"discount,omitempty"`
}

type FlightRecord struct {
	ID         string         `json:"id"`
	Departure  Endpoint       `json:"departure"`
	Arrival    Endpoint       `json:"arrival"`
	Aircraft   *Aircraft      `json:"aircraft,omitempty"`
	Duration   string         `json:"duration"`
	Distance   float64        `json:"distance"`
	Price      *FlightPrice   `json:"price,omitempty"`
	Status     string         `json:"status,omitempty"`
	FlightType string         `json:"flightType,omitempty"`
	Category   FlightCategory `json:"category"`
	Amenities  []string       `json:"amenities,omitempty"`
	Image      string         `json:"image,omitempty"`
	IsEmptyLeg bool           `json:"isEmptyLeg"`
	Reason     string         `json:"reason,omitempty"`
}

func (f FlightRecord) Origins() []string {
	return nonEmpty(f.Departure.City, f.Departure.Airport)
}

func (f FlightRecord) Destinations() []string {
	return nonEmpty(f.Arrival.City, f.Arrival.Airport)
}

func (f FlightRecord) Amount() (float64, bool) {
	if f.Price == nil {
		return 0, false
	}
	return f.Price.Total, true
}

// OriginalAmount is only known for flights that carry a pre-discount price, such as empty legs.
func (f FlightRecord) OriginalAmount() (float64, bool) {
	if f.Price == nil || f.Price.Original <= 0 {
		return 0, false
	}
	return f.Price.Original, true
}

func (f FlightRecord) Class() (string, bool) {
	if f.Category == "" {
		return "", false
	}
	return string(f.Category), true
}

func (f FlightRecord) Seats() (int, bool) {
	if f.Aircraft == nil {
		return 0, false
	}
	return f.Aircraft.Capacity, true
}

func (f FlightRecord) DepartsAt() (time.Time, bool) {
	return ParseTimestamp(f.Departure.Time)
}

// EmptyLeg is a discounted repositioning flight as stored in the catalog.
type EmptyLeg struct {
	ID              string         `json:"id"`
	Departure       Endpoint       `json:"departure"`
	Arrival         Endpoint       `json:"arrival"`
	Aircraft        Aircraft       `json:"aircraft"`
	Duration        string         `json:"duration"`
	Distance        float64        `json:"distance"`
	OriginalPrice   float64        `json:"originalPrice"`
	DiscountedPrice float64        `json:"discountedPrice"`
	Savings         float64        `json:"savings"`
	Discount        int            `json:"discount"`
	Status          string         `json:"status"`
	Reason          string         `json:"reason"`
	Category        FlightCategory `json:"category"`
	Image           string         `json:"image,omitempty"`
}

// AsFlight converts the empty leg into a searchable flight record priced at the discounted fare.
func (e EmptyLeg) AsFlight() FlightRecord {
	aircraft := e.Aircraft
	return FlightRecord{
		ID:        e.ID,
		Departure: e.Departure,
		Arrival:   e.Arrival,
		Aircraft:  &aircraft,
		Duration:  e.Duration,
		Distance:  e.Distance,
		Price: &FlightPrice{
			Base:     e.DiscountedPrice,
			Total:    e.DiscountedPrice,
			Currency: "USD",
			Original: e.OriginalPrice,
			Savings:  e.Savings,
			Discount: e.Discount,
		},
		Status:     e.Status,
		Category:   e.Category,
		Image:      e.Image,
		IsEmptyLeg: true,
		Reason:     e.Reason,
	}
}

type Airport struct {
	Code    string  `json:"code"`
	Name    string  `json:"name"`
	City    string  `json:"city"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat,omitempty"`
	Lon     float64 `json:"lon,omitempty"`
}

type Destination struct {
	City        string `json:"city"`
	Airport     string `json:"airport"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
