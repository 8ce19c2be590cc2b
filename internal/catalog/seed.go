package catalog

import "github.com/Domenick1991/jetcharter/internal/domain"

func seedJets() []domain.Jet {
	return []domain.Jet{
		{ID: 1, Name: "Gulfstream G650ER", Type: "Ultra Long Range", Capacity: 14, Range: 7500, Speed: 610, HourlyRate: 12000,
			Amenities: []string{"WiFi", "Full Galley", "Master Bedroom", "Shower"}},
		{ID: 2, Name: "Bombardier Global 7500", Type: "Ultra Long Range", Capacity: 17, Range: 7700, Speed: 590, HourlyRate: 14000,
			Amenities: []string{"WiFi", "Four Living Spaces", "Private Suite", "Full Galley"}},
		{ID: 3, Name: "Dassault Falcon 8X", Type: "Heavy", Capacity: 14, Range: 6450, Speed: 488, HourlyRate: 10500,
			Amenities: []string{"WiFi", "Full Galley", "Conference Area"}},
		{ID: 4, Name: "Challenger 350", Type: "Super Midsize", Capacity: 10, Range: 3200, Speed: 470, HourlyRate: 6500,
			Amenities: []string{"WiFi", "Full Galley", "Entertainment", "Conference Seating"}},
		{ID: 5, Name: "Citation Latitude", Type: "Midsize", Capacity: 9, Range: 2700, Speed: 446, HourlyRate: 5000,
			Amenities: []string{"WiFi", "Flat Floor Cabin", "Refreshments"}},
		{ID: 6, Name: "Phenom 300E", Type: "Light", Capacity: 11, Range: 2010, Speed: 464, HourlyRate: 3800,
			Amenities: []string{"WiFi", "LED Lighting", "Refreshment Center"}},
		{ID: 7, Name: "Citation CJ3+", Type: "Light", Capacity: 9, Range: 2040, Speed: 416, HourlyRate: 3200,
			Amenities: []string{"WiFi", "Refreshments", "Entertainment System"}},
		{ID: 8, Name: "HondaJet Elite", Type: "Very Light", Capacity: 6, Range: 1437, HourlyRate: 2800,
			Amenities: []string{"Refreshments", "Quiet Cabin"}},
	}
}

func seedDeals() []domain.DealRecord {
	return []domain.DealRecord{
		{ID: 1, JetID: 4, From: "New York", To: "Miami", Date: "2026-11-20", Price: 18500},
		{ID: 2, JetID: 7, From: "Los Angeles", To: "Las Vegas", Date: "2026-11-08", Price: 8500},
		{ID: 3, JetID: 1, From: "New York", To: "London", Date: "2026-12-02", Price: 62000},
		{ID: 4, JetID: 6, From: "Chicago", To: "Aspen", Date: "2026-12-18", Price: 14200},
		{ID: 5, JetID: 5, From: "Dallas", To: "Cabo San Lucas", Date: "2026-11-27", Price: 21000},
		{ID: 6, JetID: 9, From: "San Francisco", To: "Seattle", Date: "2026-10-30", Price: 9800},
	}
}

func seedRoutes() []domain.FlightRecord {
	return []domain.FlightRecord{
		{
			ID: "JFK-LAX-001",
			Departure: domain.Endpoint{Airport: "JFK", City: "New York", Country: "USA", Terminal: "T4", Gate: "A12",
				Time: "2024-02-15T08:00:00Z"},
			Arrival: domain.Endpoint{Airport: "LAX", City: "Los Angeles", Country: "USA", Terminal: "T1", Gate: "B6",
				Time: "2024-02-15T14:30:00Z"},
			Aircraft:   &domain.Aircraft{Type: "Gulfstream G650ER", Registration: "N650GS", Operator: "Elite Jets", Capacity: 14},
			Duration:   "6h 30m",
			Distance:   2475,
			Price:      &domain.FlightPrice{Base: 45000, Total: 52000, Currency: "USD", PricePerPerson: 3714},
			Status:     "Available",
			FlightType: "Charter",
			Category:   domain.CategoryHeavy,
			Amenities:  []string{"WiFi", "Full Galley", "Master Bedroom", "Entertainment"},
			Image:      "https://images.unsplash.com/photo-1544620347-c4fd4a3d5957?w=800&q=80",
		},
		{
			ID: "LAX-MIA-002",
			Departure: domain.Endpoint{Airport: "LAX", City: "Los Angeles", Country: "USA", Terminal: "T7", Gate: "C15",
				Time: "2024-02-15T10:15:00Z"},
			Arrival: domain.Endpoint{Airport: "MIA", City: "Miami", Country: "USA", Terminal: "T2", Gate: "D8",
				Time: "2024-02-15T18:45:00Z"},
			Aircraft:   &domain.Aircraft{Type: "Challenger 350", Registration: "N350CH", Operator: "Luxury Air", Capacity: 10},
			Duration:   "5h 30m",
			Distance:   2342,
			Price:      &domain.FlightPrice{Base: 35750, Total: 41000, Currency: "USD", PricePerPerson: 4100},
			Status:     "Available",
			FlightType: "Charter",
			Category:   domain.CategoryMidsize,
			Amenities:  []string{"WiFi", "Full Galley", "Entertainment", "Conference Seating"},
			Image:      "https://images.unsplash.com/photo-1556075798-4825dfaaf498?w=800&q=80",
		},
		{
			ID: "MIA-JFK-003",
			Departure: domain.Endpoint{Airport: "MIA", City: "Miami", Country: "USA", Terminal: "T3", Gate: "E22",
				Time: "2024-02-15T14:30:00Z"},
			Arrival: domain.Endpoint{Airport: "JFK", City: "New York", Country: "USA", Terminal: "T4", Gate: "A18",
				Time: "2024-02-15T17:15:00Z"},
			Aircraft:   &domain.Aircraft{Type: "Citation CJ3+", Registration: "N123CJ", Operator: "Executive Jets", Capacity: 9},
			Duration:   "2h 45m",
			Distance:   1090,
			Price:      &domain.FlightPrice{Base: 9625, Total: 11000, Currency: "USD", PricePerPerson: 1222},
			Status:     "Available",
			FlightType: "Charter",
			Category:   domain.CategoryLight,
			Amenities:  []string{"WiFi", "Refreshments", "Entertainment System"},
			Image:      "https://images.unsplash.com/photo-1540962351504-03099e0a754b?w=800&q=80",
		},
		{
			ID: "CHI-LAS-004",
			Departure: domain.Endpoint{Airport: "MDW", City: "Chicago", Country: "USA", Terminal: "T1", Gate: "B5",
				Time: "2024-02-15T12:00:00Z"},
			Arrival: domain.Endpoint{Airport: "LAS", City: "Las Vegas", Country: "USA", Terminal: "T3", Gate: "C12",
				Time: "2024-02-15T15:20:00Z"},
			Aircraft:   &domain.Aircraft{Type: "Phenom 300E", Registration: "N300EP", Operator: "Premier Aviation", Capacity: 11},
			Duration:   "4h 20m",
			Distance:   1514,
			Price:      &domain.FlightPrice{Base: 18200, Total: 21000, Currency: "USD", PricePerPerson: 1909},
			Status:     "Available",
			FlightType: "Charter",
			Category:   domain.CategoryLight,
			Amenities:  []string{"WiFi", "Entertainment", "LED Lighting", "Refreshment Center"},
			Image:      "https://images.unsplash.com/photo-1569629810221-9c236b90babe?w=800&q=80",
		},
	}
}

func seedEmptyLegs() []domain.EmptyLeg {
	return []domain.EmptyLeg{
		{
			ID:              "EMPTY-001",
			Departure:       domain.Endpoint{Airport: "TEB", City: "Teterboro", Country: "USA", Time: "2024-02-16T11:00:00Z"},
			Arrival:         domain.Endpoint{Airport: "PBI", City: "West Palm Beach", Country: "USA", Time: "2024-02-16T13:45:00Z"},
			Aircraft:        domain.Aircraft{Type: "Citation CJ3+", Registration: "N123CJ", Operator: "Executive Jets", Capacity: 9},
			Duration:        "2h 45m",
			Distance:        1034,
			OriginalPrice:   15000,
			DiscountedPrice: 8500,
			Savings:         6500,
			Discount:        43,
			Status:          "Available",
			Reason:          "Positioning flight",
			Category:        domain.CategoryLight,
			Image:           "https://images.unsplash.com/photo-1540962351504-03099e0a754b?w=800&q=80",
		},
		{
			ID:              "EMPTY-002",
			Departure:       domain.Endpoint{Airport: "LAX", City: "Los Angeles", Country: "USA", Time: "2024-02-16T14:30:00Z"},
			Arrival:         domain.Endpoint{Airport: "SFO", City: "San Francisco", Country: "USA", Time: "2024-02-16T15:45:00Z"},
			Aircraft:        domain.Aircraft{Type: "Phenom 300E", Registration: "N300EP", Operator: "Premier Aviation", Capacity: 11},
			Duration:        "1h 15m",
			Distance:        337,
			OriginalPrice:   8500,
			DiscountedPrice: 4200,
			Savings:         4300,
			Discount:        51,
			Status:          "Available",
			Reason:          "Return positioning",
			Category:        domain.CategoryLight,
			Image:           "https://images.unsplash.com/photo-1569629810221-9c236b90babe?w=800&q=80",
		},
	}
}

func seedAirports() []domain.Airport {
	return []domain.Airport{
		{Code: "JFK", Name: "John F. Kennedy International", City: "New York", Country: "USA"},
		{Code: "LAX", Name: "Los Angeles International", City: "Los Angeles", Country: "USA"},
		{Code: "MIA", Name: "Miami International", City: "Miami", Country: "USA"},
		{Code: "TEB", Name: "Teterboro Airport", City: "Teterboro", Country: "USA"},
		{Code: "LAS", Name: "McCarran International", City: "Las Vegas", Country: "USA"},
		{Code: "MDW", Name: "Chicago Midway International", City: "Chicago", Country: "USA"},
		{Code: "DAL", Name: "Dallas Love Field", City: "Dallas", Country: "USA"},
		{Code: "PBI", Name: "Palm Beach International", City: "West Palm Beach", Country: "USA"},
		{Code: "SFO", Name: "San Francisco International", City: "San Francisco", Country: "USA"},
	}
}

func seedWeatherSites() []domain.Airport {
	return []domain.Airport{
		{Code: "JFK", Name: "John F. Kennedy International", Lat: 40.6413, Lon: -73.7781},
		{Code: "LAX", Name: "Los Angeles International", Lat: 33.9425, Lon: -118.4081},
		{Code: "MIA", Name: "Miami International", Lat: 25.7617, Lon: -80.1918},
		{Code: "TEB", Name: "Teterboro Airport", Lat: 40.8501, Lon: -74.0606},
		{Code: "LAS", Name: "McCarran International", Lat: 36.0840, Lon: -115.1537},
		{Code: "MDW", Name: "Chicago Midway", Lat: 41.7868, Lon: -87.7522},
		{Code: "DAL", Name: "Dallas Love Field", Lat: 32.8470, Lon: -96.8518},
		{Code: "ORD", Name: "O'Hare International", Lat: 41.9742, Lon: -87.9073},
		{Code: "DEN", Name: "Denver International", Lat: 39.8561, Lon: -104.6737},
		{Code: "SFO", Name: "San Francisco International", Lat: 37.6213, Lon: -122.3790},
	}
}

func seedDestinations() []domain.Destination {
	return []domain.Destination{
		{City: "New York", Airport: "TEB", Image: "https://images.unsplash.com/photo-1496442226666-8d4d0e62e6e9?w=800&q=80",
			Description: "Business capital with world-class dining and culture"},
		{City: "Los Angeles", Airport: "LAX", Image: "https://images.unsplash.com/photo-1444727607150-c999be6df8b8?w=800&q=80",
			Description: "Entertainment hub with beautiful beaches and weather"},
		{City: "Miami", Airport: "MIA", Image: "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=800&q=80",
			Description: "Tropical paradise with vibrant nightlife and art scene"},
		{City: "Las Vegas", Airport: "LAS", Image: "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=800&q=80",
			Description: "Entertainment capital with world-renowned shows and dining"},
	}
}

func seedMember() domain.Member {
	return domain.Member{
		Program: "Electric Jets Club",
		Tiers: []domain.MembershipTier{
			{Name: "Silver", Price: 25000, Hours: 10, Benefits: []string{"Guaranteed availability", "24/7 concierge"}},
			{Name: "Gold", Price: 100000, Hours: 50, Benefits: []string{"Guaranteed availability", "24/7 concierge", "Empty leg priority"}},
			{Name: "Platinum", Price: 250000, Hours: 150, Benefits: []string{"Guaranteed availability", "24/7 concierge", "Empty leg priority", "Fixed hourly rates", "Carbon neutral flying"}},
		},
	}
}

func seedDashboard() domain.DashboardMetrics {
	return domain.DashboardMetrics{
		Users:        1250,
		Bookings:     342,
		CarbonOffset: 18400,
		Revenue:      4850000,
		EmptyLegs:    27,
	}
}

func seedTracking() []domain.TrackedFlight {
	return []domain.TrackedFlight{
		{ICAO24: "a1b2c3", Callsign: "EJ123", OriginCountry: "United States", TimePosition: int64Ptr(1692450000),
			LastContact: 1692450300, Longitude: floatPtr(-98.5795), Latitude: floatPtr(39.8283), BaroAltitude: floatPtr(45000),
			Velocity: floatPtr(550), Heading: floatPtr(90), Aircraft: "Gulfstream G650ER"},
		{ICAO24: "d4e5f6", Callsign: "LA456", OriginCountry: "United States", TimePosition: int64Ptr(1692450000),
			LastContact: 1692450300, Longitude: floatPtr(-95.1376), Latitude: floatPtr(29.6516), BaroAltitude: floatPtr(43000),
			Velocity: floatPtr(480), Heading: floatPtr(85), Aircraft: "Challenger 350"},
	}
}

func seedWeather() domain.Weather {
	return domain.Weather{
		Location: &domain.Location{Latitude: 40.8501, Longitude: -74.0606, Name: "Teterboro Airport"},
		Current: map[string]any{
			"temperature_2m":       18.0,
			"apparent_temperature": 17.0,
			"relative_humidity_2m": 60,
			"cloud_cover":          25,
			"wind_speed_10m":       12.0,
			"wind_direction_10m":   240,
			"wind_gusts_10m":       20.0,
			"pressure_msl":         1016.0,
			"weather_code":         1,
			"is_day":               1,
		},
	}
}

func floatPtr(v float64) *float64 { return &v }

func int64Ptr(v int64) *int64 { return &v }
