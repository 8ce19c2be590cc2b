package live

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/Domenick1991/jetcharter/internal/domain"
)

// BoundingBox limits a state query to a lat/lon rectangle.
type BoundingBox struct {
	LatMin, LonMin, LatMax, LonMax float64
}

// EastCoast covers the New York and New England approaches.
var EastCoast = BoundingBox{LatMin: 40, LonMin: -80, LatMax: 45, LonMax: -70}

// MaxTrackedFlights caps how many state vectors are taken from one response.
const MaxTrackedFlights = 10

type OpenSkyClient struct {
	baseURL string
	client  *http.Client
}

func NewOpenSkyClient(baseURL string, client *http.Client) *OpenSkyClient {
	return &OpenSkyClient{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

type statesResponse struct {
	Time   int64   `json:"time"`
	States [][]any `json:"states"`
}

// States fetches live positions inside box. A response with no states array is an
// error; an empty array is not.
func (c *OpenSkyClient) States(ctx context.Context, box BoundingBox) ([]domain.TrackedFlight, error) {
	q := url.Values{}
	q.Set("lamin", formatCoord(box.LatMin))
	q.Set("lomin", formatCoord(box.LonMin))
	q.Set("lamax", formatCoord(box.LatMax))
	q.Set("lomax", formatCoord(box.LonMax))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/states/all?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build opensky request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call opensky: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read opensky response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("opensky returned status %d", resp.StatusCode)
	}

	var payload statesResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode opensky response: %w", err)
	}
	if payload.States == nil {
		return nil, fmt.Errorf("opensky response has no states")
	}

	states := payload.States
	if len(states) > MaxTrackedFlights {
		states = states[:MaxTrackedFlights]
	}

	flights := make([]domain.TrackedFlight, 0, len(states))
	for _, s := range states {
		f := stateToFlight(s)
		if f.Latitude == nil || f.Longitude == nil || *f.Latitude == 0 || *f.Longitude == 0 {
			continue
		}
		flights = append(flights, f)
	}
	return flights, nil
}

// stateToFlight reads the positional state vector layout documented by OpenSky.
// Fields of the wrong type are left empty.
func stateToFlight(s []any) domain.TrackedFlight {
	f := domain.TrackedFlight{
		ICAO24:        stringAt(s, 0),
		Callsign:      strings.TrimSpace(stringAt(s, 1)),
		OriginCountry: stringAt(s, 2),
		Longitude:     floatAt(s, 5),
		Latitude:      floatAt(s, 6),
		BaroAltitude:  floatAt(s, 7),
		Velocity:      floatAt(s, 9),
		Heading:       floatAt(s, 10),
	}
	if f.Callsign == "" {
		f.Callsign = "N/A"
	}
	if v := floatAt(s, 3); v != nil {
		ts := int64(*v)
		f.TimePosition = &ts
	}
	if v := floatAt(s, 4); v != nil {
		f.LastContact = int64(*v)
	}
	if len(s) > 8 {
		f.OnGround, _ = s[8].(bool)
	}
	return f
}

func stringAt(s []any, i int) string {
	if i >= len(s) {
		return ""
	}
	v, _ := s[i].(string)
	return v
}

func floatAt(s []any, i int) *float64 {
	if i >= len(s) {
		return nil
	}
	v, ok := s[i].(float64)
	if !ok {
		return nil
	}
	return &v
}
