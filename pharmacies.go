package sahha

import (
	"context"
	"fmt"
	"net/url"
)

// DefaultPharmacyRadius is the search radius, in kilometers, used by callers
// that do not pick their own.
const DefaultPharmacyRadius = 5.0

// PharmaciesService handles pharmacy discovery endpoints.
type PharmaciesService struct {
	client *Client
}

// Nearby returns pharmacies within radius kilometers of the given coordinate.
func (s *PharmaciesService) Nearby(ctx context.Context, latitude, longitude, radius float64) ([]Pharmacy, error) {
	endpoint := fmt.Sprintf("/api/client/pharmacies/nearby?latitude=%g&longitude=%g&radius=%g",
		latitude, longitude, radius)

	var pharmacies []Pharmacy
	if err := s.client.get(ctx, endpoint, &pharmacies); err != nil {
		return nil, err
	}
	return pharmacies, nil
}

// ByRegion returns pharmacies registered in the named region.
func (s *PharmaciesService) ByRegion(ctx context.Context, region string) ([]Pharmacy, error) {
	endpoint := "/api/pharmacy?region=" + url.QueryEscape(region)

	var pharmacies []Pharmacy
	if err := s.client.get(ctx, endpoint, &pharmacies); err != nil {
		return nil, err
	}
	return pharmacies, nil
}

// Open24Hours returns pharmacies open around the clock.
func (s *PharmaciesService) Open24Hours(ctx context.Context) ([]Pharmacy, error) {
	var pharmacies []Pharmacy
	if err := s.client.get(ctx, "/api/client/pharmacies/24h", &pharmacies); err != nil {
		return nil, err
	}
	return pharmacies, nil
}
