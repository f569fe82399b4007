package sahha

import (
	"context"
	"fmt"
	"net/url"
)

// DefaultDoctorRadius is the search radius, in kilometers, used by callers
// that do not pick their own.
const DefaultDoctorRadius = 10.0

// DoctorsService handles doctor discovery endpoints.
type DoctorsService struct {
	client *Client
}

// Nearby returns doctors within radius kilometers of the given coordinate.
//
// Example:
//
//	doctors, err := client.Doctors.Nearby(ctx, 36.75, 3.05, sahha.DefaultDoctorRadius)
func (s *DoctorsService) Nearby(ctx context.Context, latitude, longitude, radius float64) ([]Doctor, error) {
	endpoint := fmt.Sprintf("/api/client/doctors/nearby?latitude=%g&longitude=%g&radius=%g",
		latitude, longitude, radius)

	var doctors []Doctor
	if err := s.client.get(ctx, endpoint, &doctors); err != nil {
		return nil, err
	}
	return doctors, nil
}

// BySpecialty returns doctors practicing the named specialty.
func (s *DoctorsService) BySpecialty(ctx context.Context, specialty string) ([]Doctor, error) {
	endpoint := "/api/client/doctors/specialty/" + url.PathEscape(specialty)

	var doctors []Doctor
	if err := s.client.get(ctx, endpoint, &doctors); err != nil {
		return nil, err
	}
	return doctors, nil
}

// Search returns doctors matching a free-text query.
func (s *DoctorsService) Search(ctx context.Context, query string) ([]Doctor, error) {
	endpoint := "/api/client/doctors/search?q=" + url.QueryEscape(query)

	var doctors []Doctor
	if err := s.client.get(ctx, endpoint, &doctors); err != nil {
		return nil, err
	}
	return doctors, nil
}
