package sahha

import "context"

// ProfileService handles the current user's profile endpoints.
type ProfileService struct {
	client *Client
}

// Get returns the current user's profile.
func (s *ProfileService) Get(ctx context.Context) (*UserProfile, error) {
	var profile UserProfile
	if err := s.client.get(ctx, "/api/client/profile", &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// Update replaces the profile with the given object and returns the stored
// result. Updates are whole-object; omitted optional fields are cleared.
func (s *ProfileService) Update(ctx context.Context, profile UserProfile) (*UserProfile, error) {
	var updated UserProfile
	if err := s.client.post(ctx, "/api/client/profile", profile, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
