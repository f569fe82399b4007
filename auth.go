package sahha

import "context"

// AuthService handles authentication endpoints.
//
// These calls only speak to the server; persisting tokens and tracking the
// signed-in state is the SessionManager's job.
type AuthService struct {
	client *Client
}

// Login exchanges credentials for a token pair.
//
// A well-formed response with Success=false is not an error; the server's
// message explains the rejection.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	var resp LoginResponse
	if err := s.client.post(ctx, "/api/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates an account and returns its token pair.
func (s *AuthService) Register(ctx context.Context, req RegistrationRequest) (*RegistrationResponse, error) {
	var resp RegistrationResponse
	if err := s.client.post(ctx, "/api/auth/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Refresh exchanges a refresh token for a fresh token pair.
//
// The request engine never calls this on its own: a 401 always surfaces to
// the caller, who may choose to refresh or force a re-login.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*RefreshTokenResponse, error) {
	var resp RefreshTokenResponse
	if err := s.client.post(ctx, "/api/auth/refresh", RefreshTokenRequest{RefreshToken: refreshToken}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
