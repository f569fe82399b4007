package sahha

import "context"

// ReservationsService handles appointment reservation endpoints.
type ReservationsService struct {
	client *Client
}

// Create books an appointment slot.
//
// Example:
//
//	res, err := client.Reservations.Create(ctx, sahha.ReservationRequest{
//	    DoctorID:        doctorID,
//	    AppointmentDate: "2026-09-12",
//	    AppointmentTime: "10:30",
//	    ServiceType:     "consultation",
//	})
func (s *ReservationsService) Create(ctx context.Context, req ReservationRequest) (*Reservation, error) {
	var resp Reservation
	if err := s.client.post(ctx, "/api/client/reservations", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// List returns the current user's reservations.
func (s *ReservationsService) List(ctx context.Context) ([]Reservation, error) {
	var reservations []Reservation
	if err := s.client.get(ctx, "/api/client/reservations", &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

// ScanQR submits a scanned reservation QR code for check-in.
func (s *ReservationsService) ScanQR(ctx context.Context, qrData string) error {
	var resp emptyResponse
	return s.client.post(ctx, "/api/client/reservations/scan-qr", QRScanRequest{QRCode: qrData}, &resp)
}
