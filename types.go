// Package sahha provides the official Go SDK for the Sahha healthcare-access API.
//
// Sahha connects patients with doctors and pharmacies: nearby search,
// appointment reservations, QR check-in, and profile management, behind a
// bearer-token authenticated HTTP API.
package sahha

import "time"

// Role represents an account role.
type Role string

const (
	// RoleClient is a patient account.
	RoleClient Role = "client"
	// RoleDoctor is a practitioner account.
	RoleDoctor Role = "doctor"
	// RolePharmacy is a pharmacy account.
	RolePharmacy Role = "pharmacy"
)

// BloodType represents a blood group.
type BloodType string

const (
	BloodAPositive  BloodType = "A+"
	BloodANegative  BloodType = "A-"
	BloodBPositive  BloodType = "B+"
	BloodBNegative  BloodType = "B-"
	BloodABPositive BloodType = "AB+"
	BloodABNegative BloodType = "AB-"
	BloodOPositive  BloodType = "O+"
	BloodONegative  BloodType = "O-"
)

// BloodTypes lists all supported blood groups.
var BloodTypes = []BloodType{
	BloodAPositive, BloodANegative,
	BloodBPositive, BloodBNegative,
	BloodABPositive, BloodABNegative,
	BloodOPositive, BloodONegative,
}

// Regions lists the regions served by the API.
var Regions = []string{
	"Algiers", "Oran", "Constantine", "Annaba", "Blida", "Batna",
	"Djelfa", "Sétif", "Sidi Bel Abbès", "Biskra", "Tébessa", "El Oued",
	"Skikda", "Tiaret", "Béjaïa", "Tlemcen",
}

// User represents an authenticated account as returned by the auth endpoints.
type User struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	FullName  string     `json:"full_name"`
	Phone     string     `json:"phone"`
	Region    string     `json:"region"`
	Age       *int       `json:"age,omitempty"`
	BloodType *BloodType `json:"blood_type,omitempty"`
	Role      Role       `json:"role"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// AuthTokens is the token pair issued on login or registration.
// The pair is always issued together; see CredentialStore.SaveTokens for the
// matching persistence guarantee.
type AuthTokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    *int   `json:"expiresIn,omitempty"`
}

// LoginRequest is the request body for POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the response from a login attempt. Success=false carries
// the server's own failure message.
type LoginResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	User    *User       `json:"user,omitempty"`
	Tokens  *AuthTokens `json:"tokens,omitempty"`
}

// RegistrationRequest is the request body for POST /api/auth/register.
type RegistrationRequest struct {
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	Role      Role      `json:"role"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone"`
	Region    string    `json:"region"`
	Age       int       `json:"age"`
	BloodType BloodType `json:"blood_type"`
}

// RegistrationResponse is the response from a registration attempt.
type RegistrationResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	User    *User       `json:"user,omitempty"`
	Tokens  *AuthTokens `json:"tokens,omitempty"`
}

// RefreshTokenRequest is the request body for an explicit token refresh.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// RefreshTokenResponse is the response from a token refresh.
type RefreshTokenResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Tokens  *AuthTokens `json:"tokens,omitempty"`
}

// AppointmentSlot is a bookable time slot published by a doctor.
type AppointmentSlot struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	IsBooked bool   `json:"is_booked"`
}

// Doctor represents a practitioner listing.
type Doctor struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	Specialty         string            `json:"specialty"`
	Address           string            `json:"address"`
	City              string            `json:"city"`
	PhoneNumber       string            `json:"phone_number"`
	Latitude          float64           `json:"latitude"`
	Longitude         float64           `json:"longitude"`
	AvailableSlots    []AppointmentSlot `json:"available_slots,omitempty"`
	Rating            *float64          `json:"rating,omitempty"`
	YearsOfExperience *int              `json:"years_of_experience,omitempty"`
}

// Pharmacy represents a pharmacy listing.
type Pharmacy struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Address       string   `json:"address"`
	PhoneNumber   string   `json:"phone_number"`
	Latitude      float64  `json:"latitude"`
	Longitude     float64  `json:"longitude"`
	IsOpen24Hours bool     `json:"is_open_24_hours"`
	OpeningHours  string   `json:"opening_hours"`
	Distance      *float64 `json:"distance,omitempty"`
}

// ReservationRequest is the request body for creating a reservation.
type ReservationRequest struct {
	DoctorID        string `json:"doctor_id"`
	AppointmentDate string `json:"appointment_date"`
	AppointmentTime string `json:"appointment_time"`
	ServiceType     string `json:"service_type"`
	Notes           string `json:"notes"`
}

// Reservation represents a booked appointment.
type Reservation struct {
	ID               string  `json:"id"`
	DoctorID         string  `json:"doctor_id"`
	AppointmentDate  string  `json:"appointment_date"`
	AppointmentTime  string  `json:"appointment_time"`
	ServiceType      string  `json:"service_type"`
	Notes            *string `json:"notes,omitempty"`
	Status           *string `json:"status,omitempty"`
	ConfirmationCode *string `json:"confirmation_code,omitempty"`
}

// QRScanRequest is the request body for reservation QR check-in.
type QRScanRequest struct {
	QRCode string `json:"qr_code"`
}

// UserProfile represents the editable profile of the current user.
// A profile update replaces the whole object; there is no partial patch.
type UserProfile struct {
	ID        *string `json:"id,omitempty"`
	Email     *string `json:"email,omitempty"`
	FullName  *string `json:"full_name,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Age       int     `json:"age"`
	BloodType string  `json:"blood_type"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// emptyResponse matches endpoints that return an empty JSON object.
type emptyResponse struct{}

// Ptr returns a pointer to v. Convenient for optional fields.
//
// Example:
//
//	profile.Email = sahha.Ptr("amine@example.com")
func Ptr[T any](v T) *T {
	return &v
}
