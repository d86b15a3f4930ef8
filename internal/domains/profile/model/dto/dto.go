package dto

import (
	"indivoyage/internal/domains/profile/model"
	"indivoyage/shared/money"
	"indivoyage/shared/validator"
	"strings"
)

var Tabs = []string{"profile", "bookings", "wishlist", "settings"}

type UserResponse struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	Address           string `json:"address"`
	Bio               string `json:"bio"`
	ProfilePictureURL string `json:"profile_picture_url,omitempty"`
}

func (r *UserResponse) FromModel(m model.User) {
	r.Name = m.Name
	r.Email = m.Email
	r.Phone = m.Phone
	r.Address = m.Address
	r.Bio = m.Bio
	r.ProfilePictureURL = m.ProfilePictureURL
}

type BookingResponse struct {
	ID            string `json:"id"`
	Destination   string `json:"destination"`
	Date          string `json:"date"`
	Status        string `json:"status"`
	Cost          int    `json:"cost"`
	CostFormatted string `json:"cost_formatted"`
}

type WishlistResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ImageURL    string `json:"image_url"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

type NotificationResponse struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Enabled     bool   `json:"enabled"`
}

type ProfileResponse struct {
	Tabs          []string               `json:"tabs"`
	User          UserResponse           `json:"user"`
	Bookings      []BookingResponse      `json:"bookings"`
	Wishlist      []WishlistResponse     `json:"wishlist"`
	Notifications []NotificationResponse `json:"notifications"`
}

func (r *ProfileResponse) FromModel(m model.Profile, formatter *money.Formatter) {
	r.Tabs = Tabs
	r.User.FromModel(m.User)

	r.Bookings = make([]BookingResponse, len(m.Bookings))
	for i, booking := range m.Bookings {
		r.Bookings[i] = BookingResponse{
			ID:            booking.ID,
			Destination:   booking.Destination,
			Date:          booking.Date,
			Status:        booking.Status,
			Cost:          booking.Cost,
			CostFormatted: formatter.Format(booking.Cost),
		}
	}

	r.Wishlist = make([]WishlistResponse, len(m.Wishlist))
	for i, item := range m.Wishlist {
		r.Wishlist[i] = WishlistResponse{
			ID:          item.ID,
			Name:        item.Name,
			ImageURL:    item.ImageURL,
			Description: item.Description,
			Link:        "/destination-detail",
		}
	}

	r.Notifications = make([]NotificationResponse, len(m.Notifications))
	for i, notification := range m.Notifications {
		r.Notifications[i] = NotificationResponse(notification)
	}
}

type UpdateProfileRequest struct {
	Name    string `json:"name"    validate:"required,min=2,max=50"`
	Email   string `json:"email"   validate:"required,email"`
	Phone   string `json:"phone"   validate:"omitempty,profilephone"`
	Address string `json:"address" validate:"omitempty,max=200"`
	Bio     string `json:"bio"     validate:"omitempty,max=200"`
}

func (u *UpdateProfileRequest) Validate() error {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = strings.TrimSpace(u.Email)
	u.Phone = strings.TrimSpace(u.Phone)
	u.Address = strings.TrimSpace(u.Address)

	return validator.ValidateStruct(u)
}

// ToResponse echoes the accepted values on top of the current user.
func (u UpdateProfileRequest) ToResponse(current model.User) UserResponse {
	return UserResponse{
		Name:              u.Name,
		Email:             u.Email,
		Phone:             u.Phone,
		Address:           u.Address,
		Bio:               u.Bio,
		ProfilePictureURL: current.ProfilePictureURL,
	}
}
