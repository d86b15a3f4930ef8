package model

const EntityName = "profile"

type User struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	Address           string `json:"address"`
	Bio               string `json:"bio"`
	ProfilePictureURL string `json:"profilePictureUrl"`
}

type Booking struct {
	ID          string `json:"id"`
	Destination string `json:"destination"`
	Date        string `json:"date"`
	Status      string `json:"status"`
	Cost        int    `json:"cost"`
}

type WishlistItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ImageURL    string `json:"imageUrl"`
	Description string `json:"description"`
}

type Notification struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Enabled     bool   `json:"enabled"`
}

// Profile is the sample account shown on the dashboard.
type Profile struct {
	User          User           `json:"user"`
	Bookings      []Booking      `json:"bookings"`
	Wishlist      []WishlistItem `json:"wishlist"`
	Notifications []Notification `json:"notifications"`
}
