package dto

// UserView is one row on the admin user listing.
type UserView struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	ClientID int    `json:"client_id"`
}

// ClientView is a tenant label.
type ClientView struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ProductView is one catalogue entry.
type ProductView struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// TechnicianView is an assignable agent option.
type TechnicianView struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// VendorView is a hardware supplier option.
type VendorView struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// StatusView is one entry of the status lookup table.
type StatusView struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
}

// HardwareOptionsResponse bundles the two lookups behind the hardware
// assignment form.
type HardwareOptionsResponse struct {
	Technicians []TechnicianView `json:"technicians"`
	Vendors     []VendorView     `json:"vendors"`
}
