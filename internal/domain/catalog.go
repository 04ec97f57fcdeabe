package domain

// Client is a tenant of the helpdesk, used to decorate tickets and
// users with a human-readable label.
type Client struct {
	ID   int
	Name string
}

// Product is a catalogue entry shown on the equipment and catalogue pages.
type Product struct {
	ID          int
	Name        string
	Description string
	Category    string
}

// Technician is an assignable agent from the technician lookup tables.
type Technician struct {
	ID    int
	Name  string
	Email string
}

// Vendor is an external hardware supplier.
type Vendor struct {
	ID   int
	Name string
}
