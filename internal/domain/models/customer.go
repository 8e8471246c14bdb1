package models

// CustomerColumns is the header row of the Customers sheet
var CustomerColumns = []string{"ID", "Name", "Email", "Phone", "Address", "FacebookID", "Notes", "CreatedAt"}

// Customer is one row of the Customers sheet. JSON keys follow the sheet headers.
type Customer struct {
	ID         string `json:"ID"`
	Name       string `json:"Name"`
	Email      string `json:"Email"`
	Phone      string `json:"Phone"`
	Address    string `json:"Address"`
	FacebookID string `json:"FacebookID"`
	Notes      string `json:"Notes"`
	CreatedAt  string `json:"CreatedAt"`
}

// CustomerInput carries the writable customer fields
type CustomerInput struct {
	Name       *string `json:"name"`
	Email      *string `json:"email" binding:"omitempty,email"`
	Phone      *string `json:"phone"`
	Address    *string `json:"address"`
	FacebookID *string `json:"facebook_id"`
	Notes      *string `json:"notes"`
}

// CustomerFromRecord maps a sheet row to a Customer
func CustomerFromRecord(r map[string]string) Customer {
	return Customer{
		ID:         r["ID"],
		Name:       r["Name"],
		Email:      r["Email"],
		Phone:      r["Phone"],
		Address:    r["Address"],
		FacebookID: r["FacebookID"],
		Notes:      r["Notes"],
		CreatedAt:  r["CreatedAt"],
	}
}

// Record maps a Customer to a sheet row
func (c Customer) Record() map[string]string {
	return map[string]string{
		"ID":         c.ID,
		"Name":       c.Name,
		"Email":      c.Email,
		"Phone":      c.Phone,
		"Address":    c.Address,
		"FacebookID": c.FacebookID,
		"Notes":      c.Notes,
		"CreatedAt":  c.CreatedAt,
	}
}

// Apply overwrites the fields present in the input
func (c *Customer) Apply(in CustomerInput) {
	set(&c.Name, in.Name)
	set(&c.Email, in.Email)
	set(&c.Phone, in.Phone)
	set(&c.Address, in.Address)
	set(&c.FacebookID, in.FacebookID)
	set(&c.Notes, in.Notes)
}

// NewCustomer builds a customer row from a creation request
func NewCustomer(id, now string, in CustomerInput) Customer {
	c := Customer{ID: id, CreatedAt: now}
	c.Apply(in)
	return c
}

func set[T ~string](dst *string, v *T) {
	if v != nil {
		*dst = string(*v)
	}
}
