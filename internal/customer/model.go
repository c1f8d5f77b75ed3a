package customer

// Customer is the read-only view of a customer-table row.
type Customer struct {
	Ref        string `json:"ref"` // backend record id
	CustomerID string `json:"customerId"`
	Name       string `json:"name,omitempty"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Address    string `json:"address,omitempty"`
}

// ExistsResponse answers the customer existence check.
// swagger:model
type ExistsResponse struct {
	OK bool `json:"ok"`
}
