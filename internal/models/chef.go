package models

// Chef represents a member of the kitchen brigade responsible for a set of
// ingredients and elaborated products.
type Chef struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Color     string `json:"color"`
	Avatar    string `json:"avatar"`
}
