package user

// User is an account row. Role is one of the auth package role constants.
type User struct {
	ID          int    `json:"userId"`
	Email       string `json:"email"`
	Password    string `json:"password,omitempty"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	TaxID       string `json:"taxId,omitempty"`
	HomeAddress string `json:"homeAddress,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}
