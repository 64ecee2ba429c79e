package domain

type User struct {
	ID       string `bson:"_id,omitempty" json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
	Password string `json:"password,omitempty"`
}

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)
