package forms

// CompanyRefForm is the embedded company reference accepted on user and
// job forms.
type CompanyRefForm struct {
	ID   string `json:"_id" binding:"required,objectid"`
	Name string `json:"name" binding:"required"`
}

// CreateUserForm is the administrative variant of registration: the caller
// picks the role and company.
type CreateUserForm struct {
	Name     string          `json:"name" binding:"required"`
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required,min=6,max=50"`
	Age      int             `json:"age" binding:"required,gte=0"`
	Gender   string          `json:"gender" binding:"required"`
	Address  string          `json:"address" binding:"required"`
	Role     string          `json:"role" binding:"required,oneof=user admin hr"`
	Company  *CompanyRefForm `json:"company,omitempty"`
}

// UpdateUserForm carries the mutable user fields. Password changes are out
// of scope here.
type UpdateUserForm struct {
	Name    string          `json:"name" binding:"required"`
	Email   string          `json:"email" binding:"required,email"`
	Age     int             `json:"age" binding:"required,gte=0"`
	Gender  string          `json:"gender" binding:"required"`
	Address string          `json:"address" binding:"required"`
	Role    string          `json:"role" binding:"required,oneof=user admin hr"`
	Company *CompanyRefForm `json:"company,omitempty"`
}
