package forms

// CompanyForm is shared by company create and update: both accept the full
// set of mutable fields.
type CompanyForm struct {
	Name        string `json:"name" binding:"required"`
	Address     string `json:"address" binding:"required"`
	Description string `json:"description" binding:"required"`
	Logo        string `json:"logo"`
}
