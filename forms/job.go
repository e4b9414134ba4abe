package forms

import "time"

// JobForm is shared by job create and update. Dates are RFC 3339 strings;
// the service rejects endDate earlier than startDate.
type JobForm struct {
	Name        string         `json:"name" binding:"required"`
	Skills      []string       `json:"skills" binding:"required,min=1,dive,required"`
	Company     CompanyRefForm `json:"company" binding:"required"`
	Location    string         `json:"location" binding:"required"`
	Salary      int            `json:"salary" binding:"required,gte=0"`
	Quantity    int            `json:"quantity" binding:"required,gte=1"`
	Level       string         `json:"level" binding:"required"`
	Description string         `json:"description" binding:"required"`
	StartDate   time.Time      `json:"startDate" binding:"required"`
	EndDate     time.Time      `json:"endDate" binding:"required"`
	IsActive    *bool          `json:"isActive" binding:"required"`
}
