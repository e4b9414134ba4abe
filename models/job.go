package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Job struct {
	ID          bson.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name        string        `json:"name" bson:"name"`
	Skills      []string      `json:"skills" bson:"skills"`
	Company     CompanyRef    `json:"company" bson:"company"`
	Location    string        `json:"location" bson:"location"`
	Salary      int           `json:"salary" bson:"salary"`
	Quantity    int           `json:"quantity" bson:"quantity"`
	Level       string        `json:"level" bson:"level"`
	Description string        `json:"description" bson:"description"`
	StartDate   time.Time     `json:"startDate" bson:"startDate"`
	EndDate     time.Time     `json:"endDate" bson:"endDate"`
	IsActive    bool          `json:"isActive" bson:"isActive"`

	CreatedBy *Stamp `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	UpdatedBy *Stamp `json:"updatedBy,omitempty" bson:"updatedBy,omitempty"`
	DeletedBy *Stamp `json:"deletedBy,omitempty" bson:"deletedBy,omitempty"`

	CreatedAt time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt" bson:"updatedAt"`
	IsDeleted bool       `json:"isDeleted" bson:"isDeleted"`
	DeletedAt *time.Time `json:"deletedAt,omitempty" bson:"deletedAt,omitempty"`
}
