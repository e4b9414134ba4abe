package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Company struct {
	ID          bson.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name        string        `json:"name" bson:"name"`
	Address     string        `json:"address" bson:"address"`
	Description string        `json:"description" bson:"description"`
	Logo        string        `json:"logo,omitempty" bson:"logo,omitempty"`

	CreatedBy *Stamp `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	UpdatedBy *Stamp `json:"updatedBy,omitempty" bson:"updatedBy,omitempty"`
	DeletedBy *Stamp `json:"deletedBy,omitempty" bson:"deletedBy,omitempty"`

	CreatedAt time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt" bson:"updatedAt"`
	IsDeleted bool       `json:"isDeleted" bson:"isDeleted"`
	DeletedAt *time.Time `json:"deletedAt,omitempty" bson:"deletedAt,omitempty"`
}
