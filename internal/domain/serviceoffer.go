package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// ServiceOffer is an anonymous offer of help. Offers have no owner and are
// never updated or deleted once submitted.
type ServiceOffer struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Type         OfferType          `bson:"type"`
	ProviderName string             `bson:"pname"`
	Help         string             `bson:"help"`
	Detail       string             `bson:"detail"`
	City         string             `bson:"city"`
	State        string             `bson:"state"`
	Phone        string             `bson:"phone"`
}
