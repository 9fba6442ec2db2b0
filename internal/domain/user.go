package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is an account together with its single help-request status record.
// PasswordHash is set only for local registrations, GoogleID only for
// accounts created through federated login. The status fields below Name
// hold the last submitted request; a user who has never submitted one has
// no name field stored at all.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Username     string             `bson:"username,omitempty"`
	PasswordHash string             `bson:"password_hash,omitempty"`
	GoogleID     string             `bson:"google_id,omitempty"`

	Name        string `bson:"name,omitempty"`
	Age         int    `bson:"age,omitempty"`
	City        string `bson:"city,omitempty"`
	State       string `bson:"state,omitempty"`
	Temperature string `bson:"temperature,omitempty"`
	Count       int    `bson:"count,omitempty"`
	Contact     string `bson:"contact,omitempty"`
	Content     string `bson:"content,omitempty"`
	Requirement string `bson:"requirement,omitempty"`
	Result      string `bson:"result,omitempty"`
}

// Status is one full help-request submission. Every submit replaces the
// whole set of fields on the user, empty values included.
type Status struct {
	Name        string
	Age         int
	City        string
	State       string
	Temperature string
	Count       int
	Contact     string
	Content     string
	Requirement Requirement
	Result      string
}
