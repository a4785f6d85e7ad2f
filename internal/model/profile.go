package model

import "github.com/google/uuid"

type ProfileType string

const (
	ProfileTypeClient     ProfileType = "client"
	ProfileTypeContractor ProfileType = "contractor"
)

type Profile struct {
	ID         uuid.UUID   `json:"id"`
	FirstName  string      `json:"firstName"`
	LastName   string      `json:"lastName"`
	Profession string      `json:"profession"`
	Balance    float64     `json:"balance"`
	Type       ProfileType `json:"type"`
}

func (p Profile) FullName() string {
	return p.FirstName + " " + p.LastName
}

func (p Profile) IsClient() bool {
	return p.Type == ProfileTypeClient
}
