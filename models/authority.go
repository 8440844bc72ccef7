package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// MunicipalityType enum
type MunicipalityType string

const (
	MunicipalCorporation MunicipalityType = "Municipal Corporation"
	MunicipalCouncil     MunicipalityType = "Municipal Council"
	NagarPanchayat       MunicipalityType = "Nagar Panchayat"
)

// Authority is a municipal account allowed to act on issues.
type Authority struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name             string             `bson:"name" json:"name"`
	Email            string             `bson:"email" json:"email"`
	Password         string             `bson:"passwordHash,omitempty" json:"-"`
	Phone            string             `bson:"phone" json:"phone"`
	City             string             `bson:"city" json:"city"`
	MunicipalityType MunicipalityType   `bson:"municipalityType" json:"municipalityType"`
	CreatedAt        time.Time          `bson:"createdAt" json:"-"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"-"`
}

func (a *Authority) HashPassword() error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(a.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.Password = string(hashed)
	return nil
}

func (a *Authority) ComparePassword(candidate string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(candidate))
	return err == nil
}
