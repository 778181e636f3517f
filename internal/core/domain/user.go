package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Gender string

const (
	Male   Gender = "Male"
	Female Gender = "Female"
)

const DefaultRole = "user"

// swagger:model domain.User
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName    string             `bson:"firstName" json:"firstName" validate:"required"`
	LastName     string             `bson:"lastName" json:"lastName" validate:"required"`
	Email        string             `bson:"email,omitempty" json:"email" validate:"required,loose_email"`
	Password     string             `bson:"password" json:"-" validate:"required"`
	DateOfBirth  time.Time          `bson:"dob" json:"dob" validate:"required"`
	Gender       Gender             `bson:"gender" json:"gender" validate:"oneof=Male Female"`
	PhoneNumbers []string           `bson:"phoneNumbers" json:"phoneNumbers"`
	SecretKey    string             `bson:"secretKey" json:"-" validate:"required"`
	Roles        []string           `bson:"roles" json:"roles"`
	Verified     bool               `bson:"verified" json:"verified"`
	IsApproved   bool               `bson:"isApproved" json:"isApproved"`
	Profile      `bson:",inline"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Profile holds the optional fields the collection schema accepts.
// Registration and login never populate them.
type Profile struct {
	ProfilePicture  string               `bson:"profilePicture" json:"profilePicture"`
	Address         *Address             `bson:"address,omitempty" json:"address,omitempty"`
	Bio             string               `bson:"bio,omitempty" json:"bio,omitempty"`
	SocialLinks     *SocialLinks         `bson:"socialLinks,omitempty" json:"socialLinks,omitempty"`
	Children        []primitive.ObjectID `bson:"children" json:"children"`
	Parent          *primitive.ObjectID  `bson:"parent" json:"parent"`
	Education       []Education          `bson:"education" json:"education"`
	Work            []Work               `bson:"work" json:"work"`
	MarriageDetails []MarriageDetail     `bson:"marriageDetails" json:"marriageDetails"`
	Events          []Event              `bson:"events" json:"events"`
	Photos          []Photo              `bson:"photos" json:"photos"`
	PrivacySettings PrivacySettings      `bson:"privacySettings" json:"privacySettings"`
}

type Address struct {
	Street  string `bson:"street,omitempty" json:"street,omitempty"`
	City    string `bson:"city,omitempty" json:"city,omitempty"`
	State   string `bson:"state,omitempty" json:"state,omitempty"`
	Zip     string `bson:"zip,omitempty" json:"zip,omitempty"`
	Country string `bson:"country,omitempty" json:"country,omitempty"`
}

type SocialLinks struct {
	Facebook  string                 `bson:"facebook,omitempty" json:"facebook,omitempty"`
	Twitter   string                 `bson:"twitter,omitempty" json:"twitter,omitempty"`
	LinkedIn  string                 `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
	Instagram string                 `bson:"instagram,omitempty" json:"instagram,omitempty"`
	Custom    map[string]interface{} `bson:"custom,omitempty" json:"custom,omitempty"`
}

type Education struct {
	SchoolName   string     `bson:"schoolName,omitempty" json:"schoolName,omitempty"`
	Degree       string     `bson:"degree,omitempty" json:"degree,omitempty"`
	FieldOfStudy string     `bson:"fieldOfStudy,omitempty" json:"fieldOfStudy,omitempty"`
	StartDate    *time.Time `bson:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate      *time.Time `bson:"endDate,omitempty" json:"endDate,omitempty"`
	Description  string     `bson:"description,omitempty" json:"description,omitempty"`
}

type Work struct {
	CompanyName string     `bson:"companyName,omitempty" json:"companyName,omitempty"`
	Position    string     `bson:"position,omitempty" json:"position,omitempty"`
	StartDate   *time.Time `bson:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate     *time.Time `bson:"endDate,omitempty" json:"endDate,omitempty"`
	Description string     `bson:"description,omitempty" json:"description,omitempty"`
}

type MarriageDetail struct {
	Spouse          *primitive.ObjectID `bson:"spouse,omitempty" json:"spouse,omitempty"`
	MarriageDate    *time.Time          `bson:"marriageDate,omitempty" json:"marriageDate,omitempty"`
	PlaceOfMarriage string              `bson:"placeOfMarriage,omitempty" json:"placeOfMarriage,omitempty"`
}

type Event struct {
	EventName   string     `bson:"eventName,omitempty" json:"eventName,omitempty"`
	EventDate   *time.Time `bson:"eventDate,omitempty" json:"eventDate,omitempty"`
	Description string     `bson:"description,omitempty" json:"description,omitempty"`
}

type Photo struct {
	PhotoURL string `bson:"photoUrl,omitempty" json:"photoUrl,omitempty"`
	Caption  string `bson:"caption,omitempty" json:"caption,omitempty"`
}

type AccessLevel string

const (
	AccessView AccessLevel = "view"
	AccessEdit AccessLevel = "edit"
	AccessNone AccessLevel = "none"
)

type AllowedAccess struct {
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	AccessLevel AccessLevel        `bson:"accessLevel" json:"accessLevel"`
}

type PrivacySettings struct {
	ShowEmail     bool            `bson:"showEmail" json:"showEmail"`
	ShowPhone     bool            `bson:"showPhone" json:"showPhone"`
	ShowAddress   bool            `bson:"showAddress" json:"showAddress"`
	ShowDob       bool            `bson:"showDob" json:"showDob"`
	ProfilePublic bool            `bson:"profilePublic" json:"profilePublic"`
	AllowedAccess []AllowedAccess `bson:"allowedAccess" json:"allowedAccess"`
}

func DefaultPrivacySettings() PrivacySettings {
	return PrivacySettings{
		ShowPhone:     true,
		ProfilePublic: true,
		AllowedAccess: []AllowedAccess{},
	}
}

// NewProfile returns an empty profile with the collection defaults applied.
func NewProfile() Profile {
	return Profile{
		Children:        []primitive.ObjectID{},
		Education:       []Education{},
		Work:            []Work{},
		MarriageDetails: []MarriageDetail{},
		Events:          []Event{},
		Photos:          []Photo{},
		PrivacySettings: DefaultPrivacySettings(),
	}
}
