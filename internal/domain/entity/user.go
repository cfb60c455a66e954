package entity

import (
	"time"
)

const (
	RoleStudent = "student"
	RoleLibrary = "library"
	RoleAdmin   = "admin"
)

const (
	KYCPending  = "pending"
	KYCVerified = "verified"
	KYCRejected = "rejected"
)

type Location struct {
	Address string `json:"address,omitempty" firestore:"address,omitempty"`
	City    string `json:"city,omitempty" firestore:"city,omitempty"`
	State   string `json:"state,omitempty" firestore:"state,omitempty"`
	Pincode string `json:"pincode,omitempty" firestore:"pincode,omitempty"`
}

type KYCDocument struct {
	Type string `json:"type" firestore:"type"`
	URL  string `json:"url" firestore:"url"`
}

type Rating struct {
	Average float64 `json:"average" firestore:"average"`
	Count   int     `json:"count" firestore:"count"`
}

// AddRating folds a new rating into the running average.
func (r *Rating) AddRating(value int) {
	total := r.Average * float64(r.Count)
	r.Count++
	r.Average = (total + float64(value)) / float64(r.Count)
}

type User struct {
	ID    string `json:"id" firestore:"id"`
	Email string `json:"email" firestore:"email"`
	Name  string `json:"name" firestore:"name"`
	Phone string `json:"phone,omitempty" firestore:"phone,omitempty"`
	Role  string `json:"role" firestore:"role"`

	AvatarURL         string   `json:"avatar_url,omitempty" firestore:"avatarUrl,omitempty"`
	AcademicInterests []string `json:"academic_interests,omitempty" firestore:"academicInterests,omitempty"`

	// Library accounts only. Required when Role is "library".
	LibraryName string `json:"library_name,omitempty" firestore:"libraryName,omitempty"`
	GSTNumber   string `json:"gst_number,omitempty" firestore:"gstNumber,omitempty"`

	Location Location `json:"location,omitempty" firestore:"location,omitempty"`

	KYCStatus    string        `json:"kyc_status" firestore:"kycStatus"`
	KYCDocuments []KYCDocument `json:"kyc_documents,omitempty" firestore:"kycDocuments,omitempty"`

	Rating Rating `json:"rating" firestore:"rating"`

	IsActive bool `json:"is_active" firestore:"isActive"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// CanSell reports whether this account may create listings. Library accounts
// must pass KYC first; students may sell right away.
func (u *User) CanSell() bool {
	if !u.IsActive {
		return false
	}
	if u.Role == RoleLibrary {
		return u.KYCStatus == KYCVerified
	}
	return true
}
