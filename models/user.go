package models

import (
	"net/url"
	"strings"
	"time"
)

// Role is the ordered subscription tier gating what an account may do.
type Role int

const (
	RoleStudent    Role = 1
	RoleTutor      Role = 2
	RoleFreelancer Role = 3
	RoleMentor     Role = 4
)

func (r Role) String() string {
	switch r {
	case RoleStudent:
		return "Student"
	case RoleTutor:
		return "Tutor"
	case RoleFreelancer:
		return "Freelancer"
	case RoleMentor:
		return "Mentor"
	}
	return "Unknown"
}

// Capability predicates. Pure functions of the role level; no I/O.

func (r Role) CanBrowse() bool { return true }

func (r Role) CanPostTutorListing() bool { return r >= RoleTutor }

func (r Role) CanTakeJobs() bool { return r >= RoleFreelancer }

func (r Role) CanPostMentorListing() bool { return r >= RoleMentor }

// User is a marketplace account. A user acts as a provider once they own
// listings, and as a student when booking someone else's.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Username     string    `bson:"username" json:"username"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	FirstName    string    `bson:"firstName,omitempty" json:"firstName,omitempty"`
	LastName     string    `bson:"lastName,omitempty" json:"lastName,omitempty"`
	RoleLevel    Role      `bson:"roleLevel" json:"roleLevel"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// DisplayName returns the most user-friendly name to show for the account.
func (u User) DisplayName() string {
	full := strings.TrimSpace(strings.TrimSpace(u.FirstName) + " " + strings.TrimSpace(u.LastName))
	if full != "" {
		return full
	}
	return u.Username
}

// AvatarURL generates a deterministic avatar URL based on the user's name.
func (u User) AvatarURL() string {
	name := u.DisplayName()
	if name == "" {
		name = u.Username
	}
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(name) +
		"&background=random&color=ffffff&size=128"
}
