package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapabilityLadder(t *testing.T) {
	// Each tier keeps everything the tiers below it can do.
	for _, r := range []Role{RoleStudent, RoleTutor, RoleFreelancer, RoleMentor} {
		assert.True(t, r.CanBrowse())
	}

	assert.False(t, RoleStudent.CanPostTutorListing())
	assert.True(t, RoleTutor.CanPostTutorListing())
	assert.True(t, RoleFreelancer.CanPostTutorListing())
	assert.True(t, RoleMentor.CanPostTutorListing())

	assert.False(t, RoleStudent.CanTakeJobs())
	assert.False(t, RoleTutor.CanTakeJobs())
	assert.True(t, RoleFreelancer.CanTakeJobs())
	assert.True(t, RoleMentor.CanTakeJobs())

	assert.False(t, RoleFreelancer.CanPostMentorListing())
	assert.True(t, RoleMentor.CanPostMentorListing())
}

func TestRoleString(t *testing.T) {
	assert.Equal(t, "Student", RoleStudent.String())
	assert.Equal(t, "Mentor", RoleMentor.String())
	assert.Equal(t, "Unknown", Role(9).String())
}

func TestUserDisplayName(t *testing.T) {
	u := User{Username: "jdoe"}
	assert.Equal(t, "jdoe", u.DisplayName())

	u.FirstName = "Jane"
	assert.Equal(t, "Jane", u.DisplayName())

	u.LastName = "Doe"
	assert.Equal(t, "Jane Doe", u.DisplayName())
	assert.Contains(t, u.AvatarURL(), "Jane+Doe")
}

func TestBusyIntervalOverlaps(t *testing.T) {
	b := BusyInterval{Start: 600, End: 660}

	assert.True(t, b.Overlaps(600, 660))  // identical
	assert.True(t, b.Overlaps(630, 690))  // straddles the end
	assert.True(t, b.Overlaps(570, 630))  // straddles the start
	assert.True(t, b.Overlaps(540, 720))  // engulfs
	assert.False(t, b.Overlaps(540, 600)) // back-to-back before
	assert.False(t, b.Overlaps(660, 720)) // back-to-back after
}
