package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDateSafely(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "empty", raw: "", want: NotSet},
		{name: "whitespace only", raw: "   ", want: NotSet},
		{name: "garbage", raw: "not-a-date", want: DateNotAvailable},
		{name: "rfc3339", raw: "2025-01-25T17:24:00Z", want: "Jan 25, 2025, 5:24 PM"},
		{name: "no timezone", raw: "2025-01-25T17:24:00", want: "Jan 25, 2025, 5:24 PM"},
		{name: "space separated", raw: "2025-01-25 17:24:00", want: "Jan 25, 2025, 5:24 PM"},
		{name: "date only", raw: "2025-01-25", want: "Jan 25, 2025, 12:00 AM"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatDateSafely(tc.raw))
		})
	}
}

func TestStatusMapDescribe(t *testing.T) {
	statuses := StatusMap{1: "Open", 2: "In Progress"}

	assert.Equal(t, "Open", statuses.Describe(1))
	assert.Equal(t, "Unknown", statuses.Describe(99))
	assert.Equal(t, "Unknown", StatusMap(nil).Describe(1))
}

func TestUserDisplayName(t *testing.T) {
	assert.Equal(t, "Ana Reyes", User{ID: 1, FirstName: "Ana", LastName: "Reyes"}.DisplayName())
	assert.Equal(t, "areyes", User{ID: 1, Username: "areyes"}.DisplayName())
	assert.Equal(t, "User 7", User{ID: 7}.DisplayName())
}

func TestRolePortalRules(t *testing.T) {
	assert.True(t, RoleUser.AllowedOn(PortalUser))
	assert.False(t, RoleUser.AllowedOn(PortalTech))
	assert.True(t, RoleTechnician.AllowedOn(PortalTech))
	assert.False(t, RoleTechnician.AllowedOn(PortalUser))
	assert.True(t, RoleAdmin.AllowedOn(PortalTech))
	assert.False(t, RoleAdmin.AllowedOn(PortalUser))

	assert.Equal(t, "/portal/user/dashboard", RoleUser.DashboardPath())
	assert.Equal(t, "/portal/tech/dashboard", RoleTechnician.DashboardPath())
	assert.Equal(t, "/portal/tech/dashboard", RoleAdmin.DashboardPath())
}
