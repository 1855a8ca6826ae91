package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPermissionSetCan(t *testing.T) {
	owner := PermissionSet{PermissionAll}
	assert.True(t, owner.Can(PermissionManageUsers))
	assert.True(t, owner.Can("anything:at:all"))

	worker := PermissionSet{PermissionManageRabbits, PermissionReadBreeding}
	assert.True(t, worker.Can(PermissionManageRabbits))
	assert.False(t, worker.Can(PermissionManageUsers))
	assert.False(t, worker.Can(PermissionManageBreeding))

	var empty PermissionSet
	assert.False(t, empty.Can(PermissionManageRabbits))
}

func TestRoleRank(t *testing.T) {
	assert.Greater(t, RoleRank(RoleOwner), RoleRank(RoleManager))
	assert.Greater(t, RoleRank(RoleManager), RoleRank(RoleWorker))
	assert.Equal(t, 0, RoleRank("intruder"))
}

func TestDefaultRoles(t *testing.T) {
	roles := DefaultRoles()
	byName := make(map[string]Role, len(roles))
	for _, r := range roles {
		byName[r.Name] = r
	}

	assert.True(t, byName[RoleOwner].Permissions.Can(PermissionManageUsers))
	assert.True(t, byName[RoleManager].Permissions.Can(PermissionManageUsers))
	assert.False(t, byName[RoleWorker].Permissions.Can(PermissionManageUsers))
	assert.True(t, byName[RoleWorker].Permissions.Can(PermissionReadBreeding))
	assert.False(t, byName[RoleWorker].Permissions.Can(PermissionManageBreeding))
}
