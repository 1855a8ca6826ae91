package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// PermissionAll grants every capability.
const PermissionAll = "all"

const (
	PermissionManageUsers    = "users:manage"
	PermissionManageRabbits  = "rabbits:manage"
	PermissionManageBreeding = "breeding:manage"
	PermissionReadBreeding   = "breeding:read"
	PermissionManageKits     = "kits:manage"
)

type PermissionSet []string

func (ps PermissionSet) Can(capability string) bool {
	for _, p := range ps {
		if p == PermissionAll || p == capability {
			return true
		}
	}
	return false
}

type Role struct {
	RoleID      int            `gorm:"primaryKey;autoIncrement" json:"role_id"`
	Name        string         `gorm:"type:varchar(30);not null;unique" json:"name" valid:"required~Role name is required"`
	Permissions PermissionSet  `gorm:"serializer:json" json:"permissions"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

var roleRanks = map[string]int{
	RoleOwner:   3,
	RoleManager: 2,
	RoleWorker:  1,
}

const (
	RoleOwner   = "owner"
	RoleManager = "manager"
	RoleWorker  = "worker"
)

// RoleRank returns 0 for unknown role names, which outranks nothing.
func RoleRank(name string) int {
	return roleRanks[name]
}

func (r *Role) Rank() int {
	return RoleRank(r.Name)
}

func DefaultRoles() []Role {
	return []Role{
		{Name: RoleOwner, Permissions: PermissionSet{PermissionAll}},
		{Name: RoleManager, Permissions: PermissionSet{
			PermissionManageUsers,
			PermissionManageRabbits,
			PermissionManageBreeding,
			PermissionManageKits,
		}},
		{Name: RoleWorker, Permissions: PermissionSet{
			PermissionManageRabbits,
			PermissionReadBreeding,
			PermissionManageKits,
		}},
	}
}

type RoleRepo interface {
	GetRoleByName(ctx context.Context, name string) (*Role, error)
	GetAllRoles(ctx context.Context) (*[]Role, error)
}

type RoleUseCase interface {
	GetRoleByName(ctx context.Context, name string) (*Role, error)
	GetAllRoles(ctx context.Context) (*[]Role, error)
}
