package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type ownedObj struct{ owner int64 }

func (o ownedObj) OwnerID() int64 { return o.owner }

func TestPermissionLevels(t *testing.T) {
	assert.True(t, PermissionRead.Level() < PermissionEdit.Level())
	assert.True(t, PermissionEdit.Level() < PermissionAdmin.Level())
	assert.False(t, Permission("write").Valid())
	assert.True(t, PermissionRead.Valid())
}

func TestRequireRole(t *testing.T) {
	assert.Error(t, RequireRole(nil, RoleUser))
	assert.Error(t, RequireRole(&Actor{}, RoleUser))
	assert.NoError(t, RequireRole(&Actor{ID: 1}, RoleUser))

	assert.Error(t, RequireRole(&Actor{ID: 1}, RoleAdmin))
	assert.NoError(t, RequireRole(&Actor{ID: 1, IsAdmin: true}, RoleAdmin))
	assert.NoError(t, RequireRole(&Actor{ID: 1, IsSuperuser: true}, RoleAdmin))
	assert.NoError(t, RequireRole(&Actor{ID: 1, IsStaff: true}, RoleAdmin))
}

func TestCheck(t *testing.T) {
	obj := ownedObj{owner: 1}
	owner := &Actor{ID: 1}
	stranger := &Actor{ID: 2}
	admin := &Actor{ID: 3, IsAdmin: true}

	assert.True(t, Check(owner, obj, nil).Allowed)
	assert.True(t, Check(admin, obj, nil, PermissionAdmin).Allowed)
	assert.False(t, Check(stranger, obj, nil).Allowed)
	assert.False(t, Check(nil, obj, nil).Allowed)

	grants := []Grant{{UserID: 2, Permission: PermissionEdit}}
	assert.True(t, Check(stranger, obj, grants, PermissionRead).Allowed)
	assert.True(t, Check(stranger, obj, grants, PermissionEdit).Allowed)
	assert.False(t, Check(stranger, obj, grants, PermissionAdmin).Allowed)
	assert.False(t, Check(&Actor{ID: 4}, obj, grants, PermissionRead).Allowed)
}

// 查看权限不给平台管理员开后门，只有归属者和被共享者可见
func TestCanView(t *testing.T) {
	obj := ownedObj{owner: 1}
	grants := []Grant{{UserID: 2, Permission: PermissionRead}}

	assert.True(t, CanView(&Actor{ID: 1}, obj, nil))
	assert.True(t, CanView(&Actor{ID: 2}, obj, grants))
	assert.False(t, CanView(&Actor{ID: 3, IsAdmin: true, IsSuperuser: true}, obj, grants))
	assert.False(t, CanView(nil, obj, grants))
}

func TestCanEdit(t *testing.T) {
	obj := ownedObj{owner: 1}

	assert.True(t, CanEdit(&Actor{ID: 1}, obj, nil))
	assert.False(t, CanEdit(&Actor{ID: 2}, obj, []Grant{{UserID: 2, Permission: PermissionRead}}))
	assert.True(t, CanEdit(&Actor{ID: 2}, obj, []Grant{{UserID: 2, Permission: PermissionEdit}}))
	assert.True(t, CanEdit(&Actor{ID: 2}, obj, []Grant{{UserID: 2, Permission: PermissionAdmin}}))
}

func TestValidateObjectOwner(t *testing.T) {
	obj := ownedObj{owner: 1}
	assert.NoError(t, ValidateObjectOwner(&Actor{ID: 1}, obj))
	assert.Error(t, ValidateObjectOwner(&Actor{ID: 2}, obj))
	assert.Error(t, ValidateObjectOwner(nil, obj))
}
