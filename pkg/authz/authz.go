package authz

import (
	"notely/pkg/response"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Permission 共享权限等级，read < edit < admin，高等级覆盖低等级
type Permission string

const (
	PermissionRead  Permission = "read"
	PermissionEdit  Permission = "edit"
	PermissionAdmin Permission = "admin"
)

func (p Permission) Level() int {
	switch p {
	case PermissionRead:
		return 1
	case PermissionEdit:
		return 2
	case PermissionAdmin:
		return 3
	default:
		return 0
	}
}

func (p Permission) Valid() bool {
	return p.Level() > 0
}

// Actor 鉴权视角下的用户快照，由调用方加载后传入
type Actor struct {
	ID          int64
	Username    string
	IsSuperuser bool
	IsStaff     bool
	IsAdmin     bool
}

func (a *Actor) HasAdminRole() bool {
	return a != nil && (a.IsAdmin || a.IsSuperuser || a.IsStaff)
}

// Grant 某个用户对某条笔记的共享授权
type Grant struct {
	UserID     int64
	Permission Permission
}

// Owned 归属单一用户的资源
type Owned interface {
	OwnerID() int64
}

// Decision 鉴权结果
type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// RequireRole 要求用户已认证，admin 角色要求 profile 标记或平台级 superuser/staff
func RequireRole(actor *Actor, role Role) error {
	if actor == nil || actor.ID == 0 {
		return response.Unauthorized("authentication required")
	}
	if role == RoleAdmin && !actor.HasAdminRole() {
		return response.Forbidden("admin privileges required")
	}
	return nil
}

// ValidateObjectOwner 仅允许资源归属者
func ValidateObjectOwner(actor *Actor, obj Owned) error {
	if actor == nil || obj == nil || obj.OwnerID() != actor.ID {
		return response.Forbidden("you don't have permission to access this object")
	}
	return nil
}

// Check 能力检查：管理员与归属者直接放行，其余看共享授权是否覆盖全部所需权限
func Check(actor *Actor, obj Owned, grants []Grant, required ...Permission) Decision {
	if actor == nil || actor.ID == 0 {
		return deny("authentication required")
	}
	if len(required) == 0 {
		required = []Permission{PermissionRead}
	}
	if actor.HasAdminRole() {
		return allow()
	}
	if obj != nil && obj.OwnerID() == actor.ID {
		return allow()
	}
	for _, g := range grants {
		if g.UserID != actor.ID {
			continue
		}
		for _, p := range required {
			if g.Permission.Level() < p.Level() {
				return deny("sharing grant does not cover " + string(p) + " permission")
			}
		}
		return allow()
	}
	return deny("no sharing grant for this object")
}

// ValidateObjectPermission Check 的错误形式
func ValidateObjectPermission(actor *Actor, obj Owned, grants []Grant, required ...Permission) error {
	if d := Check(actor, obj, grants, required...); !d.Allowed {
		if d.Reason == "authentication required" {
			return response.Unauthorized(d.Reason)
		}
		return response.Forbidden(d.Reason)
	}
	return nil
}

// CanView 归属者或任意共享授权可读
func CanView(actor *Actor, obj Owned, grants []Grant) bool {
	if actor == nil || obj == nil {
		return false
	}
	if obj.OwnerID() == actor.ID {
		return true
	}
	for _, g := range grants {
		if g.UserID == actor.ID {
			return true
		}
	}
	return false
}

// CanEdit 归属者或 edit/admin 级授权可写
func CanEdit(actor *Actor, obj Owned, grants []Grant) bool {
	if actor == nil || obj == nil {
		return false
	}
	if obj.OwnerID() == actor.ID {
		return true
	}
	for _, g := range grants {
		if g.UserID == actor.ID && g.Permission.Level() >= PermissionEdit.Level() {
			return true
		}
	}
	return false
}
