// Package policy decides which caller may perform which action on which
// resource.
package policy

import "github.com/judoclub/clubsite/internal/domain/entity"

type Action string

const (
	ActionList         Action = "list"
	ActionRead         Action = "read"
	ActionCreate       Action = "create"
	ActionUpdate       Action = "update"
	ActionDelete       Action = "delete"
	ActionListAll      Action = "list_all"
	ActionUpdateStatus Action = "update_status"
	ActionExport       Action = "export"
)

type Resource string

const (
	ResourceInstructor     Resource = "instructor"
	ResourceSchedule       Resource = "schedule"
	ResourceEvent          Resource = "event"
	ResourceNews           Resource = "news"
	ResourceGalleryItem    Resource = "gallery_item"
	ResourceRegistration   Resource = "registration"
	ResourceContactMessage Resource = "contact_message"
	ResourceProfile        Resource = "profile"
	ResourceDashboard      Resource = "dashboard"
)

// publicContent is readable by anyone and writable by admins only.
var publicContent = map[Action]entity.AccessLevel{
	ActionList:   entity.AccessAnonymous,
	ActionRead:   entity.AccessAnonymous,
	ActionCreate: entity.AccessAdmin,
	ActionUpdate: entity.AccessAdmin,
	ActionDelete: entity.AccessAdmin,
}

// rules maps each resource action to the minimum access level. Missing
// entries are denied to everyone.
var rules = map[Resource]map[Action]entity.AccessLevel{
	ResourceInstructor:  publicContent,
	ResourceSchedule:    publicContent,
	ResourceEvent:       publicContent,
	ResourceNews:        publicContent,
	ResourceGalleryItem: publicContent,
	ResourceRegistration: {
		ActionList:    entity.AccessUser,
		ActionRead:    entity.AccessUser,
		ActionCreate:  entity.AccessUser,
		ActionUpdate:  entity.AccessUser,
		ActionListAll: entity.AccessAdmin,
		ActionDelete:  entity.AccessAdmin,
		ActionExport:  entity.AccessAdmin,
	},
	ResourceContactMessage: {
		ActionCreate:       entity.AccessAnonymous,
		ActionList:         entity.AccessAdmin,
		ActionRead:         entity.AccessAdmin,
		ActionUpdateStatus: entity.AccessAdmin,
		ActionDelete:       entity.AccessAdmin,
	},
	ResourceProfile: {
		ActionCreate: entity.AccessAnonymous,
		ActionRead:   entity.AccessUser,
		ActionUpdate: entity.AccessUser,
	},
	ResourceDashboard: {
		ActionRead: entity.AccessAdmin,
	},
}

// CanPerform reports whether caller holds the access level required for
// action on resource.
func CanPerform(caller entity.Caller, action Action, resource Resource) bool {
	required, ok := requiredLevel(action, resource)
	if !ok {
		return false
	}
	return caller.Level() >= required
}

// Authorize is CanPerform as an error. An anonymous caller that lacks access
// gets ErrUnauthenticated so that it can be told to log in; anyone else gets
// ErrForbidden.
func Authorize(caller entity.Caller, action Action, resource Resource) error {
	if CanPerform(caller, action, resource) {
		return nil
	}
	if !caller.IsAuthenticated() {
		if required, ok := requiredLevel(action, resource); ok && required > entity.AccessAnonymous {
			return entity.ErrUnauthenticated
		}
	}
	return entity.ErrForbidden
}

// CanAccessRegistration applies the ownership rule: admins see every
// registration, members only their own.
func CanAccessRegistration(caller entity.Caller, registration *entity.Registration) bool {
	if caller.IsAdmin() {
		return true
	}
	return caller.IsAuthenticated() && registration.UserID == caller.UserID
}

func requiredLevel(action Action, resource Resource) (entity.AccessLevel, bool) {
	actions, ok := rules[resource]
	if !ok {
		return 0, false
	}
	level, ok := actions[action]
	return level, ok
}
