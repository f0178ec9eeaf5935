package entity

// AccessLevel orders caller privileges: anonymous < user < admin.
type AccessLevel int

const (
	AccessAnonymous AccessLevel = iota
	AccessUser
	AccessAdmin
)

func (l AccessLevel) String() string {
	switch l {
	case AccessAdmin:
		return "admin"
	case AccessUser:
		return "user"
	default:
		return "anonymous"
	}
}

// Caller is the identity a request acts on behalf of. The zero value is an
// anonymous caller.
type Caller struct {
	UserID int64
	Roles  []UserRole
}

func Anonymous() Caller {
	return Caller{}
}

func NewCaller(userID int64, roles []UserRole) Caller {
	return Caller{UserID: userID, Roles: roles}
}

func (c Caller) IsAuthenticated() bool {
	return c.UserID != 0
}

func (c Caller) IsAdmin() bool {
	return c.Level() == AccessAdmin
}

// Level resolves the highest privilege the caller holds.
func (c Caller) Level() AccessLevel {
	if !c.IsAuthenticated() {
		return AccessAnonymous
	}
	for _, r := range c.Roles {
		if r == UserRoleAdmin {
			return AccessAdmin
		}
	}
	return AccessUser
}
