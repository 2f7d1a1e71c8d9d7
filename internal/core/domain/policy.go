package domain

// Resource names a protected resource class.
type Resource string

const (
	ResourceJob      Resource = "job"
	ResourceOpenJobs Resource = "open_jobs"
	ResourceQuote    Resource = "quote"
	ResourceProfile  Resource = "profile"
)

// Action names an operation on a resource.
type Action string

const (
	ActionList   Action = "list"
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
)

// capabilities is the single role → permission table. Handlers and
// services consult CanAccess instead of comparing role strings inline.
var capabilities = map[Resource]map[Action][]string{
	ResourceJob: {
		ActionList:   {RoleCustomer, RoleProfessional, RoleAdmin},
		ActionRead:   {RoleCustomer, RoleProfessional, RoleAdmin},
		ActionCreate: {RoleCustomer, RoleProfessional, RoleAdmin},
		ActionUpdate: {RoleCustomer, RoleProfessional, RoleAdmin},
	},
	ResourceOpenJobs: {
		ActionList: {RoleProfessional},
	},
	ResourceQuote: {
		ActionList:   {RoleCustomer, RoleProfessional, RoleAdmin},
		ActionCreate: {RoleProfessional},
	},
	ResourceProfile: {
		ActionRead:   {RoleCustomer, RoleProfessional, RoleAdmin},
		ActionUpdate: {RoleCustomer, RoleProfessional, RoleAdmin},
	},
}

// CanAccess reports whether the user's role permits action on resource.
// Per-record ownership checks are separate (see CanViewJob).
func CanAccess(u *User, resource Resource, action Action) bool {
	if u == nil {
		return false
	}
	for _, role := range capabilities[resource][action] {
		if u.Role == role {
			return true
		}
	}
	return false
}

// CanViewJob reports whether the user may see an individual job:
// professionals see every job, other roles only their own.
func CanViewJob(u *User, job *Job) bool {
	if u == nil || job == nil {
		return false
	}
	return u.Role == RoleProfessional || job.CustomerID == u.ID
}
