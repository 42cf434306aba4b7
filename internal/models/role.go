package models

// Employee role constants.
//
// Intake files new cases and may reclaim a case from clarification back to
// new, but only for cases it owns. CaseWorker processes cases within its own
// department and holds a per-case exclusive lock while doing so. DataSteward
// is a read-oriented administrative role with no transition rights.
const (
	RoleIntake      = "intake"
	RoleCaseWorker  = "case_worker"
	RoleDataSteward = "data_steward"
)

// Roles lists all valid employee roles.
var Roles = []string{RoleIntake, RoleCaseWorker, RoleDataSteward}

// ValidRole reports whether r is a known employee role.
func ValidRole(r string) bool {
	for _, v := range Roles {
		if r == v {
			return true
		}
	}
	return false
}
