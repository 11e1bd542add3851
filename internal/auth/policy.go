package auth

// Authorization predicates, one per operation. Each takes the caller plus
// whatever the rule needs of the target resource and answers allow/deny
// before any data access happens. Rules with an ownership or assignment
// component compose hasRole with the extra check instead of repeating
// role-string literals per handler.

func hasRole(c *Caller, allowed ...Role) bool {
	if c == nil {
		return false
	}
	for _, role := range allowed {
		if c.Role == role {
			return true
		}
	}
	return false
}

func CanListEmployees(c *Caller) bool {
	return hasRole(c, RoleCommercial, RoleHR, RoleTechnical)
}

func CanViewEmployee(c *Caller) bool {
	return hasRole(c, RoleCommercial, RoleHR, RoleTechnical)
}

func CanCreateEmployee(c *Caller) bool {
	return hasRole(c, RoleHR)
}

// CanListEmployeeTasks allows Technical callers for any employee and
// Development callers only for themselves.
func CanListEmployeeTasks(c *Caller, employeeDNI string) bool {
	if !hasRole(c, RoleTechnical, RoleDevelopment) {
		return false
	}
	if c.Role == RoleDevelopment && c.DNI != employeeDNI {
		return false
	}
	return true
}

// CanCreateTask covers only the role half of the rule; the project-match
// half runs after validation, once the task's project is resolved.
func CanCreateTask(c *Caller) bool {
	return hasRole(c, RoleTechnical)
}

// TaskProjectMatchesCaller is the second gate on task creation: the task
// must land on the caller's own assigned project.
func TaskProjectMatchesCaller(c *Caller, projectID int64) bool {
	return c != nil && c.AssignedTo(projectID)
}

func CanListAllVacations(c *Caller) bool {
	return hasRole(c, RoleHR)
}

// CanCreateVacation is self-service only; HR cannot file on behalf of
// another employee through this operation.
func CanCreateVacation(c *Caller, employeeDNI string) bool {
	return c != nil && c.DNI == employeeDNI
}

func CanPatchVacation(c *Caller) bool {
	return hasRole(c, RoleHR)
}

func CanListEmployeeVacations(c *Caller, employeeDNI string) bool {
	if hasRole(c, RoleHR) {
		return true
	}
	return c != nil && c.DNI == employeeDNI
}

func CanListProjects(c *Caller) bool {
	return hasRole(c, RoleCommercial)
}

// CanViewProject also gates the project detour listing: Commercial sees any
// project, Technical only the one they are assigned to.
func CanViewProject(c *Caller, projectID int64) bool {
	if !hasRole(c, RoleCommercial, RoleTechnical) {
		return false
	}
	if c.Role == RoleTechnical && !c.AssignedTo(projectID) {
		return false
	}
	return true
}

func CanCreateDetour(c *Caller, projectID int64) bool {
	return hasRole(c, RoleTechnical) && c.AssignedTo(projectID)
}

func CanListProjectTasks(c *Caller, projectID int64) bool {
	return hasRole(c, RoleTechnical) && c.AssignedTo(projectID)
}

func CanListProjectEmployees(c *Caller) bool {
	return hasRole(c, RoleTechnical, RoleCommercial)
}
