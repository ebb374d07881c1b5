package constants

import "fmt"

// Role discriminator yang dibawa di klaim JWT
const (
	RoleQuranTeacher    = "quran_teacher"
	RoleAcademicTeacher = "academic_teacher"
	RoleStudent         = "student"
	RoleParent          = "parent"
	RoleAdmin           = "admin"
	RoleOwner           = "owner"
)

// Template pesan error role
const (
	ErrOnlyTeachersCanAccess = "❌ Hanya teacher atau admin yang boleh mengakses fitur %s."
	ErrOnlyAdminsCanAccess   = "❌ Hanya admin yang boleh mengakses fitur %s."
)

func RoleErrorTeacher(feature string) string {
	return fmt.Sprintf(ErrOnlyTeachersCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	TeacherRoles = []string{
		RoleQuranTeacher,
		RoleAcademicTeacher,
	}

	ViewerRoles = []string{
		RoleQuranTeacher,
		RoleAcademicTeacher,
		RoleStudent,
		RoleParent,
		RoleAdmin,
	}
)

func IsTeacherRole(role string) bool {
	for _, r := range TeacherRoles {
		if r == role {
			return true
		}
	}
	return false
}
