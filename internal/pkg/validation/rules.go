package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`

	// Course code pattern, e.g. ECE302H1
	CourseCodePattern = `^[A-Z]{2,4}[0-9]{3}[HY][0-9]$`

	// Semester id pattern: year 1-4 plus F (Fall) or S (Winter)
	SemesterIDPattern = `^[1-4][FS]$`

	// Password min length
	PasswordMinLength = 8

	// Plan name min/max length
	NameMinLength = 1
	NameMaxLength = 100
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	Email      *regexp.Regexp
	CourseCode *regexp.Regexp
	SemesterID *regexp.Regexp
}{
	Email:      regexp.MustCompile(EmailPattern),
	CourseCode: regexp.MustCompile(CourseCodePattern),
	SemesterID: regexp.MustCompile(SemesterIDPattern),
}

// IsValidEmail checks an email address against the pattern
func IsValidEmail(email string) bool {
	return CompiledPatterns.Email.MatchString(email)
}

// IsValidCourseCode checks a course code against the pattern
func IsValidCourseCode(code string) bool {
	return CompiledPatterns.CourseCode.MatchString(code)
}

// IsValidSemesterID checks a semester id against the pattern
func IsValidSemesterID(id string) bool {
	return CompiledPatterns.SemesterID.MatchString(id)
}

// IsValidPassword checks the minimum password requirements
func IsValidPassword(password string) bool {
	return len(password) >= PasswordMinLength
}

// IsValidPlanName checks plan name length bounds
func IsValidPlanName(name string) bool {
	return len(name) >= NameMinLength && len(name) <= NameMaxLength
}
