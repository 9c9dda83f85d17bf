package models

// Career is one of the fixed career tracks a bootcamp can advertise
type Career string

const (
	CareerWebDevelopment    Career = "Web Development"
	CareerMobileDevelopment Career = "Mobile Development"
	CareerUIUX              Career = "UI/UX"
	CareerDataScience       Career = "Data Science"
	CareerBusiness          Career = "Business"
	CareerOther             Career = "Other"
)

// Careers lists every accepted career track
var Careers = []Career{
	CareerWebDevelopment,
	CareerMobileDevelopment,
	CareerUIUX,
	CareerDataScience,
	CareerBusiness,
	CareerOther,
}

// IsValidCareer reports whether s names an accepted career track
func IsValidCareer(s string) bool {
	for _, c := range Careers {
		if string(c) == s {
			return true
		}
	}
	return false
}

// SkillLevel is the minimum skill a course expects
type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
)

// DefaultPhoto is stored when a bootcamp is created without a photo
const DefaultPhoto = "no-photo.jpg"
