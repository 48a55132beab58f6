package ui

// sectionID enumerates the page sections in declared order. The tracker and
// the nav both rely on this order; it never changes at runtime.
type sectionID int

const (
	sectionAbout sectionID = iota
	sectionProjects
	sectionCertificates
	sectionSkills
	sectionExperience
	sectionEducation
	sectionContact
)

type sectionInfo struct {
	id    sectionID
	title string
}

var declaredSections = []sectionInfo{
	{id: sectionAbout, title: "About"},
	{id: sectionProjects, title: "Projects"},
	{id: sectionCertificates, title: "Certificates"},
	{id: sectionSkills, title: "Skills"},
	{id: sectionExperience, title: "Experience"},
	{id: sectionEducation, title: "Education"},
	{id: sectionContact, title: "Contact"},
}

func lastSection() sectionID {
	return declaredSections[len(declaredSections)-1].id
}
