package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/uddipan77/portfolio-tui/internal/profile"
	"github.com/uddipan77/portfolio-tui/internal/ui/styles"
)

func (m *pageModel) wrapWidth() int {
	return max(m.width-4, 20)
}

func (m *pageModel) renderSection(section sectionInfo) string {
	var body string
	switch section.id {
	case sectionAbout:
		body = m.renderAbout()
	case sectionProjects:
		body = m.renderProjects()
	case sectionCertificates:
		body = m.renderCertificates()
	case sectionSkills:
		body = m.renderSkills()
	case sectionExperience:
		body = m.renderExperience()
	case sectionEducation:
		body = m.renderEducation()
	case sectionContact:
		body = m.renderContact()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		styles.SectionTitle.Render(section.title),
		body)
}

func (m *pageModel) renderAbout() string {
	about := m.profile.About

	rows := []string{
		styles.ItemTitle.Render(about.Name),
		styles.ItemMeta.Render(about.Tagline),
		renderMarkdown(about.Body, m.wrapWidth()),
	}
	if about.Resume != "" {
		rows = append(rows, styles.DetailRow("Resume",
			styles.LinkStyle.Render(profile.AssetURL(m.baseURL, about.Resume))))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *pageModel) renderProjects() string {
	featured := styles.TabInactive
	openSource := styles.TabInactive
	if m.projectTab == profile.TabOpenSource {
		openSource = styles.TabActive
	} else {
		featured = styles.TabActive
	}

	tabs := lipgloss.JoinHorizontal(lipgloss.Top,
		zone.Mark(m.featuredZoneID, featured.Render("Featured")),
		styles.ItemMeta.Render("│"),
		zone.Mark(m.openSourceZoneID, openSource.Render("Open Source")))

	rows := []string{tabs}
	for _, project := range m.profile.Projects.List(m.projectTab) {
		rows = append(rows, m.renderProject(project))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *pageModel) renderProject(project profile.Project) string {
	badges := make([]string, 0, len(project.Tech))
	for _, tech := range project.Tech {
		badges = append(badges, styles.TechBadge.Render("["+tech+"]"))
	}

	rows := []string{
		lipgloss.JoinHorizontal(lipgloss.Top,
			styles.ItemTitle.Render(project.Name+"  "),
			strings.Join(badges, " ")),
		styles.ItemBody.Render(project.Description),
	}
	if project.URL != "" {
		rows = append(rows, styles.LinkStyle.Render(project.URL))
	}

	return lipgloss.NewStyle().PaddingBottom(1).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m *pageModel) renderCertificates() string {
	var rows []string
	for _, cert := range m.profile.Certificates {
		rows = append(rows,
			styles.ItemTitle.Render(cert.Name),
			styles.ItemMeta.Render(cert.Issuer+" · "+cert.Date),
			styles.LinkStyle.Render(profile.AssetURL(m.baseURL, cert.File)),
			"")
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *pageModel) renderSkills() string {
	var rows []string
	for _, group := range m.profile.Skills {
		rows = append(rows, styles.DetailRow(group.Category, strings.Join(group.Items, ", ")))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *pageModel) renderExperience() string {
	var rows []string
	for _, exp := range m.profile.Experience {
		rows = append(rows,
			styles.ItemTitle.Render(fmt.Sprintf("%s · %s", exp.Role, exp.Company)),
			styles.ItemMeta.Render(exp.Start+" – "+exp.End))
		for _, note := range exp.Notes {
			rows = append(rows, styles.ItemBody.Render("· "+note))
		}
		rows = append(rows, "")
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *pageModel) renderEducation() string {
	var rows []string
	for _, edu := range m.profile.Education {
		rows = append(rows,
			styles.ItemTitle.Render(edu.Degree),
			styles.ItemMeta.Render(fmt.Sprintf("%s · %s – %s", edu.School, edu.Start, edu.End)))
		if edu.Note != "" {
			rows = append(rows, styles.ItemBody.Render(edu.Note))
		}
		rows = append(rows, "")
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *pageModel) renderContact() string {
	contactInfo := m.profile.Contact

	return lipgloss.JoinVertical(lipgloss.Left,
		styles.DetailRow("Email", contactInfo.Email),
		styles.DetailRow("GitHub", styles.LinkStyle.Render(contactInfo.GitHub)),
		styles.DetailRow("LinkedIn", styles.LinkStyle.Render(contactInfo.LinkedIn)),
		"",
		styles.ItemMeta.Render("Press m to send a message without leaving the terminal."))
}

// renderMarkdown renders a markdown body for the viewport. On renderer
// errors the raw markdown is shown instead; a failed render should never
// take down the page.
func renderMarkdown(body string, width int) string {
	renderer, errRenderer := glamour.NewTermRenderer(
		glamour.WithStandardStyle(styles.GlamourStyle()),
		glamour.WithWordWrap(width))
	if errRenderer != nil {
		return body
	}

	rendered, errRender := renderer.Render(body)
	if errRender != nil {
		return body
	}

	return strings.TrimSpace(rendered)
}
