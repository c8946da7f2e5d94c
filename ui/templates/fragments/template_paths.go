// Package fragments provides template path constants for organized template management
package fragments

// Page templates
const (
	WelcomePage = "welcome.html"
	IFCPage     = "ifc.html"
	ExcelPage   = "excel.html"
)

// Layout templates, shared by every page
const (
	Header  = "layout/header.html"
	Sidebar = "layout/sidebar.html"
	Footer  = "layout/footer.html"
)

// WelcomeMarkdown is the help text rendered on the welcome page
const WelcomeMarkdown = "welcome.md"

// Pages lists the templates a server must be able to render
func Pages() []string {
	return []string{WelcomePage, IFCPage, ExcelPage}
}
