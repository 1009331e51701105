package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	branchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	hashStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// ColorBranchName colors a branch name for console output
func ColorBranchName(branchName string) string {
	return branchStyle.Render(branchName)
}

// ColorCommitHash colors a commit hash for console output
func ColorCommitHash(hash string) string {
	return hashStyle.Render(hash)
}

// ColorNotice colors a notice line, such as branch auto-creation
func ColorNotice(text string) string {
	return noticeStyle.Render(text)
}
