package main

import "github.com/charmbracelet/lipgloss"

// Style controls the playground's rendering.
type Style struct {
	Label  lipgloss.Style
	Value  lipgloss.Style
	Header lipgloss.Style
	Row    lipgloss.Style
	Output lipgloss.Style
	Error  lipgloss.Style
	Help   lipgloss.Style
}

func DefaultStyle() Style {
	return NewStyle(lipgloss.DefaultRenderer())
}

// NewStyle builds the default palette on r.
func NewStyle(r *lipgloss.Renderer) Style {
	muted := r.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Label:  muted,
		Value:  r.NewStyle().Foreground(lipgloss.Color("86")).Bold(true),
		Header: r.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Row:    r.NewStyle(),
		Output: r.NewStyle().Foreground(lipgloss.Color("220")),
		Error:  r.NewStyle().Foreground(lipgloss.Color("196")),
		Help:   muted,
	}
}
