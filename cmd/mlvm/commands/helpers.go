package commands

import "github.com/fatih/color"

var (
	highlight = color.New(color.FgGreen, color.Bold).SprintFunc()
	dim       = color.New(color.FgHiBlack).SprintFunc()
)
