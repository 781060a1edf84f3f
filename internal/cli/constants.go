package cli

// Default values for CLI flags and formatted output.
const (
	// TabWidth is the width of tabs in formatted output.
	TabWidth = 2
	// MaxDescriptionLength is the maximum length of a tool description to display.
	MaxDescriptionLength = 50
)
