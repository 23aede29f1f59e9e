package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette. Dark background, arcade accents.
var (
	Primary   = lipgloss.Color("#8B5CF6") // Vivid Purple
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate

	ArcadeYellow = lipgloss.Color("#FACC15")
	ArcadeCyan   = lipgloss.Color("#22D3EE")
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	// Problem is the large prompt of the drill screen.
	Problem = lipgloss.NewStyle().
		Bold(true).
		Foreground(Text).
		Align(lipgloss.Center)
)

// Feedback
var (
	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Retry = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)

	NewBest = lipgloss.NewStyle().
		Foreground(ArcadeYellow).
		Bold(true)
)

// Drill status line
var (
	Timer = lipgloss.NewStyle().
		Foreground(ArcadeCyan).
		Bold(true)

	// TimerLow is used once a deadline countdown drops under a few seconds.
	TimerLow = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Streak = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)

	Best = lipgloss.NewStyle().
		Foreground(ArcadeYellow)

	DotCorrect = lipgloss.NewStyle().
			Foreground(Success)

	DotIncorrect = lipgloss.NewStyle().
			Foreground(Error)
)

// Input
var (
	AnswerBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 2)

	AnswerBoxLocked = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)

// Menus
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Detail = lipgloss.NewStyle().
		Foreground(ArcadeYellow)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	ProgressGood = lipgloss.NewStyle().
			Background(Success)

	ProgressFair = lipgloss.NewStyle().
			Background(Accent)

	ProgressPoor = lipgloss.NewStyle().
			Background(Error)
)
