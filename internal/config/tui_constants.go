package config

// Layout constants.
const (
	// MinTitleWidth is the minimum width for article titles.
	MinTitleWidth = 10

	// TargetTitleWidth is the preferred width for article titles.
	TargetTitleWidth = 80

	// SourceColumnWidth is the width reserved for the publisher name.
	SourceColumnWidth = 18

	// MaxVisibleArticles limits rows shown before the list scrolls.
	MaxVisibleArticles = 15

	// MaxVisibleToasts limits stacked notifications.
	MaxVisibleToasts = 3

	// SearchInputWidth is the width of the search field.
	SearchInputWidth = 50
)

// Input constraints.
const (
	// MaxSearchTermLength is the maximum search term length.
	MaxSearchTermLength = 200
)
