package models

// Mode selects how GET /choice draws.
type Mode string

const (
	ModeRandom   Mode = "random"
	ModeFull     Mode = "full"
	ModeHalfPair Mode = "half-pair"
)

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m == ModeRandom || m == ModeFull || m == ModeHalfPair
}

// ChoiceType tags a Choice as a single full item or a pair of halves.
type ChoiceType string

const (
	ChoiceFull     ChoiceType = "full"
	ChoiceHalfPair ChoiceType = "half-pair"
)

// Choice is the result of a daily draw. Items is empty (never nil) when
// nothing could be drawn; Text then explains why.
type Choice struct {
	Type  ChoiceType   `json:"type"  example:"full"`
	Items []PublicItem `json:"items"`
	Text  string       `json:"text"  example:"Today's hard thing: Cold shower"`
} // @name Choice

// Empty reports whether the choice carries no items.
func (c Choice) Empty() bool {
	return len(c.Items) == 0
}
