package ports

type MarkerKind int

const (
	MarkerLow MarkerKind = iota
	MarkerHigh
)

// MarkerRenderer draws one chart marker. Implementations decide the styling.
type MarkerRenderer interface {
	Marker(kind MarkerKind) string
}
