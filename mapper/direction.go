package mapper

//go:generate go tool stringer -type=Direction -output=direction_string.go

// Direction selects which record a Copy writes to.
type Direction int

const (
	_ Direction = iota // zero value is not a valid direction

	// ToPrimary pulls values from the other record into the primary record.
	ToPrimary
	// FromPrimary pushes values from the primary record into the other record.
	FromPrimary
)

// IsValid reports whether d is ToPrimary or FromPrimary.
func (d Direction) IsValid() bool {
	return d == ToPrimary || d == FromPrimary
}
