package sosfilt

// PadType selects the reflected-padding convention used to extend the
// signal at each end before filtering.
type PadType int

const (
	// PadOdd reflects the signal with a sign flip about the edge sample.
	PadOdd PadType = iota
	// PadEven reflects the signal without a sign flip.
	PadEven
)
