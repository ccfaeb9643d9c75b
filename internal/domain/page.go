package domain

var (
	// ErrFromNegative is returned when a page request starts before zero.
	ErrFromNegative = NewError(KindBadRequest, "FROM_NEGATIVE", "parameter from must not be negative")

	// ErrSizeNotPositive is returned when a page request has no room for rows.
	ErrSizeNotPositive = NewError(KindBadRequest, "SIZE_NOT_POSITIVE", "parameter size must be positive")
)

// Page is a validated from/size window over an ordered result set.
//
// The window is page based: From is rounded down to the start of the page
// that contains it, so from=1,size=2 selects the same rows as from=0,size=2.
type Page struct {
	from int
	size int
}

// NewPage validates from and size.
func NewPage(from, size int) (Page, error) {
	if from < 0 {
		return Page{}, ErrFromNegative.Withf("parameter from must not be negative, got %d", from)
	}
	if size <= 0 {
		return Page{}, ErrSizeNotPositive.Withf("parameter size must be positive, got %d", size)
	}
	return Page{from: from, size: size}, nil
}

// From returns the requested starting row.
func (p Page) From() int { return p.from }

// Size returns the page length.
func (p Page) Size() int { return p.size }

// Index returns the zero-based page index containing From.
func (p Page) Index() int { return p.from / p.size }

// Offset returns the first row of the page.
func (p Page) Offset() int { return p.Index() * p.size }

// Limit returns the maximum number of rows on the page.
func (p Page) Limit() int { return p.size }
