package domain

// HotelListing is the uniform record returned by hotel search, whether it
// came from the upstream API or the mock fallback.
type HotelListing struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Location        string   `json:"location"`
	Rating          float64  `json:"rating"`
	ReviewCount     int      `json:"reviewCount"`
	Price           float64  `json:"price"`
	DiscountedPrice float64  `json:"discountedPrice"`
	Currency        string   `json:"currency"`
	Image           string   `json:"image"`
	Amenities       []string `json:"amenities"`
	Availability    string   `json:"availability"`
}

type HotelSearchResult struct {
	Query  string          `json:"query"`
	Source string          `json:"source"`
	Hotels []*HotelListing `json:"hotels"`
}

const (
	HotelSourceUpstream = "api"
	HotelSourceMock     = "mock"
)
