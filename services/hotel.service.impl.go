package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"rootroutes-service/domain"
	error2 "rootroutes-service/error"
)

const (
	searchDestinationPath = "/api/v1/hotels/searchDestination"
	searchHotelsPath      = "/api/v1/hotels/searchHotels"
	hotelCurrency         = "INR"
	upstreamTimeout       = 15 * time.Second
)

type HotelServiceImpl struct {
	client  *http.Client
	baseURL string
	host    string
	apiKey  string
	cache   DestinationLookupCache
	Tracer  trace.Tracer
	logger  *logrus.Logger
	now     func() time.Time
}

// NewHotelServiceImpl builds the proxy. With an empty apiKey every search is
// served from mock data. cache may be nil.
func NewHotelServiceImpl(baseURL, host, apiKey string, cache DestinationLookupCache, tr trace.Tracer, logger *logrus.Logger) *HotelServiceImpl {
	return &HotelServiceImpl{
		client:  &http.Client{Timeout: upstreamTimeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		host:    host,
		apiKey:  apiKey,
		cache:   cache,
		Tracer:  tr,
		logger:  logger,
		now:     time.Now,
	}
}

func (s *HotelServiceImpl) SearchHotels(ctx context.Context, q string) (*domain.HotelSearchResult, error) {
	ctx, span := s.Tracer.Start(ctx, "HotelService.SearchHotels")
	defer span.End()

	q = strings.TrimSpace(q)
	if q == "" {
		return nil, error2.NewValidationError("query is required")
	}

	if s.apiKey == "" {
		return &domain.HotelSearchResult{Query: q, Source: domain.HotelSourceMock, Hotels: MockHotels(q)}, nil
	}

	destID, err := s.resolveDestination(ctx, q)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	hotels, err := s.searchHotels(ctx, q, destID)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return &domain.HotelSearchResult{Query: q, Source: domain.HotelSourceUpstream, Hotels: hotels}, nil
}

// MockHotels is the fallback result set. It depends only on the query.
func MockHotels(q string) []*domain.HotelListing {
	return []*domain.HotelListing{
		{
			ID:              "mock-1",
			Name:            fmt.Sprintf("Hotel %s Plaza", q),
			Location:        q,
			Rating:          4.2,
			ReviewCount:     128,
			Price:           3500,
			DiscountedPrice: 2800,
			Currency:        hotelCurrency,
			Image:           "https://images.rootroutes.in/hotels/plaza.jpg",
			Amenities:       []string{"Free WiFi", "Restaurant", "Parking"},
			Availability:    "Available",
		},
		{
			ID:              "mock-2",
			Name:            fmt.Sprintf("Grand %s Resort", q),
			Location:        q,
			Rating:          4.5,
			ReviewCount:     256,
			Price:           6000,
			DiscountedPrice: 5200,
			Currency:        hotelCurrency,
			Image:           "https://images.rootroutes.in/hotels/resort.jpg",
			Amenities:       []string{"Free WiFi", "Swimming Pool", "Spa", "Restaurant"},
			Availability:    "Available",
		},
	}
}

type upstreamEnvelope struct {
	Status  bool            `json:"status"`
	Message interface{}     `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type upstreamDestination struct {
	DestID     string `json:"dest_id"`
	SearchType string `json:"search_type"`
}

type upstreamPrice struct {
	Value    float64 `json:"value"`
	Currency string  `json:"currency"`
}

type upstreamHotel struct {
	HotelID  int64 `json:"hotel_id"`
	Property struct {
		Name           string   `json:"name"`
		WishlistName   string   `json:"wishlistName"`
		ReviewScore    float64  `json:"reviewScore"`
		ReviewCount    int      `json:"reviewCount"`
		PhotoURLs      []string `json:"photoUrls"`
		IsSoldOut      bool     `json:"isSoldOut"`
		PriceBreakdown struct {
			GrossPrice         upstreamPrice  `json:"grossPrice"`
			StrikethroughPrice *upstreamPrice `json:"strikethroughPrice"`
		} `json:"priceBreakdown"`
	} `json:"property"`
	AccessibilityLabel string `json:"accessibilityLabel"`
}

func (s *HotelServiceImpl) resolveDestination(ctx context.Context, q string) (string, error) {
	ctx, span := s.Tracer.Start(ctx, "HotelService.resolveDestination")
	defer span.End()

	if s.cache != nil {
		if destID, ok := s.cache.GetDestinationID(ctx, q); ok {
			return destID, nil
		}
	}

	var destinations []upstreamDestination
	if err := s.get(ctx, searchDestinationPath, url.Values{"query": {q}}, &destinations); err != nil {
		return "", err
	}
	if len(destinations) == 0 || destinations[0].DestID == "" {
		return "", error2.NewNotFoundError("Destination for hotel search")
	}

	destID := destinations[0].DestID
	if s.cache != nil {
		s.cache.PutDestinationID(ctx, q, destID)
	}
	return destID, nil
}

func (s *HotelServiceImpl) searchHotels(ctx context.Context, q, destID string) ([]*domain.HotelListing, error) {
	ctx, span := s.Tracer.Start(ctx, "HotelService.searchHotels")
	defer span.End()

	today := s.now()
	params := url.Values{
		"dest_id":        {destID},
		"search_type":    {"CITY"},
		"arrival_date":   {today.AddDate(0, 0, 7).Format("2006-01-02")},
		"departure_date": {today.AddDate(0, 0, 8).Format("2006-01-02")},
		"adults":         {"1"},
		"room_qty":       {"1"},
		"page_number":    {"1"},
		"currency_code":  {hotelCurrency},
	}

	var data struct {
		Hotels []upstreamHotel `json:"hotels"`
	}
	if err := s.get(ctx, searchHotelsPath, params, &data); err != nil {
		return nil, err
	}

	hotels := make([]*domain.HotelListing, 0, len(data.Hotels))
	for _, h := range data.Hotels {
		hotels = append(hotels, toListing(h, q))
	}
	return hotels, nil
}

func toListing(h upstreamHotel, q string) *domain.HotelListing {
	p := h.Property
	listing := &domain.HotelListing{
		ID:              strconv.FormatInt(h.HotelID, 10),
		Name:            p.Name,
		Location:        p.WishlistName,
		Rating:          p.ReviewScore,
		ReviewCount:     p.ReviewCount,
		Price:           p.PriceBreakdown.GrossPrice.Value,
		DiscountedPrice: p.PriceBreakdown.GrossPrice.Value,
		Currency:        p.PriceBreakdown.GrossPrice.Currency,
		Amenities:       []string{},
		Availability:    "Available",
	}
	if listing.Location == "" {
		listing.Location = q
	}
	if listing.Currency == "" {
		listing.Currency = hotelCurrency
	}
	if strike := p.PriceBreakdown.StrikethroughPrice; strike != nil && strike.Value > listing.Price {
		listing.Price = strike.Value
	}
	if len(p.PhotoURLs) > 0 {
		listing.Image = p.PhotoURLs[0]
	}
	if p.IsSoldOut {
		listing.Availability = "Sold out"
	}
	return listing
}

// get performs one upstream call and decodes the data member of its
// envelope into out. Every failure becomes an UpstreamError.
func (s *HotelServiceImpl) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return error2.NewUpstreamError("Failed to build hotel API request", err)
	}
	req.Header.Set("x-rapidapi-key", s.apiKey)
	req.Header.Set("x-rapidapi-host", s.host)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := s.client.Do(req)
	if err != nil {
		return error2.NewUpstreamError("Hotel API is not available", err)
	}
	defer resp.Body.Close()

	var envelope upstreamEnvelope
	decodeErr := json.NewDecoder(resp.Body).Decode(&envelope)

	if resp.StatusCode != http.StatusOK {
		message := fmt.Sprintf("Hotel API returned status %d", resp.StatusCode)
		if decodeErr == nil && envelope.Message != nil {
			message = fmt.Sprintf("%s: %v", message, envelope.Message)
		}
		s.logger.WithFields(logrus.Fields{"path": path, "status": resp.StatusCode}).Warn("hotel API error")
		return error2.NewUpstreamError(message, nil)
	}
	if decodeErr != nil {
		return error2.NewUpstreamError("Invalid response from hotel API", decodeErr)
	}
	if !envelope.Status {
		return error2.NewUpstreamError(fmt.Sprintf("Hotel API error: %v", envelope.Message), nil)
	}
	if len(envelope.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return error2.NewUpstreamError("Invalid response from hotel API", err)
	}
	return nil
}
