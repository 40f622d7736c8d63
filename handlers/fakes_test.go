package handlers

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"rootroutes-service/authz"
	"rootroutes-service/domain"
	error2 "rootroutes-service/error"
	"rootroutes-service/query"
)

type fakeUserService struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func newFakeUserService(users ...*domain.User) *fakeUserService {
	s := &fakeUserService{users: map[string]*domain.User{}}
	for _, u := range users {
		s.users[u.ID.Hex()] = u
	}
	return s
}

func (s *fakeUserService) FindUserByID(_ context.Context, id string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return nil, error2.NewNotFoundError("User")
	}
	return user, nil
}

func (s *fakeUserService) FindUserByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == domain.NormalizeEmail(email) {
			return u, nil
		}
	}
	return nil, error2.NewNotFoundError("User")
}

func (s *fakeUserService) UpdateProfile(ctx context.Context, id primitive.ObjectID, in *domain.UpdateProfileInput) (*domain.User, error) {
	user, err := s.FindUserByID(ctx, id.Hex())
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	return user, nil
}

type fakeAuthService struct {
	users *fakeUserService
}

func (s *fakeAuthService) Register(_ context.Context, in *domain.RegisterInput) (*domain.User, error) {
	if err := domain.Validate(in); err != nil {
		return nil, err
	}
	user, err := domain.NewUser(in, "hashed", time.Now())
	if err != nil {
		return nil, err
	}
	user.ID = primitive.NewObjectID()
	s.users.mu.Lock()
	s.users.users[user.ID.Hex()] = user
	s.users.mu.Unlock()
	return user, nil
}

func (s *fakeAuthService) Login(ctx context.Context, in *domain.LoginInput) (*domain.User, error) {
	user, err := s.users.FindUserByEmail(ctx, in.Email)
	if err != nil || in.Password != "secret1" {
		return nil, error2.NewAuthenticationError("Invalid credentials")
	}
	return user, nil
}

type fakeTripService struct {
	mu         sync.Mutex
	trips      map[string]*domain.Trip
	authorizer *authz.Authorizer
}

func newFakeTripService(trips ...*domain.Trip) *fakeTripService {
	s := &fakeTripService{trips: map[string]*domain.Trip{}, authorizer: authz.NewAuthorizer()}
	for _, t := range trips {
		s.trips[t.ID.Hex()] = t
	}
	return s
}

func (s *fakeTripService) ListTrips(_ context.Context, caller domain.Identity, f query.TripFilter) (*query.Page[*domain.Trip], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	spec := query.Trips(caller.ID, f)
	items := make([]*domain.Trip, 0)
	for _, t := range s.trips {
		if t.User == caller.ID {
			items = append(items, t)
		}
	}
	return &query.Page[*domain.Trip]{Items: items, Pagination: spec.Pagination(int64(len(items)))}, nil
}

func (s *fakeTripService) GetTripByID(_ context.Context, id string, caller domain.Identity) (*domain.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	trip, ok := s.trips[id]
	if !ok {
		return nil, error2.NewNotFoundError("Trip")
	}
	if !s.authorizer.CanModify(caller, trip.User, authz.OwnerOnly) {
		return nil, error2.NewAuthorizationError("Not authorized to access this trip")
	}
	return trip, nil
}

func (s *fakeTripService) CreateTrip(_ context.Context, in *domain.CreateTripInput, caller domain.Identity) (*domain.Trip, error) {
	trip, err := domain.NewTrip(in, caller.ID, time.Now())
	if err != nil {
		return nil, err
	}
	trip.ID = primitive.NewObjectID()
	s.mu.Lock()
	s.trips[trip.ID.Hex()] = trip
	s.mu.Unlock()
	return trip, nil
}

func (s *fakeTripService) UpdateTrip(ctx context.Context, id string, in *domain.UpdateTripInput, caller domain.Identity) (*domain.Trip, error) {
	trip, err := s.GetTripByID(ctx, id, caller)
	if err != nil {
		return nil, err
	}
	if err := trip.ApplyUpdate(in, time.Now()); err != nil {
		return nil, err
	}
	return trip, nil
}

func (s *fakeTripService) DeleteTrip(ctx context.Context, id string, caller domain.Identity) error {
	if _, err := s.GetTripByID(ctx, id, caller); err != nil {
		return err
	}
	s.mu.Lock()
	delete(s.trips, id)
	s.mu.Unlock()
	return nil
}

type fakeDestinationService struct {
	mu           sync.Mutex
	destinations map[string]*domain.Destination
	authorizer   *authz.Authorizer
	total        int64
}

func newFakeDestinationService(total int64, destinations ...*domain.Destination) *fakeDestinationService {
	s := &fakeDestinationService{destinations: map[string]*domain.Destination{}, authorizer: authz.NewAuthorizer(), total: total}
	for _, d := range destinations {
		s.destinations[d.ID.Hex()] = d
	}
	return s
}

func (s *fakeDestinationService) ListDestinations(_ context.Context, f query.DestinationFilter) (*query.Page[*domain.Destination], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	spec := query.Destinations(f)
	items := make([]*domain.Destination, 0)
	for _, d := range s.destinations {
		if len(items) < spec.Limit {
			items = append(items, d)
		}
	}
	return &query.Page[*domain.Destination]{Items: items, Pagination: spec.Pagination(s.total)}, nil
}

func (s *fakeDestinationService) ListOwnedDestinations(_ context.Context, owner primitive.ObjectID, page, limit string) (*query.Page[*domain.Destination], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	spec := query.OwnedDestinations(owner, page, limit)
	items := make([]*domain.Destination, 0)
	for _, d := range s.destinations {
		if d.CreatedBy == owner {
			items = append(items, d)
		}
	}
	return &query.Page[*domain.Destination]{Items: items, Pagination: spec.Pagination(int64(len(items)))}, nil
}

func (s *fakeDestinationService) GetDestinationByID(_ context.Context, id string) (*domain.Destination, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.destinations[id]
	if !ok {
		return nil, error2.NewNotFoundError("Destination")
	}
	return d, nil
}

func (s *fakeDestinationService) CreateDestination(_ context.Context, in *domain.CreateDestinationInput, caller domain.Identity) (*domain.Destination, error) {
	d, err := domain.NewDestination(in, caller.ID, time.Now())
	if err != nil {
		return nil, err
	}
	d.ID = primitive.NewObjectID()
	s.mu.Lock()
	s.destinations[d.ID.Hex()] = d
	s.mu.Unlock()
	return d, nil
}

func (s *fakeDestinationService) UpdateDestination(ctx context.Context, id string, in *domain.UpdateDestinationInput, caller domain.Identity) (*domain.Destination, error) {
	d, err := s.GetDestinationByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.authorizer.CanModify(caller, d.CreatedBy, authz.OwnerOrAdmin) {
		return nil, error2.NewAuthorizationError("Not authorized to update this destination")
	}
	if err := d.ApplyUpdate(in, time.Now()); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *fakeDestinationService) DeleteDestination(ctx context.Context, id string, caller domain.Identity) error {
	d, err := s.GetDestinationByID(ctx, id)
	if err != nil {
		return err
	}
	if !s.authorizer.CanModify(caller, d.CreatedBy, authz.OwnerOrAdmin) {
		return error2.NewAuthorizationError("Not authorized to delete this destination")
	}
	s.mu.Lock()
	delete(s.destinations, id)
	s.mu.Unlock()
	return nil
}

func (s *fakeDestinationService) RateDestination(ctx context.Context, id string, in *domain.RateInput) (*domain.Destination, error) {
	if err := domain.Validate(in); err != nil {
		return nil, err
	}
	d, err := s.GetDestinationByID(ctx, id)
	if err != nil {
		return nil, err
	}
	d.Rating = d.Rating.AddRating(in.Rating)
	return d, nil
}

func (s *fakeDestinationService) SetDestinationStatus(ctx context.Context, id string, in *domain.StatusInput) (*domain.Destination, error) {
	d, err := s.GetDestinationByID(ctx, id)
	if err != nil {
		return nil, err
	}
	d.Status = in.Status
	return d, nil
}

type fakeCultureService struct {
	created []*domain.CultureSite
}

func (s *fakeCultureService) ListCultureSites(_ context.Context, f query.CultureFilter) (*query.Page[*domain.CultureSite], error) {
	spec := query.CultureSites(f)
	return &query.Page[*domain.CultureSite]{Items: s.created, Pagination: spec.Pagination(int64(len(s.created)))}, nil
}

func (s *fakeCultureService) GetCultureSiteByID(_ context.Context, id string) (*domain.CultureSite, error) {
	for _, site := range s.created {
		if site.ID.Hex() == id {
			return site, nil
		}
	}
	return nil, error2.NewNotFoundError("Culture site")
}

func (s *fakeCultureService) CreateCultureSite(_ context.Context, in *domain.CreateCultureSiteInput, owner *primitive.ObjectID) (*domain.CultureSite, error) {
	site, err := domain.NewCultureSite(in, owner, time.Now())
	if err != nil {
		return nil, err
	}
	site.ID = primitive.NewObjectID()
	s.created = append(s.created, site)
	return site, nil
}

func (s *fakeCultureService) ReseedCultureSites(context.Context) (int, error) {
	return 10, nil
}
