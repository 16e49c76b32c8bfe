package integrity

import (
	"context"
	"maps"

	"inapp-server/internal/store"
)

// fakeStore is an in-memory GuardStore. InTx snapshots every table and
// restores it when the unit fails, which mirrors a rolled back transaction.
type fakeStore struct {
	nextID      int64
	countries   map[int64]store.Country
	operators   map[int64]store.Operator
	publishers  map[int64]store.Publisher
	advertisers map[int64]store.Advertiser
	campaigns   map[int64]store.Campaign

	// failOn injects an error into the named method.
	failOn map[string]error
	inTx   bool
	calls  []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		countries:   map[int64]store.Country{},
		operators:   map[int64]store.Operator{},
		publishers:  map[int64]store.Publisher{},
		advertisers: map[int64]store.Advertiser{},
		campaigns:   map[int64]store.Campaign{},
		failOn:      map[string]error{},
	}
}

type fakeSnapshot struct {
	countries   map[int64]store.Country
	operators   map[int64]store.Operator
	publishers  map[int64]store.Publisher
	advertisers map[int64]store.Advertiser
	campaigns   map[int64]store.Campaign
}

func (f *fakeStore) InTx(ctx context.Context, fn func(tx GuardStore) error) error {
	if f.inTx {
		return fn(f)
	}
	snap := fakeSnapshot{
		countries:   maps.Clone(f.countries),
		operators:   maps.Clone(f.operators),
		publishers:  maps.Clone(f.publishers),
		advertisers: maps.Clone(f.advertisers),
		campaigns:   maps.Clone(f.campaigns),
	}
	f.inTx = true
	err := fn(f)
	f.inTx = false
	if err != nil {
		f.countries = snap.countries
		f.operators = snap.operators
		f.publishers = snap.publishers
		f.advertisers = snap.advertisers
		f.campaigns = snap.campaigns
	}
	return err
}

func (f *fakeStore) call(name string) error {
	f.calls = append(f.calls, name)
	return f.failOn[name]
}

func (f *fakeStore) id() int64 {
	f.nextID++
	return f.nextID
}

func (f *fakeStore) addCountry(code, name string) store.Country {
	c := store.Country{ID: f.id(), Code: code, Name: name}
	f.countries[c.ID] = c
	return c
}

func (f *fakeStore) addOperator(name string, countryID int64) store.Operator {
	o := store.Operator{ID: f.id(), Name: name, Email: name + "@example.com", CountryID: countryID}
	f.operators[o.ID] = o
	return o
}

func (f *fakeStore) addPublisher(name string) store.Publisher {
	p := store.Publisher{ID: f.id(), Name: name, Email: name + "@example.com"}
	f.publishers[p.ID] = p
	return p
}

func (f *fakeStore) addAdvertiser(name string, operator store.Operator) store.Advertiser {
	a := store.Advertiser{ID: f.id(), Name: name, Email: name + "@example.com", OperatorID: operator.ID, CountryID: operator.CountryID}
	f.advertisers[a.ID] = a
	return a
}

func (f *fakeStore) addCampaign(c store.Campaign) store.Campaign {
	c.ID = f.id()
	f.campaigns[c.ID] = c
	return c
}

func get[T any](m map[int64]T, id int64) (T, error) {
	v, ok := m[id]
	if !ok {
		var zero T
		return zero, store.ErrNotFound
	}
	return v, nil
}

func fkViolation(constraint string) error {
	return &store.ConstraintError{Kind: store.ErrForeignKeyViolation, Constraint: constraint}
}

func (f *fakeStore) GetPublisherByID(ctx context.Context, id int64) (store.Publisher, error) {
	if err := f.call("GetPublisherByID"); err != nil {
		return store.Publisher{}, err
	}
	return get(f.publishers, id)
}

func (f *fakeStore) GetCountryByID(ctx context.Context, id int64) (store.Country, error) {
	if err := f.call("GetCountryByID"); err != nil {
		return store.Country{}, err
	}
	return get(f.countries, id)
}

func (f *fakeStore) GetOperatorByID(ctx context.Context, id int64) (store.Operator, error) {
	if err := f.call("GetOperatorByID"); err != nil {
		return store.Operator{}, err
	}
	return get(f.operators, id)
}

func (f *fakeStore) GetAdvertiserByID(ctx context.Context, id int64) (store.Advertiser, error) {
	if err := f.call("GetAdvertiserByID"); err != nil {
		return store.Advertiser{}, err
	}
	return get(f.advertisers, id)
}

func (f *fakeStore) GetCampaignByID(ctx context.Context, id int64) (store.Campaign, error) {
	if err := f.call("GetCampaignByID"); err != nil {
		return store.Campaign{}, err
	}
	return get(f.campaigns, id)
}

func (f *fakeStore) CountOperatorsByCountry(ctx context.Context, countryID int64) (int64, error) {
	if err := f.call("CountOperatorsByCountry"); err != nil {
		return 0, err
	}
	var n int64
	for _, o := range f.operators {
		if o.CountryID == countryID {
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) CountAdvertisersByOperator(ctx context.Context, operatorID int64) (int64, error) {
	if err := f.call("CountAdvertisersByOperator"); err != nil {
		return 0, err
	}
	var n int64
	for _, a := range f.advertisers {
		if a.OperatorID == operatorID {
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) CountCampaignsByOperator(ctx context.Context, operatorID int64) (int64, error) {
	if err := f.call("CountCampaignsByOperator"); err != nil {
		return 0, err
	}
	var n int64
	for _, c := range f.campaigns {
		if c.OperatorID == operatorID {
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) CountCampaignsByAdvertiser(ctx context.Context, advertiserID int64) (int64, error) {
	if err := f.call("CountCampaignsByAdvertiser"); err != nil {
		return 0, err
	}
	var n int64
	for _, c := range f.campaigns {
		if c.AdvertiserID == advertiserID || (c.RedirectionAdvertiserID != nil && *c.RedirectionAdvertiserID == advertiserID) {
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) DeleteCountry(ctx context.Context, id int64) error {
	if err := f.call("DeleteCountry"); err != nil {
		return err
	}
	if _, ok := f.countries[id]; !ok {
		return store.ErrNotFound
	}
	for _, o := range f.operators {
		if o.CountryID == id {
			return fkViolation("operators_country_id_fkey")
		}
	}
	delete(f.countries, id)
	return nil
}

func (f *fakeStore) DeleteOperator(ctx context.Context, id int64) error {
	if err := f.call("DeleteOperator"); err != nil {
		return err
	}
	if _, ok := f.operators[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.operators, id)
	return nil
}

func (f *fakeStore) DeleteAdvertiser(ctx context.Context, id int64) error {
	if err := f.call("DeleteAdvertiser"); err != nil {
		return err
	}
	if _, ok := f.advertisers[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.advertisers, id)
	return nil
}

func (f *fakeStore) DeletePublisher(ctx context.Context, id int64) error {
	if err := f.call("DeletePublisher"); err != nil {
		return err
	}
	if _, ok := f.publishers[id]; !ok {
		return store.ErrNotFound
	}
	for _, c := range f.campaigns {
		if c.PublisherID == id {
			return fkViolation("campaigns_publisher_id_fkey")
		}
	}
	delete(f.publishers, id)
	return nil
}

func (f *fakeStore) DeleteCampaign(ctx context.Context, id int64) error {
	if err := f.call("DeleteCampaign"); err != nil {
		return err
	}
	if _, ok := f.campaigns[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.campaigns, id)
	return nil
}

func (f *fakeStore) DeleteCampaignsByPublisher(ctx context.Context, publisherID int64) (int64, error) {
	if err := f.call("DeleteCampaignsByPublisher"); err != nil {
		return 0, err
	}
	var n int64
	for id, c := range f.campaigns {
		if c.PublisherID == publisherID {
			delete(f.campaigns, id)
			n++
		}
	}
	return n, nil
}
