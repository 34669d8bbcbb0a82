package affidavit

import (
	"context"
	"io"
	"testing"

	"affidavit/pkg/types"

	"github.com/sirupsen/logrus"
)

// In-memory store fakes. Missing keys behave like the real repositories:
// sentinel errors for single-row lookups, empty slices for lists.

type fakeUserStore struct {
	users map[string]*types.User
}

func (f *fakeUserStore) User(_ context.Context, userID string) (*types.User, error) {
	if user, ok := f.users[userID]; ok {
		return user, nil
	}
	return nil, types.ErrUserNotFound
}

func (f *fakeUserStore) UsersByIDs(_ context.Context, userIDs []string) ([]*types.User, error) {
	users := make([]*types.User, 0, len(userIDs))
	for _, id := range userIDs {
		if user, ok := f.users[id]; ok {
			users = append(users, user)
		}
	}
	return users, nil
}

type fakeCaseStore struct {
	cases map[string]*types.Case
}

func (f *fakeCaseStore) Case(_ context.Context, caseID string) (*types.Case, error) {
	if kase, ok := f.cases[caseID]; ok {
		return kase, nil
	}
	return nil, types.ErrCaseNotFound
}

func (f *fakeCaseStore) LatestCaseForParty(_ context.Context, userID string) (*types.Case, error) {
	for _, kase := range f.cases {
		if kase.IncludesParty(userID) {
			return kase, nil
		}
	}
	return nil, types.ErrCaseNotFound
}

type fakeEmploymentStore struct {
	rows map[string][]*types.Employment
}

func (f *fakeEmploymentStore) ByOwner(_ context.Context, ownerID string) ([]*types.Employment, error) {
	return f.rows[ownerID], nil
}

type fakeMonthlyLineStore struct {
	rows map[string]map[types.LineCategory][]*types.MonthlyLine
}

func (f *fakeMonthlyLineStore) ByOwner(_ context.Context, category types.LineCategory, ownerID string) ([]*types.MonthlyLine, error) {
	return f.rows[ownerID][category], nil
}

type fakeAssetStore struct {
	assets     map[string][]*types.Asset
	contingent map[string][]*types.ContingentAsset
}

func (f *fakeAssetStore) ByOwner(_ context.Context, ownerID string) ([]*types.Asset, error) {
	return f.assets[ownerID], nil
}

func (f *fakeAssetStore) ContingentByOwner(_ context.Context, ownerID string) ([]*types.ContingentAsset, error) {
	return f.contingent[ownerID], nil
}

type fakeLiabilityStore struct {
	liabilities map[string][]*types.Liability
	contingent  map[string][]*types.ContingentLiability
}

func (f *fakeLiabilityStore) ByOwner(_ context.Context, ownerID string) ([]*types.Liability, error) {
	return f.liabilities[ownerID], nil
}

func (f *fakeLiabilityStore) ContingentByOwner(_ context.Context, ownerID string) ([]*types.ContingentLiability, error) {
	return f.contingent[ownerID], nil
}

type fakeLookupStore struct {
	typeNames map[string]map[int]string
	circuits  map[int]string
	counties  map[int]string
}

func (f *fakeLookupStore) TypeNames(_ context.Context, category string) (map[int]string, error) {
	return f.typeNames[category], nil
}

func (f *fakeLookupStore) CircuitName(_ context.Context, circuitID int) (*string, error) {
	if name, ok := f.circuits[circuitID]; ok {
		return &name, nil
	}
	return nil, nil
}

func (f *fakeLookupStore) CountyName(_ context.Context, countyID int) (*string, error) {
	if name, ok := f.counties[countyID]; ok {
		return &name, nil
	}
	return nil, nil
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type engineFixture struct {
	users       *fakeUserStore
	cases       *fakeCaseStore
	employment  *fakeEmploymentStore
	lines       *fakeMonthlyLineStore
	assets      *fakeAssetStore
	liabilities *fakeLiabilityStore
	lookups     *fakeLookupStore
}

func newEngineFixture() *engineFixture {
	return &engineFixture{
		users:       &fakeUserStore{users: map[string]*types.User{}},
		cases:       &fakeCaseStore{cases: map[string]*types.Case{}},
		employment:  &fakeEmploymentStore{rows: map[string][]*types.Employment{}},
		lines:       &fakeMonthlyLineStore{rows: map[string]map[types.LineCategory][]*types.MonthlyLine{}},
		assets:      &fakeAssetStore{assets: map[string][]*types.Asset{}, contingent: map[string][]*types.ContingentAsset{}},
		liabilities: &fakeLiabilityStore{liabilities: map[string][]*types.Liability{}, contingent: map[string][]*types.ContingentLiability{}},
		lookups:     &fakeLookupStore{typeNames: map[string]map[int]string{}, circuits: map[int]string{}, counties: map[int]string{}},
	}
}

func (fx *engineFixture) engine(t *testing.T) *Engine {
	t.Helper()
	return NewEngine(
		testLogger(),
		fx.users,
		fx.cases,
		fx.employment,
		fx.lines,
		fx.assets,
		fx.liabilities,
		fx.lookups,
		nil,
	)
}
