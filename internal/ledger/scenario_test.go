package ledger_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/fundraise/internal/donation"
	"github.com/MrJamesThe3rd/fundraise/internal/fund"
	"github.com/MrJamesThe3rd/fundraise/internal/ledger"
)

// memRepo is an in-memory ledger store. Begin takes an exclusive lock held
// until Commit or Rollback, mirroring the row-lock isolation the SQL store
// gets from SELECT ... FOR UPDATE; writes are staged on copies and only
// published on Commit.
type memRepo struct {
	mu        sync.Mutex
	funds     map[uuid.UUID]fund.Fund
	donations map[uuid.UUID]donation.Donation
}

func newMemRepo() *memRepo {
	return &memRepo{
		funds:     make(map[uuid.UUID]fund.Fund),
		donations: make(map[uuid.UUID]donation.Donation),
	}
}

func (r *memRepo) addFund(f fund.Fund) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.funds[f.ID] = f
}

func (r *memRepo) fund(id uuid.UUID) fund.Fund {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.funds[id]
}

func (r *memRepo) donationsForFund(id uuid.UUID) []donation.Donation {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []donation.Donation

	for _, d := range r.donations {
		if d.FundID == id {
			out = append(out, d)
		}
	}

	return out
}

func (r *memRepo) Begin(_ context.Context) (ledger.Tx, error) {
	r.mu.Lock()

	tx := &memTx{
		repo:      r,
		funds:     make(map[uuid.UUID]fund.Fund, len(r.funds)),
		donations: make(map[uuid.UUID]donation.Donation, len(r.donations)),
	}
	for id, f := range r.funds {
		tx.funds[id] = f
	}

	for id, d := range r.donations {
		tx.donations[id] = d
	}

	return tx, nil
}

type memTx struct {
	repo      *memRepo
	funds     map[uuid.UUID]fund.Fund
	donations map[uuid.UUID]donation.Donation
	done      bool
}

func (t *memTx) Commit() error {
	if t.done {
		return nil
	}

	t.repo.funds = t.funds
	t.repo.donations = t.donations
	t.done = true
	t.repo.mu.Unlock()

	return nil
}

func (t *memTx) Rollback() error {
	if t.done {
		return nil
	}

	t.done = true
	t.repo.mu.Unlock()

	return nil
}

func (t *memTx) FundForUpdate(_ context.Context, fundID uuid.UUID) (*fund.Fund, error) {
	f, ok := t.funds[fundID]
	if !ok {
		return nil, ledger.ErrNotFound
	}

	return &f, nil
}

func (t *memTx) InsertDonation(_ context.Context, d *donation.Donation) error {
	d.ID = uuid.New()
	d.Date = time.Now()
	t.donations[d.ID] = *d

	return nil
}

func (t *memTx) OwnedDonation(_ context.Context, donorID, donationID uuid.UUID) (*donation.Donation, error) {
	d, ok := t.donations[donationID]
	if !ok || d.DonorID != donorID {
		return nil, ledger.ErrNotFound
	}

	return &d, nil
}

func (t *memTx) UpdateDonationAmount(_ context.Context, donationID uuid.UUID, amount decimal.Decimal) error {
	d := t.donations[donationID]
	d.Amount = amount
	t.donations[donationID] = d

	return nil
}

func (t *memTx) DeleteDonation(_ context.Context, donationID uuid.UUID) error {
	delete(t.donations, donationID)
	return nil
}

func (t *memTx) DeleteDonationsForFund(_ context.Context, fundID uuid.UUID) error {
	for id, d := range t.donations {
		if d.FundID == fundID {
			delete(t.donations, id)
		}
	}

	return nil
}

func (t *memTx) ApplyRaisedDelta(_ context.Context, fundID uuid.UUID, delta decimal.Decimal) error {
	f, ok := t.funds[fundID]
	if !ok {
		return ledger.ErrNotFound
	}

	f.AmountRaised = f.AmountRaised.Add(delta)
	f.IsFullyFunded = f.AmountRaised.GreaterThanOrEqual(f.AmountNeeded)
	t.funds[fundID] = f

	return nil
}

func (t *memTx) DeleteFund(_ context.Context, fundID uuid.UUID) error {
	delete(t.funds, fundID)
	return nil
}

// requireReconciled checks that the fund's raised amount equals the sum of
// its surviving donations and that the fully-funded flag matches the totals.
func requireReconciled(t *testing.T, repo *memRepo, fundID uuid.UUID) {
	t.Helper()

	f := repo.fund(fundID)
	sum := decimal.Zero

	for _, d := range repo.donationsForFund(fundID) {
		sum = sum.Add(d.Amount)
	}

	require.Truef(t, f.AmountRaised.Equal(sum),
		"raised %s does not match donation sum %s", f.AmountRaised, sum)
	require.Equal(t, f.AmountRaised.GreaterThanOrEqual(f.AmountNeeded), f.IsFullyFunded)
}

func TestLedger_DonationLifecycle(t *testing.T) {
	repo := newMemRepo()
	svc := ledger.NewService(repo)
	ctx := context.Background()

	fundID := uuid.New()
	repo.addFund(fund.Fund{
		ID:           fundID,
		RecipientID:  uuid.New(),
		ServiceID:    uuid.New(),
		AmountNeeded: decimal.NewFromInt(100),
		AmountRaised: decimal.Zero,
		IsVerified:   true,
	})

	donorA := uuid.New()
	donorB := uuid.New()

	first, err := svc.Donate(ctx, fundID, donorA, decimal.NewFromInt(60))
	require.NoError(t, err)
	requireReconciled(t, repo, fundID)

	f := repo.fund(fundID)
	assert.True(t, f.AmountRaised.Equal(decimal.NewFromInt(60)))
	assert.False(t, f.IsFullyFunded)

	// Over-funding is allowed; the threshold crossing flips the flag.
	second, err := svc.Donate(ctx, fundID, donorB, decimal.NewFromInt(50))
	require.NoError(t, err)
	requireReconciled(t, repo, fundID)

	f = repo.fund(fundID)
	assert.True(t, f.AmountRaised.Equal(decimal.NewFromInt(110)))
	assert.True(t, f.IsFullyFunded)

	// A fully funded fund accepts no further donations.
	_, err = svc.Donate(ctx, fundID, donorA, decimal.NewFromInt(1))
	assert.ErrorIs(t, err, ledger.ErrConflict)

	// Reducing the first pledge reopens the fund.
	_, err = svc.AmendDonation(ctx, donorA, first.ID, decimal.NewFromInt(20))
	require.NoError(t, err)
	requireReconciled(t, repo, fundID)

	f = repo.fund(fundID)
	assert.True(t, f.AmountRaised.Equal(decimal.NewFromInt(70)))
	assert.False(t, f.IsFullyFunded)

	require.NoError(t, svc.RetractDonation(ctx, donorB, second.ID))
	requireReconciled(t, repo, fundID)

	f = repo.fund(fundID)
	assert.True(t, f.AmountRaised.Equal(decimal.NewFromInt(20)))
	assert.False(t, f.IsFullyFunded)
}

func TestLedger_ConcurrentDonations(t *testing.T) {
	repo := newMemRepo()
	svc := ledger.NewService(repo)

	fundID := uuid.New()
	repo.addFund(fund.Fund{
		ID:           fundID,
		RecipientID:  uuid.New(),
		ServiceID:    uuid.New(),
		AmountNeeded: decimal.NewFromInt(50),
		AmountRaised: decimal.Zero,
		IsVerified:   true,
	})

	var wg sync.WaitGroup

	errs := make([]error, 2)

	for i, amount := range []int64{30, 40} {
		i, amount := i, amount
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, errs[i] = svc.Donate(context.Background(), fundID, uuid.New(), decimal.NewFromInt(amount))
		}()
	}

	wg.Wait()

	// Whichever donation lands first leaves the fund open (30 and 40 are both
	// below the 50 needed), so both must commit; a lost update would leave
	// raised at 30 or 40.
	require.NoError(t, errs[0])
	require.NoError(t, errs[1])

	f := repo.fund(fundID)
	assert.True(t, f.AmountRaised.Equal(decimal.NewFromInt(70)), "raised = %s", f.AmountRaised)
	assert.True(t, f.IsFullyFunded)
	requireReconciled(t, repo, fundID)
}

func TestLedger_ConflictLeavesStoreUnchanged(t *testing.T) {
	repo := newMemRepo()
	svc := ledger.NewService(repo)
	ctx := context.Background()

	fundID := uuid.New()
	repo.addFund(fund.Fund{
		ID:           fundID,
		RecipientID:  uuid.New(),
		ServiceID:    uuid.New(),
		AmountNeeded: decimal.NewFromInt(100),
		AmountRaised: decimal.Zero,
	})

	_, err := svc.Donate(ctx, fundID, uuid.New(), decimal.NewFromInt(10))
	assert.ErrorIs(t, err, ledger.ErrConflict)

	f := repo.fund(fundID)
	assert.True(t, f.AmountRaised.IsZero())
	assert.Empty(t, repo.donationsForFund(fundID))
}

func TestLedger_AmendByNonOwnerLeavesStoreUnchanged(t *testing.T) {
	repo := newMemRepo()
	svc := ledger.NewService(repo)
	ctx := context.Background()

	fundID := uuid.New()
	repo.addFund(fund.Fund{
		ID:           fundID,
		RecipientID:  uuid.New(),
		ServiceID:    uuid.New(),
		AmountNeeded: decimal.NewFromInt(100),
		AmountRaised: decimal.Zero,
		IsVerified:   true,
	})

	owner := uuid.New()
	d, err := svc.Donate(ctx, fundID, owner, decimal.NewFromInt(25))
	require.NoError(t, err)

	_, err = svc.AmendDonation(ctx, uuid.New(), d.ID, decimal.NewFromInt(99))
	assert.ErrorIs(t, err, ledger.ErrNotFound)

	err = svc.RetractDonation(ctx, uuid.New(), d.ID)
	assert.ErrorIs(t, err, ledger.ErrNotFound)

	f := repo.fund(fundID)
	assert.True(t, f.AmountRaised.Equal(decimal.NewFromInt(25)))
	requireReconciled(t, repo, fundID)
}

func TestLedger_DeleteFundCascades(t *testing.T) {
	repo := newMemRepo()
	svc := ledger.NewService(repo)
	ctx := context.Background()

	recipientID := uuid.New()
	fundID := uuid.New()
	repo.addFund(fund.Fund{
		ID:           fundID,
		RecipientID:  recipientID,
		ServiceID:    uuid.New(),
		AmountNeeded: decimal.NewFromInt(100),
		AmountRaised: decimal.Zero,
		IsVerified:   true,
	})

	_, err := svc.Donate(ctx, fundID, uuid.New(), decimal.NewFromInt(10))
	require.NoError(t, err)
	_, err = svc.Donate(ctx, fundID, uuid.New(), decimal.NewFromInt(15))
	require.NoError(t, err)

	// Deletion by a non-owner must not touch anything.
	err = svc.DeleteFund(ctx, uuid.New(), fundID)
	assert.ErrorIs(t, err, ledger.ErrNotFound)
	assert.Len(t, repo.donationsForFund(fundID), 2)

	require.NoError(t, svc.DeleteFund(ctx, recipientID, fundID))

	assert.Empty(t, repo.donationsForFund(fundID))
	assert.True(t, repo.fund(fundID).ID == uuid.Nil)
}
