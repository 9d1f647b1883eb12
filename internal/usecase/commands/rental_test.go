//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"rentify-api/internal/domain/listing"
	"rentify-api/internal/domain/rental"
	reqdto "rentify-api/internal/handler/dto/request"
	"rentify-api/internal/infra"
	sqlc "rentify-api/internal/infra/sqlc/generated"
	"rentify-api/internal/pkg/clock"
	"rentify-api/internal/usecase/commands"
	"rentify-api/internal/usecase/queries"
	"rentify-api/internal/usecase/shared"
	"rentify-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rentalWorld is an in-memory stand-in for the write side: snapshots feed the
// command reads and status updates are recorded instead of persisted.
type rentalWorld struct {
	listings map[uuid.UUID]*shared.ListingSnapshot
	rentals  map[uuid.UUID]*shared.RentalSnapshot

	overlapping     int64
	created         []*rental.Rental
	rentalStatuses  map[uuid.UUID]rental.Status
	listingStatuses map[uuid.UUID]listing.Status
}

func newRentalWorld() *rentalWorld {
	return &rentalWorld{
		listings:        make(map[uuid.UUID]*shared.ListingSnapshot),
		rentals:         make(map[uuid.UUID]*shared.RentalSnapshot),
		rentalStatuses:  make(map[uuid.UUID]rental.Status),
		listingStatuses: make(map[uuid.UUID]listing.Status),
	}
}

func (w *rentalWorld) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &rentalWorldTx{world: w})
}

func (w *rentalWorld) WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &rentalWorldTx{world: w})
}

func (w *rentalWorld) CommandReads() shared.CommandReads {
	return &rentalWorldReads{world: w}
}

type rentalWorldTx struct {
	world *rentalWorld
}

func (t *rentalWorldTx) Rentals() shared.RentalRepository   { return &rentalWorldRentals{world: t.world} }
func (t *rentalWorldTx) Listings() shared.ListingRepository { return &rentalWorldListings{world: t.world} }
func (t *rentalWorldTx) Users() shared.UserRepository       { panic("not used in rental command tests") }
func (t *rentalWorldTx) Idempotency() shared.IdempotencyRepository {
	panic("not used in rental command tests")
}
func (t *rentalWorldTx) Reads() shared.CommandReads { return &rentalWorldReads{world: t.world} }
func (t *rentalWorldTx) DB() sqlc.DBTX              { return nil }

type rentalWorldReads struct {
	world *rentalWorld
}

func (r *rentalWorldReads) ListingByID(_ context.Context, id uuid.UUID) (*shared.ListingSnapshot, error) {
	return r.ListingByIDLocked(context.Background(), id)
}

func (r *rentalWorldReads) ListingByIDLocked(_ context.Context, id uuid.UUID) (*shared.ListingSnapshot, error) {
	if s, ok := r.world.listings[id]; ok {
		return s, nil
	}
	return nil, infra.WrapRepoErr("listing not found", nil, infra.KindNotFound)
}

func (r *rentalWorldReads) RentalByID(_ context.Context, id uuid.UUID) (*shared.RentalSnapshot, error) {
	if s, ok := r.world.rentals[id]; ok {
		return s, nil
	}
	return nil, infra.WrapRepoErr("rental not found", nil, infra.KindNotFound)
}

func (r *rentalWorldReads) IdempotencyByKey(context.Context, uuid.UUID) (*shared.IdempotencyRecord, error) {
	panic("not used in rental command tests")
}

type rentalWorldRentals struct {
	world *rentalWorld
}

func (r *rentalWorldRentals) Create(_ context.Context, _ sqlc.DBTX, rent *rental.Rental) (uuid.UUID, error) {
	r.world.created = append(r.world.created, rent)
	return rent.ID(), nil
}

func (r *rentalWorldRentals) UpdateStatus(_ context.Context, _ sqlc.DBTX, id uuid.UUID, status rental.Status) error {
	r.world.rentalStatuses[id] = status
	return nil
}

func (r *rentalWorldRentals) CountOverlapping(context.Context, sqlc.DBTX, uuid.UUID, rental.Period) (int64, error) {
	return r.world.overlapping, nil
}

type rentalWorldListings struct {
	world *rentalWorld
}

func (l *rentalWorldListings) Create(context.Context, sqlc.DBTX, *listing.Listing) (uuid.UUID, error) {
	panic("not used in rental command tests")
}

func (l *rentalWorldListings) UpdateStatus(_ context.Context, _ sqlc.DBTX, id uuid.UUID, status listing.Status) error {
	l.world.listingStatuses[id] = status
	return nil
}

// stubRentalQueries serves GetByIDSystem only, which CreateRental uses to
// build its response view.
type stubRentalQueries struct{}

func (q *stubRentalQueries) GetByID(context.Context, uuid.UUID, string, uuid.UUID) (*queries.RentalView, error) {
	panic("not used in rental command tests")
}

func (q *stubRentalQueries) GetByIDSystem(_ context.Context, id uuid.UUID) (*queries.RentalView, error) {
	return &queries.RentalView{ID: id}, nil
}

func (q *stubRentalQueries) ListByRequester(context.Context, uuid.UUID, *queries.Cursor, int) ([]*queries.RentalListItem, *queries.Cursor, error) {
	panic("not used in rental command tests")
}

func (q *stubRentalQueries) ListByOwner(context.Context, uuid.UUID, int) ([]*queries.OwnerRentalListItem, error) {
	panic("not used in rental command tests")
}

// 「今日」は 2026-02-01 固定
var rentalTestNow = time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

func newRentalCommands(world *rentalWorld) commands.RentalCommands {
	factory := rental.NewFactory(clock.NewMockClock(rentalTestNow), rental.NewDefaultPriceCalculator())
	return commands.NewRentalCommands(world, factory, &stubRentalQueries{})
}

func createRentalRequest(listingID uuid.UUID) reqdto.CreateRentalRequest {
	return reqdto.CreateRentalRequest{
		ListingID: listingID,
		StartDate: "2026-02-10",
		EndDate:   "2026-02-15",
		Method:    "parcel",
	}
}

func TestCreateRental(t *testing.T) {
	ctx := context.Background()

	t.Run("成功時は requested で作成され合計金額が確定する", func(t *testing.T) {
		world := newRentalWorld()
		snapshot := builder.NewListingBuilder().WithPricePerDay(50000).BuildSnapshot()
		world.listings[snapshot.ID] = snapshot

		view, err := newRentalCommands(world).CreateRental(ctx, uuid.New(), createRentalRequest(snapshot.ID))
		require.NoError(t, err)
		require.NotNil(t, view)

		require.Len(t, world.created, 1)
		created := world.created[0]
		assert.Equal(t, rental.StatusRequested, created.Status())
		assert.Equal(t, int64(300000), created.TotalPrice().Amount())
	})

	t.Run("終了日が開始日より前なら ErrInvalidRentalPeriod", func(t *testing.T) {
		world := newRentalWorld()
		req := createRentalRequest(uuid.New())
		req.StartDate, req.EndDate = req.EndDate, req.StartDate

		_, err := newRentalCommands(world).CreateRental(ctx, uuid.New(), req)
		require.ErrorIs(t, err, commands.ErrInvalidRentalPeriod)
	})

	t.Run("日付形式が不正なら ErrRentalValidation", func(t *testing.T) {
		world := newRentalWorld()
		req := createRentalRequest(uuid.New())
		req.StartDate = "2026/02/10"

		_, err := newRentalCommands(world).CreateRental(ctx, uuid.New(), req)
		require.ErrorIs(t, err, commands.ErrRentalValidation)
	})

	t.Run("出品が存在しなければ ErrListingNotFound", func(t *testing.T) {
		world := newRentalWorld()

		_, err := newRentalCommands(world).CreateRental(ctx, uuid.New(), createRentalRequest(uuid.New()))
		require.ErrorIs(t, err, commands.ErrListingNotFound)
	})

	t.Run("自分の出品には申し込めない", func(t *testing.T) {
		world := newRentalWorld()
		snapshot := builder.NewListingBuilder().BuildSnapshot()
		world.listings[snapshot.ID] = snapshot

		_, err := newRentalCommands(world).CreateRental(ctx, snapshot.OwnerID, createRentalRequest(snapshot.ID))
		require.ErrorIs(t, err, commands.ErrOwnListingRental)
	})

	t.Run("期間が重複すると ErrPeriodOverlap で作成されない", func(t *testing.T) {
		world := newRentalWorld()
		snapshot := builder.NewListingBuilder().BuildSnapshot()
		world.listings[snapshot.ID] = snapshot
		world.overlapping = 1

		_, err := newRentalCommands(world).CreateRental(ctx, uuid.New(), createRentalRequest(snapshot.ID))
		require.ErrorIs(t, err, commands.ErrPeriodOverlap)
		assert.Empty(t, world.created)
	})

	t.Run("最大貸出日数を超えると ErrMaxRentalDaysExceeded", func(t *testing.T) {
		world := newRentalWorld()
		snapshot := builder.NewListingBuilder().WithMaxRentalDays(5).BuildSnapshot()
		world.listings[snapshot.ID] = snapshot

		// 2026-02-10〜2026-02-15 は両端含め6日
		_, err := newRentalCommands(world).CreateRental(ctx, uuid.New(), createRentalRequest(snapshot.ID))
		require.ErrorIs(t, err, commands.ErrMaxRentalDaysExceeded)
	})
}

func TestConfirmRental(t *testing.T) {
	ctx := context.Background()

	seed := func(world *rentalWorld, rentalStatus, listingStatus string) (*shared.RentalSnapshot, *shared.ListingSnapshot) {
		listingSnap := builder.NewListingBuilder().WithStatus(listingStatus).BuildSnapshot()
		rentalSnap := builder.NewRentalBuilder().
			WithListingID(listingSnap.ID).
			WithStatus(rentalStatus).
			BuildSnapshot()
		world.listings[listingSnap.ID] = listingSnap
		world.rentals[rentalSnap.ID] = rentalSnap
		return rentalSnap, listingSnap
	}

	t.Run("申請者が承諾すると confirmed になり出品が reserved になる", func(t *testing.T) {
		world := newRentalWorld()
		rentalSnap, listingSnap := seed(world, "requested", "available")

		err := newRentalCommands(world).ConfirmRental(ctx, rentalSnap.RequesterID, rentalSnap.ID)
		require.NoError(t, err)

		assert.Equal(t, rental.StatusConfirmed, world.rentalStatuses[rentalSnap.ID])
		assert.Equal(t, listing.StatusReserved, world.listingStatuses[listingSnap.ID])
	})

	t.Run("reserved の出品でも別のレンタルを承諾できる", func(t *testing.T) {
		world := newRentalWorld()
		listingSnap := builder.NewListingBuilder().WithStatus("available").BuildSnapshot()
		world.listings[listingSnap.ID] = listingSnap

		// 同じ出品に期間の重ならない申請が2件
		first := builder.NewRentalBuilder().
			WithListingID(listingSnap.ID).
			WithStatus("requested").
			WithPeriod(
				time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
				time.Date(2026, 2, 12, 0, 0, 0, 0, time.UTC),
			).
			BuildSnapshot()
		second := builder.NewRentalBuilder().
			WithListingID(listingSnap.ID).
			WithStatus("requested").
			WithPeriod(
				time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC),
				time.Date(2026, 2, 22, 0, 0, 0, 0, time.UTC),
			).
			BuildSnapshot()
		world.rentals[first.ID] = first
		world.rentals[second.ID] = second

		cmds := newRentalCommands(world)
		require.NoError(t, cmds.ConfirmRental(ctx, first.RequesterID, first.ID))
		listingSnap.Status = "reserved"

		require.NoError(t, cmds.ConfirmRental(ctx, second.RequesterID, second.ID))
		assert.Equal(t, rental.StatusConfirmed, world.rentalStatuses[second.ID])
		assert.Equal(t, listing.StatusReserved, world.listingStatuses[listingSnap.ID])
	})

	t.Run("申請者以外は ErrRentalNotOwned", func(t *testing.T) {
		world := newRentalWorld()
		rentalSnap, listingSnap := seed(world, "requested", "available")

		// 出品者でも承諾はできない
		err := newRentalCommands(world).ConfirmRental(ctx, listingSnap.OwnerID, rentalSnap.ID)
		require.ErrorIs(t, err, commands.ErrRentalNotOwned)
		assert.Empty(t, world.rentalStatuses)
	})

	t.Run("requested 以外からは ErrInvalidTransition", func(t *testing.T) {
		for _, status := range []string{"confirmed", "canceled", "completed"} {
			world := newRentalWorld()
			rentalSnap, _ := seed(world, status, "available")

			err := newRentalCommands(world).ConfirmRental(ctx, rentalSnap.RequesterID, rentalSnap.ID)
			require.ErrorIs(t, err, commands.ErrInvalidTransition, status)
		}
	})

	t.Run("存在しないレンタルは ErrRentalNotFound", func(t *testing.T) {
		world := newRentalWorld()

		err := newRentalCommands(world).ConfirmRental(ctx, uuid.New(), uuid.New())
		require.ErrorIs(t, err, commands.ErrRentalNotFound)
	})
}

func TestCancelRental(t *testing.T) {
	ctx := context.Background()

	seed := func(world *rentalWorld, rentalStatus, listingStatus string) (*shared.RentalSnapshot, *shared.ListingSnapshot) {
		listingSnap := builder.NewListingBuilder().WithStatus(listingStatus).BuildSnapshot()
		rentalSnap := builder.NewRentalBuilder().
			WithListingID(listingSnap.ID).
			WithStatus(rentalStatus).
			BuildSnapshot()
		world.listings[listingSnap.ID] = listingSnap
		world.rentals[rentalSnap.ID] = rentalSnap
		return rentalSnap, listingSnap
	}

	t.Run("requested からの取消は出品の状態を変えない", func(t *testing.T) {
		world := newRentalWorld()
		rentalSnap, listingSnap := seed(world, "requested", "available")

		err := newRentalCommands(world).CancelRental(ctx, rentalSnap.RequesterID, rentalSnap.ID)
		require.NoError(t, err)

		assert.Equal(t, rental.StatusCanceled, world.rentalStatuses[rentalSnap.ID])
		_, touched := world.listingStatuses[listingSnap.ID]
		assert.False(t, touched)
	})

	t.Run("confirmed からの取消は出品を available に戻す", func(t *testing.T) {
		world := newRentalWorld()
		rentalSnap, listingSnap := seed(world, "confirmed", "reserved")

		err := newRentalCommands(world).CancelRental(ctx, rentalSnap.RequesterID, rentalSnap.ID)
		require.NoError(t, err)

		assert.Equal(t, rental.StatusCanceled, world.rentalStatuses[rentalSnap.ID])
		assert.Equal(t, listing.StatusAvailable, world.listingStatuses[listingSnap.ID])
	})

	t.Run("出品が既に available でも confirmed の取消は成功する", func(t *testing.T) {
		world := newRentalWorld()
		rentalSnap, listingSnap := seed(world, "confirmed", "available")

		err := newRentalCommands(world).CancelRental(ctx, rentalSnap.RequesterID, rentalSnap.ID)
		require.NoError(t, err)

		assert.Equal(t, rental.StatusCanceled, world.rentalStatuses[rentalSnap.ID])
		_, touched := world.listingStatuses[listingSnap.ID]
		assert.False(t, touched)
	})

	t.Run("申請者以外は ErrRentalNotOwned", func(t *testing.T) {
		world := newRentalWorld()
		rentalSnap, listingSnap := seed(world, "requested", "available")

		err := newRentalCommands(world).CancelRental(ctx, listingSnap.OwnerID, rentalSnap.ID)
		require.ErrorIs(t, err, commands.ErrRentalNotOwned)
	})

	t.Run("開始日以降は ErrCancelWindowClosed", func(t *testing.T) {
		world := newRentalWorld()
		listingSnap := builder.NewListingBuilder().WithStatus("reserved").BuildSnapshot()
		// 開始日が「今日」のレンタル
		rentalSnap := builder.NewRentalBuilder().
			WithListingID(listingSnap.ID).
			WithStatus("confirmed").
			WithPeriod(
				time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
				time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC),
			).
			BuildSnapshot()
		world.listings[listingSnap.ID] = listingSnap
		world.rentals[rentalSnap.ID] = rentalSnap

		err := newRentalCommands(world).CancelRental(ctx, rentalSnap.RequesterID, rentalSnap.ID)
		require.ErrorIs(t, err, commands.ErrCancelWindowClosed)
		assert.Empty(t, world.rentalStatuses)
	})

	t.Run("canceled の再取消はエラーであり再生ではない", func(t *testing.T) {
		world := newRentalWorld()
		rentalSnap, _ := seed(world, "canceled", "available")

		err := newRentalCommands(world).CancelRental(ctx, rentalSnap.RequesterID, rentalSnap.ID)
		require.ErrorIs(t, err, commands.ErrInvalidTransition)
	})
}
