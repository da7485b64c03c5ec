package tape_test

import (
	"math"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	tape "github.com/deltaticks/tickindex/tape"
	mocktape "github.com/deltaticks/tickindex/tape/mocks"
)

func TestTapeRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("single tick", func(t *testing.T) {
		handler := mocktape.NewMockHandler(ctrl)
		handler.EXPECT().OnTick(gomock.Any(), gomock.Any()).Times(1)
		// The first tick sets both ends of the range.
		handler.EXPECT().OnNewHigh(gomock.Any(), gomock.Any()).Times(1)
		handler.EXPECT().OnNewLow(gomock.Any(), gomock.Any()).Times(1)

		tp := tape.NewTape(handler)
		tick, err := tp.Record(tape.SideBuy, mustUint(t, "10"), mustUint(t, "2"))
		require.NoError(t, err)
		require.NotNil(t, tick)

		require.Equal(t, uint64(1), tick.ID())
		require.Equal(t, tape.SideBuy, tick.Side())
		require.Equal(t, mustUint(t, "10"), tick.Price())
		require.Equal(t, mustUint(t, "2"), tick.Volume())
		require.Equal(t, mustUint(t, "20"), tick.Notional())

		require.Equal(t, 1, tp.Len())
		require.Same(t, tick, tp.Tick(1))
		require.Nil(t, tp.Tick(2))
		require.Equal(t, mustUint(t, "10"), tp.High())
		require.Equal(t, mustUint(t, "10"), tp.Low())
	})

	t.Run("validation", func(t *testing.T) {
		// No handler calls are expected for rejected ticks.
		handler := mocktape.NewMockHandler(ctrl)

		tp := tape.NewTape(handler)
		_, err := tp.Record(tape.Side(0), mustUint(t, "10"), mustUint(t, "1"))
		require.ErrorIs(t, err, tape.ErrInvalidTickSide)
		_, err = tp.Record(tape.Side(3), mustUint(t, "10"), mustUint(t, "1"))
		require.ErrorIs(t, err, tape.ErrInvalidTickSide)
		_, err = tp.Record(tape.SideBuy, tape.NewZeroUint(), mustUint(t, "1"))
		require.ErrorIs(t, err, tape.ErrInvalidTickPrice)
		_, err = tp.Record(tape.SideSell, mustUint(t, "10"), tape.NewZeroUint())
		require.ErrorIs(t, err, tape.ErrInvalidTickVolume)

		require.Equal(t, 0, tp.Len())
		require.Equal(t, uint64(0), tp.Checksum())
	})

	t.Run("range callbacks", func(t *testing.T) {
		handler := mocktape.NewMockHandler(ctrl)
		handler.EXPECT().OnTick(gomock.Any(), gomock.Any()).Times(4)
		// First tick and 12 extend the high, first tick and 9 the low.
		handler.EXPECT().OnNewHigh(gomock.Any(), gomock.Any()).Times(2)
		handler.EXPECT().OnNewLow(gomock.Any(), gomock.Any()).Times(2)

		tp := tape.NewTape(handler)
		for _, price := range []string{"10", "12", "11", "9"} {
			_, err := tp.Record(tape.SideBuy, mustUint(t, price), mustUint(t, "1"))
			require.NoError(t, err)
		}

		require.Equal(t, mustUint(t, "12"), tp.High())
		require.Equal(t, mustUint(t, "9"), tp.Low())
		require.Equal(t, mustUint(t, "3"), tp.Spread())
	})
}

func TestTapeStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := mocktape.NewMockHandler(ctrl)
	handler.EXPECT().OnTick(gomock.Any(), gomock.Any()).Times(4)
	handler.EXPECT().OnNewHigh(gomock.Any(), gomock.Any()).Times(2)
	handler.EXPECT().OnNewLow(gomock.Any(), gomock.Any()).Times(1)

	tp := tape.NewTape(handler)
	records := []struct {
		side   tape.Side
		price  string
		volume string
	}{
		{tape.SideBuy, "10", "2"},
		{tape.SideSell, "12", "1"},
		{tape.SideBuy, "11", "4"},
		{tape.SideSell, "11", "3"},
	}
	for _, r := range records {
		_, err := tp.Record(r.side, mustUint(t, r.price), mustUint(t, r.volume))
		require.NoError(t, err)
	}

	require.Equal(t, mustUint(t, "6"), tp.BuyVolume())
	require.Equal(t, mustUint(t, "4"), tp.SellVolume())
	require.Equal(t, mustUint(t, "10"), tp.Volume())
	require.Equal(t, mustUint(t, "109"), tp.Notional())

	vwap, err := tp.VWAP()
	require.NoError(t, err)
	require.Equal(t, mustUint(t, "10.9"), vwap)

	median, err := tp.Median()
	require.NoError(t, err)
	require.Equal(t, mustUint(t, "11"), median)

	summary, err := tp.Summary()
	require.NoError(t, err)
	require.Equal(t, tape.Summary{
		Ticks:      4,
		Low:        mustUint(t, "10"),
		High:       mustUint(t, "12"),
		Median:     mustUint(t, "11"),
		VWAP:       mustUint(t, "10.9"),
		BuyVolume:  mustUint(t, "6"),
		SellVolume: mustUint(t, "4"),
		Volume:     mustUint(t, "10"),
		Notional:   mustUint(t, "109"),
	}, summary)
}

func TestTapeQuantile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("empty tape", func(t *testing.T) {
		handler := mocktape.NewMockHandler(ctrl)
		tp := tape.NewTape(handler)

		_, err := tp.Quantile(0.5)
		require.ErrorIs(t, err, tape.ErrTapeEmpty)
		_, err = tp.VWAP()
		require.ErrorIs(t, err, tape.ErrTapeEmpty)
		_, err = tp.Summary()
		require.ErrorIs(t, err, tape.ErrTapeEmpty)
	})

	t.Run("nearest rank", func(t *testing.T) {
		handler := newRelaxedHandler(ctrl)
		tp := tape.NewTape(handler)
		for _, price := range []string{"3", "1", "5", "2", "4"} {
			_, err := tp.Record(tape.SideSell, mustUint(t, price), mustUint(t, "1"))
			require.NoError(t, err)
		}

		quantiles := []struct {
			q    float64
			want string
		}{
			{0, "1"},
			{0.2, "1"},
			{0.25, "2"},
			{0.5, "3"},
			{0.75, "4"},
			{1, "5"},
		}
		for _, qt := range quantiles {
			got, err := tp.Quantile(qt.q)
			require.NoError(t, err, qt.q)
			require.Equal(t, mustUint(t, qt.want), got, qt.q)
		}
	})

	t.Run("invalid fraction", func(t *testing.T) {
		handler := newRelaxedHandler(ctrl)
		tp := tape.NewTape(handler)
		_, err := tp.Record(tape.SideBuy, mustUint(t, "10"), mustUint(t, "1"))
		require.NoError(t, err)

		for _, q := range []float64{-0.01, 1.01, math.NaN()} {
			_, err := tp.Quantile(q)
			require.ErrorIs(t, err, tape.ErrInvalidQuantile, q)
		}
	})
}

func TestTapeProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := newRelaxedHandler(ctrl)
	tp := tape.NewTape(handler)
	require.Nil(t, tp.Profile())

	records := []struct {
		side  tape.Side
		price string
	}{
		{tape.SideBuy, "10"},
		{tape.SideSell, "11"},
		{tape.SideBuy, "10"},
		{tape.SideSell, "12"},
		{tape.SideBuy, "10"},
	}
	for _, r := range records {
		_, err := tp.Record(r.side, mustUint(t, r.price), mustUint(t, "1"))
		require.NoError(t, err)
	}

	require.Equal(t, []tape.Level{
		{Price: mustUint(t, "10"), Ticks: 3},
		{Price: mustUint(t, "11"), Ticks: 1},
		{Price: mustUint(t, "12"), Ticks: 1},
	}, tp.Profile())
}

func TestTapeEach(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := newRelaxedHandler(ctrl)
	tp := tape.NewTape(handler)

	for _, price := range []string{"10", "12", "11"} {
		_, err := tp.Record(tape.SideBuy, mustUint(t, price), mustUint(t, "1"))
		require.NoError(t, err)
	}

	// Ticks come back in arrival order, not price order.
	ids := []uint64{}
	prices := []tape.Uint{}
	tp.Each(func(tick *tape.Tick) bool {
		ids = append(ids, tick.ID())
		prices = append(prices, tick.Price())
		return false
	})
	require.Equal(t, []uint64{1, 2, 3}, ids)
	require.Equal(t, []tape.Uint{
		mustUint(t, "10"),
		mustUint(t, "12"),
		mustUint(t, "11"),
	}, prices)

	// Returning true stops the walk.
	visited := 0
	tp.Each(func(tick *tape.Tick) bool {
		visited++
		return visited == 2
	})
	require.Equal(t, 2, visited)
}

func TestTapeChecksum(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	records := []struct {
		side   tape.Side
		price  string
		volume string
	}{
		{tape.SideBuy, "10", "2"},
		{tape.SideSell, "11", "1"},
		{tape.SideBuy, "12", "3"},
	}
	feed := func(tp *tape.Tape) {
		for _, r := range records {
			_, err := tp.Record(r.side, mustUint(t, r.price), mustUint(t, r.volume))
			require.NoError(t, err)
		}
	}

	first := tape.NewTape(newRelaxedHandler(ctrl))
	second := tape.NewTape(newRelaxedHandler(ctrl))
	feed(first)
	feed(second)
	require.NotEqual(t, uint64(0), first.Checksum())
	require.Equal(t, first.Checksum(), second.Checksum())

	// A different record order yields a different checksum.
	reordered := tape.NewTape(newRelaxedHandler(ctrl))
	for i := len(records) - 1; i >= 0; i-- {
		r := records[i]
		_, err := reordered.Record(r.side, mustUint(t, r.price), mustUint(t, r.volume))
		require.NoError(t, err)
	}
	require.NotEqual(t, first.Checksum(), reordered.Checksum())

	// A replay after reset reproduces the checksum.
	second.Reset()
	require.Equal(t, uint64(0), second.Checksum())
	feed(second)
	require.Equal(t, first.Checksum(), second.Checksum())
}

func TestTapeReset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := mocktape.NewMockHandler(ctrl)
	handler.EXPECT().OnTick(gomock.Any(), gomock.Any()).AnyTimes()
	handler.EXPECT().OnNewHigh(gomock.Any(), gomock.Any()).AnyTimes()
	handler.EXPECT().OnNewLow(gomock.Any(), gomock.Any()).AnyTimes()
	handler.EXPECT().OnReset(gomock.Any()).Times(1)

	tp := tape.NewTape(handler)
	for _, price := range []string{"10", "11", "9"} {
		_, err := tp.Record(tape.SideBuy, mustUint(t, price), mustUint(t, "1"))
		require.NoError(t, err)
	}

	tp.Reset()
	require.Equal(t, 0, tp.Len())
	require.Nil(t, tp.Tick(1))
	require.Equal(t, tape.NewZeroUint(), tp.High())
	require.Equal(t, tape.NewZeroUint(), tp.Low())
	require.Equal(t, tape.NewZeroUint(), tp.Volume())
	require.Nil(t, tp.Profile())
	_, err := tp.Summary()
	require.ErrorIs(t, err, tape.ErrTapeEmpty)
	tp.Each(func(tick *tape.Tick) bool {
		t.Fatal("no ticks expected after reset")
		return true
	})

	// The tape stays usable after a reset, ids restart from 1.
	tick, err := tp.Record(tape.SideSell, mustUint(t, "5"), mustUint(t, "2"))
	require.NoError(t, err)
	require.Equal(t, uint64(1), tick.ID())
	require.Equal(t, 1, tp.Len())
	require.Equal(t, mustUint(t, "5"), tp.High())
}

func TestTapeSharedAllocator(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	allocator := tape.NewAllocator()
	first := tape.NewTapeWithAllocator(newRelaxedHandler(ctrl), allocator)
	second := tape.NewTapeWithAllocator(newRelaxedHandler(ctrl), allocator)

	_, err := first.Record(tape.SideBuy, mustUint(t, "10"), mustUint(t, "1"))
	require.NoError(t, err)
	_, err = second.Record(tape.SideSell, mustUint(t, "20"), mustUint(t, "2"))
	require.NoError(t, err)

	require.Equal(t, 1, first.Len())
	require.Equal(t, 1, second.Len())
	require.Equal(t, mustUint(t, "10"), first.High())
	require.Equal(t, mustUint(t, "20"), second.High())
}

// newRelaxedHandler returns a mock that tolerates any amount of tick and
// range callbacks, for tests that assert statistics rather than reporting.
func newRelaxedHandler(ctrl *gomock.Controller) *mocktape.MockHandler {
	handler := mocktape.NewMockHandler(ctrl)
	handler.EXPECT().OnTick(gomock.Any(), gomock.Any()).AnyTimes()
	handler.EXPECT().OnNewHigh(gomock.Any(), gomock.Any()).AnyTimes()
	handler.EXPECT().OnNewLow(gomock.Any(), gomock.Any()).AnyTimes()
	handler.EXPECT().OnReset(gomock.Any()).AnyTimes()
	return handler
}

func mustUint(t *testing.T, number string) tape.Uint {
	t.Helper()
	u, err := tape.NewUintFromFloatString(number)
	require.NoError(t, err)
	return u
}
