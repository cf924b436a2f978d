// README: Bike station tests (rental lifecycle, fines, billing).
package bike

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/LeonYaquinto/TrabajoTarjeta2025YaquintoLuchini/internal/clock"
	"github.com/LeonYaquinto/TrabajoTarjeta2025YaquintoLuchini/internal/modules/card"
)

var testNow = time.Date(2025, time.September, 2, 10, 0, 0, 0, time.UTC)

func fundedCard(t *testing.T, clk clock.Clock) *card.Card {
	t.Helper()
	c, err := card.NewIssuer(clk).Issue(card.KindStandard)
	if err != nil {
		t.Fatal(err)
	}
	c.Load(decimal.NewFromInt(20000))
	return c
}

func TestCheckoutChargesDailyFee(t *testing.T) {
	clk := clock.NewManual(testNow)
	c := fundedCard(t, clk)
	s := NewStation("Pichincha", clk)

	if !s.Checkout(c) {
		t.Fatal("checkout failed")
	}
	if !s.HasCheckedOut(c) {
		t.Error("card should have an open checkout")
	}
	want := decimal.NewFromInt(20000).Sub(DailyFee)
	if !c.Balance().Equal(want) {
		t.Errorf("balance = %s, want %s", c.Balance(), want)
	}
}

func TestDoubleCheckoutRejected(t *testing.T) {
	clk := clock.NewManual(testNow)
	c := fundedCard(t, clk)
	s := NewStation("Pichincha", clk)

	s.Checkout(c)
	balance := c.Balance()
	if s.Checkout(c) {
		t.Error("second checkout without a return must fail")
	}
	if !c.Balance().Equal(balance) {
		t.Errorf("rejected checkout mutated balance: %s", c.Balance())
	}
}

func TestReturnWithoutCheckoutRejected(t *testing.T) {
	clk := clock.NewManual(testNow)
	c := fundedCard(t, clk)
	s := NewStation("Pichincha", clk)
	if s.Return(c) {
		t.Error("return without a checkout must fail")
	}
}

func TestNilCardGuards(t *testing.T) {
	s := NewStation("Pichincha", clock.NewManual(testNow))
	if s.Checkout(nil) || s.Return(nil) || s.HasCheckedOut(nil) {
		t.Error("nil card operations must fail")
	}
	if s.PendingFines(nil) != 0 {
		t.Error("nil card has no fines")
	}
	if !s.AmountDue(nil).IsZero() {
		t.Error("nil card owes nothing")
	}
}

func TestOverstayAccruesFineBilledNextCheckout(t *testing.T) {
	clk := clock.NewManual(testNow)
	c := fundedCard(t, clk)
	s := NewStation("Pichincha", clk)

	s.Checkout(c)
	clk.Advance(MaxRental + time.Minute)
	if !s.Return(c) {
		t.Fatal("late return failed")
	}
	if got := s.PendingFines(c); got != 1 {
		t.Fatalf("pending fines = %d, want 1", got)
	}
	want := DailyFee.Add(OverstayFine)
	if !s.AmountDue(c).Equal(want) {
		t.Errorf("amount due = %s, want %s", s.AmountDue(c), want)
	}

	balance := c.Balance()
	if !s.Checkout(c) {
		t.Fatal("second checkout failed")
	}
	if !c.Balance().Equal(balance.Sub(want)) {
		t.Errorf("balance = %s, want %s", c.Balance(), balance.Sub(want))
	}
	if got := s.PendingFines(c); got != 0 {
		t.Errorf("fines after billing = %d, want 0", got)
	}
}

func TestReturnWithinWindowNoFine(t *testing.T) {
	clk := clock.NewManual(testNow)
	c := fundedCard(t, clk)
	s := NewStation("Pichincha", clk)

	s.Checkout(c)
	clk.Advance(MaxRental) // exactly the limit is still on time
	if !s.Return(c) {
		t.Fatal("return failed")
	}
	if got := s.PendingFines(c); got != 0 {
		t.Errorf("pending fines = %d, want 0", got)
	}
	if s.HasCheckedOut(c) {
		t.Error("checkout should be closed")
	}
}

func TestFinesAccumulateAcrossRentals(t *testing.T) {
	clk := clock.NewManual(testNow)
	c := fundedCard(t, clk)
	s := NewStation("Pichincha", clk)

	for i := 0; i < 2; i++ {
		if !s.Checkout(c) {
			t.Fatalf("checkout %d failed", i+1)
		}
		// First checkout bills the fine from the previous lap, then a new
		// overstay accrues again.
		clk.Advance(2 * MaxRental)
		if !s.Return(c) {
			t.Fatalf("return %d failed", i+1)
		}
	}
	if got := s.PendingFines(c); got != 1 {
		t.Errorf("pending fines = %d, want 1", got)
	}
}

func TestCheckoutInsufficientBalance(t *testing.T) {
	clk := clock.NewManual(testNow)
	issuer := card.NewIssuer(clk)
	c, _ := issuer.Issue(card.KindHalfFare) // floor zero
	c.Load(decimal.NewFromInt(2000))        // covers one daily fee, nothing more

	s := NewStation("Pichincha", clk)
	if !s.Checkout(c) {
		t.Fatal("checkout with 2000 should cover the 1777.50 fee")
	}
	s2 := NewStation("Plaza", clk)
	balance := c.Balance() // 222.50 left
	if s2.Checkout(c) {
		t.Error("checkout without funds must fail")
	}
	if !c.Balance().Equal(balance) {
		t.Errorf("rejected checkout mutated balance: %s", c.Balance())
	}
	if s2.HasCheckedOut(c) {
		t.Error("failed checkout must not open a rental")
	}
}
