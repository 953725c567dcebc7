package assets

import (
	"errors"
	"testing"
)

func TestNewPortfolio_DuplicateNames(t *testing.T) {
	a := mustAsset(t, "A", Stock, USD, 100, 90)
	b := mustAsset(t, "A", Fund, CNY, 50, 60)

	_, err := NewPortfolio([]Asset{a, b})
	var dup *DuplicateNameError
	if !errors.As(err, &dup) {
		t.Fatalf("NewPortfolio() error = %v, want *DuplicateNameError", err)
	}
	if dup.Name != "A" {
		t.Errorf("duplicate name = %q, want %q", dup.Name, "A")
	}
}

func TestNewPortfolio_DistinctNames(t *testing.T) {
	p, err := NewPortfolio([]Asset{
		mustAsset(t, "A", Stock, USD, 100, 90),
		mustAsset(t, "B", Stock, USD, 50, 60),
	})
	if err != nil {
		t.Fatalf("NewPortfolio() failed: %v", err)
	}
	if p.Size() != 2 {
		t.Errorf("Size() = %d, want 2", p.Size())
	}
	// names are case-sensitive, "a" is not a duplicate of "A"
	if _, err := NewPortfolio([]Asset{
		mustAsset(t, "A", Stock, USD, 1, 1),
		mustAsset(t, "a", Stock, USD, 1, 1),
	}); err != nil {
		t.Errorf("case-differing names rejected: %v", err)
	}
}

func TestPortfolio_Grouping(t *testing.T) {
	p, err := NewPortfolio([]Asset{
		mustAsset(t, "Tesla", Stock, USD, 1000, 900),
		mustAsset(t, "Tencent", Stock, HKD, 800, 850),
		mustAsset(t, "CMB", BankDeposit, CNY, 5000, 5000),
	})
	if err != nil {
		t.Fatalf("NewPortfolio() failed: %v", err)
	}

	grouped := p.GroupByAssetType()
	if len(grouped) != 2 {
		t.Fatalf("GroupByAssetType() has %d groups, want 2", len(grouped))
	}
	if len(grouped[Stock]) != 2 {
		t.Errorf("stock group has %d assets, want 2", len(grouped[Stock]))
	}
	if len(grouped[BankDeposit]) != 1 {
		t.Errorf("bank deposit group has %d assets, want 1", len(grouped[BankDeposit]))
	}
	// grouping preserves every asset
	n := 0
	for _, list := range grouped {
		n += len(list)
	}
	if n != p.Size() {
		t.Errorf("grouping dropped assets: %d grouped, %d in portfolio", n, p.Size())
	}

	if got := p.AssetTypes(); len(got) != 2 || got[0] != Stock || got[1] != BankDeposit {
		t.Errorf("AssetTypes() = %v, want [stock bank_deposit]", got)
	}
	if got := p.AssetsInCurrency(HKD); len(got) != 1 || got[0].Name() != "Tencent" {
		t.Errorf("AssetsInCurrency(HKD) = %v", got)
	}
	if _, ok := p.ByName("CMB"); !ok {
		t.Error("ByName(CMB) not found")
	}
	if _, ok := p.ByName("missing"); ok {
		t.Error("ByName(missing) unexpectedly found")
	}
}

func TestPortfolio_Totals(t *testing.T) {
	p, err := NewPortfolio([]Asset{
		mustAsset(t, "A", Stock, USD, 1000, 900),
		mustAsset(t, "B", BankDeposit, CNY, 0, 200),
	})
	if err != nil {
		t.Fatalf("NewPortfolio() failed: %v", err)
	}
	// direct sums, no conversion
	if got := p.TotalCurrentBalance(); got.String() != "1000" {
		t.Errorf("TotalCurrentBalance() = %s, want 1000", got)
	}
	if got := p.TotalProfitLoss(); got.String() != "-100" {
		t.Errorf("TotalProfitLoss() = %s, want -100", got)
	}
}

func TestPortfolio_PrepareNextMonth(t *testing.T) {
	p, err := NewPortfolio([]Asset{
		mustAsset(t, "Visa", CreditCard, CNY, 500, 0),
		mustAsset(t, "CMB", BankDeposit, CNY, 0, 200),
	})
	if err != nil {
		t.Fatalf("NewPortfolio() failed: %v", err)
	}

	next, err := p.PrepareNextMonth()
	if err != nil {
		t.Fatalf("PrepareNextMonth() failed: %v", err)
	}
	if next == p {
		t.Fatal("PrepareNextMonth() returned the same portfolio")
	}
	if next.Size() != 2 {
		t.Fatalf("next portfolio size = %d, want 2", next.Size())
	}

	card, _ := next.ByName("Visa")
	if card.CurrentBalance().String() != "500" || !card.PreviousBalance().IsZero() {
		t.Errorf("credit card rolled forward: current=%s previous=%s, want 500/0",
			card.CurrentBalance(), card.PreviousBalance())
	}
	deposit, _ := next.ByName("CMB")
	if !deposit.CurrentBalance().IsZero() || !deposit.PreviousBalance().IsZero() {
		t.Errorf("bank deposit roll-forward: current=%s previous=%s, want 0/0",
			deposit.CurrentBalance(), deposit.PreviousBalance())
	}
}
