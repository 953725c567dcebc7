package assets

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func newTestRepository(t *testing.T, content string) *YAMLRepository {
	t.Helper()
	path := filepath.Join(t.TempDir(), "assets.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	repo, err := NewYAMLRepository(path, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewYAMLRepository() failed: %v", err)
	}
	return repo
}

func TestNewYAMLRepository_PathValidation(t *testing.T) {
	tests := []struct {
		path string
		ok   bool
	}{
		{"assets.yaml", true},
		{"assets.yml", true},
		{"ASSETS.YAML", true},
		{"", false},
		{"assets.json", false},
		{"assets", false},
	}
	for _, tt := range tests {
		_, err := NewYAMLRepository(tt.path, zerolog.Nop())
		if (err == nil) != tt.ok {
			t.Errorf("NewYAMLRepository(%q) error = %v, want ok=%v", tt.path, err, tt.ok)
		}
	}
}

func TestYAMLRepository_NextMonthPath(t *testing.T) {
	tests := []struct{ path, want string }{
		{"assets.yaml", "assets_next_month.yaml"},
		{"2026/august.yml", "2026/august_next_month.yml"},
	}
	for _, tt := range tests {
		repo, err := NewYAMLRepository(tt.path, zerolog.Nop())
		if err != nil {
			t.Fatal(err)
		}
		if got := repo.NextMonthPath(); got != tt.want {
			t.Errorf("NextMonthPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestYAMLRepository_LoadPortfolio(t *testing.T) {
	repo := newTestRepository(t, `
stock:
  - name: Apple
    money_code: USD
    current_account_balance: 1500.50
    last_month_account_balance: 1400.00
bank_deposit:
  - name: CMB
    money_code: CNY
    current_account_balance: 10000
    last_month_account_balance: 10000
`)
	p, err := repo.LoadPortfolio()
	if err != nil {
		t.Fatalf("LoadPortfolio() failed: %v", err)
	}
	if p.Size() != 2 {
		t.Fatalf("loaded %d assets, want 2", p.Size())
	}
	apple, ok := p.ByName("Apple")
	if !ok {
		t.Fatal("ByName(Apple) found nothing")
	}
	if apple.Type() != Stock || apple.Currency() != USD {
		t.Errorf("Apple = %s", apple)
	}
	if apple.CurrentBalance().StringFixed(2) != "1500.50" {
		t.Errorf("Apple current = %s, want 1500.50", apple.CurrentBalance())
	}
}

func TestYAMLRepository_LoadPortfolio_SkipsInvalidRecords(t *testing.T) {
	// unknown type, unknown currency and a negative balance are all skipped
	// with a warning; the remaining valid record still loads.
	repo := newTestRepository(t, `
crypto:
  - name: BTC
    money_code: USD
    current_account_balance: 1
    last_month_account_balance: 1
stock:
  - name: Broken
    money_code: XXX
    current_account_balance: 1
    last_month_account_balance: 1
  - name: Negative
    money_code: USD
    current_account_balance: -5
    last_month_account_balance: 1
  - name: Apple
    money_code: USD
    current_account_balance: 100
    last_month_account_balance: 90
`)
	p, err := repo.LoadPortfolio()
	if err != nil {
		t.Fatalf("LoadPortfolio() failed: %v", err)
	}
	if p.Size() != 1 {
		t.Fatalf("loaded %d assets, want 1", p.Size())
	}
	if _, ok := p.ByName("Apple"); !ok {
		t.Error("valid record was not loaded")
	}
}

func TestYAMLRepository_LoadPortfolio_DuplicateNamesFatal(t *testing.T) {
	repo := newTestRepository(t, `
stock:
  - name: Apple
    money_code: USD
    current_account_balance: 1
    last_month_account_balance: 1
fund:
  - name: Apple
    money_code: CNY
    current_account_balance: 1
    last_month_account_balance: 1
`)
	_, err := repo.LoadPortfolio()
	var dup *DuplicateNameError
	if !errors.As(err, &dup) {
		t.Fatalf("LoadPortfolio() error = %v, want DuplicateNameError", err)
	}
	if dup.Name != "Apple" {
		t.Errorf("duplicate name = %q, want Apple", dup.Name)
	}
}

func TestYAMLRepository_LoadPortfolio_MissingFile(t *testing.T) {
	repo, err := NewYAMLRepository(filepath.Join(t.TempDir(), "nope.yaml"), zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := repo.LoadPortfolio(); err == nil {
		t.Error("LoadPortfolio() on a missing file succeeded")
	}
}

func TestYAMLRepository_LoadPortfolio_MalformedYAML(t *testing.T) {
	repo := newTestRepository(t, "stock: [unclosed")
	if _, err := repo.LoadPortfolio(); err == nil {
		t.Error("LoadPortfolio() on malformed YAML succeeded")
	}
}

func TestYAMLRepository_SaveNextMonthPortfolio(t *testing.T) {
	repo := newTestRepository(t, `
credit_card:
  - name: Visa
    money_code: CNY
    current_account_balance: 500
    last_month_account_balance: 300
stock:
  - name: Apple
    money_code: USD
    current_account_balance: 1000
    last_month_account_balance: 900
`)
	p, err := repo.LoadPortfolio()
	if err != nil {
		t.Fatal(err)
	}
	next, err := p.PrepareNextMonth()
	if err != nil {
		t.Fatal(err)
	}
	if err := repo.SaveNextMonthPortfolio(NextMonthDataFrom(next)); err != nil {
		t.Fatalf("SaveNextMonthPortfolio() failed: %v", err)
	}

	written, err := os.ReadFile(repo.NextMonthPath())
	if err != nil {
		t.Fatalf("template file was not written: %v", err)
	}
	text := string(written)
	// sections come out in declaration order: stock before credit_card
	if si, ci := strings.Index(text, "stock:"), strings.Index(text, "credit_card:"); si < 0 || ci < 0 || si > ci {
		t.Errorf("section order wrong:\n%s", text)
	}

	// round-trip the template and check the roll rules
	tmplRepo, err := NewYAMLRepository(repo.NextMonthPath(), zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	reloaded, err := tmplRepo.LoadPortfolio()
	if err != nil {
		t.Fatalf("could not reload template: %v", err)
	}
	apple, ok := reloaded.ByName("Apple")
	if !ok {
		t.Fatal("Apple missing from template")
	}
	if !apple.CurrentBalance().IsZero() || apple.PreviousBalance().StringFixed(2) != "1000.00" {
		t.Errorf("Apple rolled to current=%s previous=%s", apple.CurrentBalance(), apple.PreviousBalance())
	}
	visa, ok := reloaded.ByName("Visa")
	if !ok {
		t.Fatal("Visa missing from template")
	}
	if visa.CurrentBalance().StringFixed(2) != "500.00" || visa.PreviousBalance().StringFixed(2) != "300.00" {
		t.Errorf("Visa rolled to current=%s previous=%s, want balances kept", visa.CurrentBalance(), visa.PreviousBalance())
	}
}

func TestYAMLRepository_SavePortfolio_RoundTrip(t *testing.T) {
	original := `
stock:
  - name: Apple
    money_code: USD
    current_account_balance: 1500.5
    last_month_account_balance: 1400
`
	repo := newTestRepository(t, original)
	p, err := repo.LoadPortfolio()
	if err != nil {
		t.Fatal(err)
	}
	if err := repo.SavePortfolio(p); err != nil {
		t.Fatalf("SavePortfolio() failed: %v", err)
	}
	reloaded, err := repo.LoadPortfolio()
	if err != nil {
		t.Fatalf("could not reload saved file: %v", err)
	}
	if reloaded.Size() != p.Size() {
		t.Fatalf("round trip lost assets: %d != %d", reloaded.Size(), p.Size())
	}
	a, _ := p.ByName("Apple")
	b, ok := reloaded.ByName("Apple")
	if !ok {
		t.Fatal("Apple missing after save")
	}
	if !a.Equal(b) {
		t.Errorf("round trip changed Apple: %s != %s", a, b)
	}
}
