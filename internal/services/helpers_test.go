package services

import (
	"testing"
	"time"

	"shoptrack/internal/ids"
	"shoptrack/internal/repositories"
	"shoptrack/internal/storage"
	"shoptrack/internal/timeutil"

	"github.com/stretchr/testify/require"
)

// scriptedKV wraps MemStore so tests can fail the Nth write to a key and
// drive the partial-failure paths.
type scriptedKV struct {
	*storage.MemStore
	writes map[string]int
	fail   func(key string, attempt int) bool
}

func newScriptedKV(fail func(key string, attempt int) bool) *scriptedKV {
	return &scriptedKV{
		MemStore: storage.NewMemStore(),
		writes:   make(map[string]int),
		fail:     fail,
	}
}

func (k *scriptedKV) Write(key string, data []byte) error {
	k.writes[key]++
	if k.fail != nil && k.fail(key, k.writes[key]) {
		return &storage.PersistenceError{Op: "write", Key: key, Err: errScripted}
	}
	return k.MemStore.Write(key, data)
}

var errScripted = &scriptedFailure{}

type scriptedFailure struct{}

func (*scriptedFailure) Error() string { return "scripted write failure" }

type env struct {
	store     storage.KV
	products  *repositories.ProductRepository
	sales     *repositories.SaleRepository
	purchases *repositories.PurchaseRepository
	sequences *repositories.SequenceRepository
	inventory *InventoryService
	reports   *ReportService
	now       time.Time
}

// newEnv pins the timezone and clock so calendar windows are deterministic.
func newEnv(t *testing.T, store storage.KV) *env {
	t.Helper()

	prev := timeutil.Location
	require.NoError(t, timeutil.SetLocation("Asia/Karachi"))
	t.Cleanup(func() { timeutil.Location = prev })

	if store == nil {
		store = storage.NewMemStore()
	}

	e := &env{
		store:     store,
		products:  repositories.NewProductRepository(store),
		sales:     repositories.NewSaleRepository(store),
		purchases: repositories.NewPurchaseRepository(store),
		sequences: repositories.NewSequenceRepository(store),
		now:       time.Date(2024, 3, 15, 15, 0, 0, 0, timeutil.Location),
	}
	e.inventory = NewInventoryService(e.products, e.sales, e.purchases, e.sequences, ids.NewSequentialGenerator("id"))
	e.inventory.Now = func() time.Time { return e.now }
	e.reports = NewReportService(e.products, e.sales, e.purchases)
	e.reports.Now = e.inventory.Now
	return e
}
