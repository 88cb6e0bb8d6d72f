package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/damon-houk/expense-tracker/internal/application/service"
	"github.com/damon-houk/expense-tracker/internal/domain/filter"
	"github.com/damon-houk/expense-tracker/internal/domain/repository"
	"github.com/damon-houk/expense-tracker/internal/infrastructure/db"
	"github.com/damon-houk/expense-tracker/internal/infrastructure/handler"
	"github.com/damon-houk/expense-tracker/internal/infrastructure/logger"
	"github.com/damon-houk/expense-tracker/internal/infrastructure/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var categories = []string{"food", "travel", "bills", "rent", "fun"}

func TestPerformance(t *testing.T) {
	// Skip in short mode or CI
	if testing.Short() {
		t.Skip("Skipping performance test in short mode")
	}

	numTransactions := 500

	for _, backend := range []string{db.BackendMemory, db.BackendBadger} {
		t.Run(backend, func(t *testing.T) {
			ledger, closeLedger, err := db.OpenLedger(backend, logger.NopLogger{})
			require.NoError(t, err)
			defer closeLedger()

			ctx := context.Background()
			svc := service.NewTrackerService(ledger, view.NewTableView(nil), service.WithLogger(logger.NopLogger{}))

			startTime := time.Now()
			for i := 0; i < numTransactions; i++ {
				amount := float64(1 + rand.Intn(20))
				ok, err := svc.AddTransaction(ctx, amount, categories[i%len(categories)])
				require.NoError(t, err)
				require.True(t, ok)
			}
			duration := time.Since(startTime)
			t.Logf("%s add: %d transactions in %v (%.2f tx/sec)",
				backend, numTransactions, duration, float64(numTransactions)/duration.Seconds())

			cf, err := filter.NewCategoryFilter("food")
			require.NoError(t, err)
			svc.SetFilter(cf)

			startTime = time.Now()
			positions, err := svc.ApplyFilter(ctx)
			require.NoError(t, err)
			t.Logf("%s filter: %d matches in %v", backend, len(positions), time.Since(startTime))
			assert.Len(t, positions, numTransactions/len(categories))

			startTime = time.Now()
			for i := 0; i < numTransactions/2; i++ {
				require.NoError(t, svc.RemoveTransaction(ctx, []int{0}))
			}
			t.Logf("%s undo: %d removals in %v", backend, numTransactions/2, time.Since(startTime))

			snapshot, err := svc.Transactions(ctx)
			require.NoError(t, err)
			assert.Len(t, snapshot, numTransactions-numTransactions/2)
		})
	}
}

// TestConcurrentRequests checks that concurrent API calls are serialized onto
// the single-threaded tracker without losing entries
func TestConcurrentRequests(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping performance test in short mode")
	}

	server := newServer(t, db.NewMemoryLedger())
	concurrency := 10
	perWorker := 20

	wg := sync.WaitGroup{}
	wg.Add(concurrency)
	for i := 0; i < concurrency; i++ {
		go func(workerID int) {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				body, _ := json.Marshal(handler.AddTransactionRequest{
					Amount:   float64(workerID + 1),
					Category: fmt.Sprintf("worker-%d", workerID),
				})
				resp, err := http.Post(server.URL+"/transactions", "application/json", bytes.NewReader(body))
				if err != nil {
					t.Errorf("Error adding transaction: %v", err)
					return
				}
				resp.Body.Close()
			}
		}(i)
	}
	wg.Wait()

	// read back through the API so the read is serialized with the writes
	resp, err := http.Get(server.URL + "/transactions")
	require.NoError(t, err)
	defer resp.Body.Close()

	var table handler.TableResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&table))
	assert.Len(t, table.Rows, concurrency*perWorker)
}

func newServer(t *testing.T, ledger repository.TransactionRepository) *httptest.Server {
	t.Helper()
	log := logger.NopLogger{}
	tv := view.NewTableView(nil)
	svc := service.NewTrackerService(ledger, tv, service.WithLogger(log))

	server := httptest.NewServer(handler.NewRouter(handler.NewTrackerHandler(svc, tv, log), log))
	t.Cleanup(server.Close)
	return server
}
