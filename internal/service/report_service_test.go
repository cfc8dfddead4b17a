package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-laundry-console/internal/model"
	"go-laundry-console/internal/repository"
	"go-laundry-console/internal/storage"
	"go-laundry-console/internal/store"
)

type reportFixture struct {
	svc         ReportService
	laundryRepo repository.LaundryRepository
	outletRepo  repository.OutletRepository
	productRepo repository.ProductRepository
	txRepo      repository.TransactionRepository
	year        int
}

func newReportFixture(t *testing.T) *reportFixture {
	t.Helper()
	st := store.New(storage.NewMemory())
	f := &reportFixture{
		laundryRepo: repository.NewLaundryRepo(st),
		outletRepo:  repository.NewOutletRepo(st),
		productRepo: repository.NewProductRepo(st),
		txRepo:      repository.NewTransactionRepo(st),
		year:        time.Now().Year(),
	}
	f.svc = NewReportService(f.txRepo, f.laundryRepo, f.outletRepo, f.productRepo)
	return f
}

func (f *reportFixture) addItem(t *testing.T, code string, outletID, serviceID int64, process model.ProcessStatus, payment model.PaymentStatus) {
	t.Helper()
	require.NoError(t, f.laundryRepo.Create(&model.LaundryItem{
		Code:          code,
		CustomerName:  "Budi",
		CustomerPhone: "0812",
		ServiceID:     serviceID,
		Quantity:      1,
		OutletID:      outletID,
		ProcessStatus: process,
		PaymentStatus: payment,
		CreatedAt:     fmt.Sprintf("%d-03-01", f.year),
	}))
}

func (f *reportFixture) addTx(t *testing.T, code string, amount int64, date string) {
	t.Helper()
	require.NoError(t, f.txRepo.Create(&model.Transaction{
		LaundryCode: code,
		ServiceID:   1,
		UnitPrice:   amount,
		Quantity:    1,
		Amount:      amount,
		Date:        date,
	}))
}

func (f *reportFixture) seedBasic(t *testing.T) {
	t.Helper()
	f.addItem(t, "LD-001", 1, 1, model.ProcessDone, model.PaymentPaid)
	f.addItem(t, "LD-002", 2, 1, model.ProcessDone, model.PaymentPaid)
	f.addItem(t, "LD-003", 1, 2, model.ProcessOngoing, model.PaymentUnpaid)
	f.addTx(t, "LD-001", 10000, fmt.Sprintf("%d-03-10", f.year))
	f.addTx(t, "LD-002", 20000, fmt.Sprintf("%d-04-20", f.year))
}

func TestSummaryUnfiltered(t *testing.T) {
	f := newReportFixture(t)
	f.seedBasic(t)

	summary, err := f.svc.Summary(ReportFilter{})
	require.NoError(t, err)

	assert.Equal(t, 2, summary.TotalTransactions)
	assert.Equal(t, int64(30000), summary.TotalRevenue)
	assert.InDelta(t, 15000.0, summary.AverageTransaction, 0.001)
	assert.Equal(t, 2, summary.Completed)
	assert.Equal(t, 0, summary.Processing)
}

func TestSummaryEmpty(t *testing.T) {
	f := newReportFixture(t)

	summary, err := f.svc.Summary(ReportFilter{})
	require.NoError(t, err)
	assert.Equal(t, 0, summary.TotalTransactions)
	assert.Zero(t, summary.AverageTransaction)
}

func TestSummaryDateRange(t *testing.T) {
	f := newReportFixture(t)
	f.seedBasic(t)

	start := time.Date(f.year, 4, 1, 0, 0, 0, 0, time.UTC)
	summary, err := f.svc.Summary(ReportFilter{Start: start})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.TotalTransactions)
	assert.Equal(t, int64(20000), summary.TotalRevenue)

	end := time.Date(f.year, 3, 31, 0, 0, 0, 0, time.UTC)
	summary, err = f.svc.Summary(ReportFilter{End: end})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.TotalTransactions)
	assert.Equal(t, int64(10000), summary.TotalRevenue)
}

func TestSummaryOutletFilter(t *testing.T) {
	f := newReportFixture(t)
	f.seedBasic(t)

	summary, err := f.svc.Summary(ReportFilter{OutletID: 2})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.TotalTransactions)
	assert.Equal(t, int64(20000), summary.TotalRevenue)
}

func TestSummaryOutletFilterExcludesUnlinked(t *testing.T) {
	f := newReportFixture(t)
	f.seedBasic(t)
	// A transaction whose laundry item was deleted has no outlet to match
	f.addTx(t, "LD-GONE", 99000, fmt.Sprintf("%d-05-01", f.year))

	summary, err := f.svc.Summary(ReportFilter{OutletID: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.TotalTransactions)

	// Without a filter the orphaned transaction still counts toward revenue
	summary, err = f.svc.Summary(ReportFilter{})
	require.NoError(t, err)
	assert.Equal(t, 3, summary.TotalTransactions)
	assert.Equal(t, int64(129000), summary.TotalRevenue)
}

func TestSummaryStatusFilter(t *testing.T) {
	f := newReportFixture(t)
	f.seedBasic(t)
	f.addItem(t, "LD-004", 1, 1, model.ProcessCancelled, model.PaymentRefund)
	f.addTx(t, "LD-004", 5000, fmt.Sprintf("%d-05-05", f.year))

	summary, err := f.svc.Summary(ReportFilter{Status: model.ProcessCancelled})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.TotalTransactions)
	assert.Equal(t, int64(5000), summary.TotalRevenue)
	assert.Equal(t, 1, summary.Cancelled)
}

func TestDashboardStats(t *testing.T) {
	f := newReportFixture(t)
	f.seedBasic(t)
	require.NoError(t, f.outletRepo.Create(&model.Outlet{Name: "Central", Address: "Jl. Merdeka", Phone: "021"}))
	require.NoError(t, f.productRepo.Create(&model.Product{Name: "Cuci Kering", Price: 7000, OutletID: 1, Type: model.TypeKiloan}))
	require.NoError(t, f.productRepo.Create(&model.Product{Name: "Setrika Saja", Price: 5000, OutletID: 1, Type: model.TypeSatuan}))

	stats, err := f.svc.DashboardStats()
	require.NoError(t, err)

	assert.Equal(t, 3, stats.LaundryItems)
	assert.Equal(t, 1, stats.Outlets)
	assert.Equal(t, 2, stats.Products)
	assert.Equal(t, 2, stats.Transactions)
	assert.Equal(t, int64(30000), stats.Revenue)
	assert.Equal(t, 1, stats.PendingLaundry)
	assert.Equal(t, 1, stats.UnpaidLaundry)

	assert.Equal(t, []NamedCount{
		{Name: "Proses", Value: 1},
		{Name: "Selesai", Value: 2},
		{Name: "Batal", Value: 0},
	}, stats.LaundryByStatus)
}

func TestRevenueByMonthBuckets(t *testing.T) {
	f := newReportFixture(t)
	f.addTx(t, "LD-001", 10000, fmt.Sprintf("%d-03-10", f.year))
	f.addTx(t, "LD-002", 20000, fmt.Sprintf("%d-03-25", f.year))
	f.addTx(t, "LD-003", 5000, fmt.Sprintf("%d-11-02", f.year))
	// Prior-year revenue stays out of the current-year chart
	f.addTx(t, "LD-OLD", 77000, fmt.Sprintf("%d-03-10", f.year-1))

	stats, err := f.svc.DashboardStats()
	require.NoError(t, err)

	require.Len(t, stats.RevenueByMonth, 12)
	assert.Equal(t, MonthRevenue{Name: "Mar", Revenue: 30000}, stats.RevenueByMonth[2])
	assert.Equal(t, MonthRevenue{Name: "Nov", Revenue: 5000}, stats.RevenueByMonth[10])
	assert.Equal(t, MonthRevenue{Name: "Jan", Revenue: 0}, stats.RevenueByMonth[0])
}

func TestServiceDistribution(t *testing.T) {
	f := newReportFixture(t)
	require.NoError(t, f.productRepo.Create(&model.Product{Name: "Cuci Kering", Price: 7000, OutletID: 1, Type: model.TypeKiloan}))
	require.NoError(t, f.productRepo.Create(&model.Product{Name: "Cuci Setrika", Price: 10000, OutletID: 1, Type: model.TypeKiloan}))

	f.addItem(t, "LD-001", 1, 1, model.ProcessOngoing, model.PaymentUnpaid)
	f.addItem(t, "LD-002", 1, 2, model.ProcessOngoing, model.PaymentUnpaid)
	f.addItem(t, "LD-003", 1, 2, model.ProcessOngoing, model.PaymentUnpaid)
	f.addItem(t, "LD-004", 1, 999, model.ProcessOngoing, model.PaymentUnpaid)

	stats, err := f.svc.DashboardStats()
	require.NoError(t, err)

	assert.Equal(t, []NamedCount{
		{Name: "Cuci Setrika", Value: 2},
		{Name: "Cuci Kering", Value: 1},
		{Name: "Unknown", Value: 1},
	}, stats.ServiceDistribution)
}
