package service

import (
	"sort"
	"time"

	"go-laundry-console/internal/model"
	"go-laundry-console/internal/repository"
)

type ReportService interface {
	Summary(filter ReportFilter) (*ReportSummary, error)
	DashboardStats() (*DashboardStats, error)
}

// ReportFilter narrows the revenue summary. Zero values mean "no filter".
// Outlet and status live on the laundry item behind each transaction's code,
// so both are resolved through that back-reference.
type ReportFilter struct {
	Start    time.Time
	End      time.Time
	OutletID int64
	Status   model.ProcessStatus
}

type ReportSummary struct {
	TotalTransactions  int     `json:"totalTransactions"`
	TotalRevenue       int64   `json:"totalRevenue"`
	AverageTransaction float64 `json:"averageTransaction"`
	Completed          int     `json:"completedTransactions"`
	Processing         int     `json:"processingTransactions"`
	Cancelled          int     `json:"cancelledTransactions"`
}

type MonthRevenue struct {
	Name    string `json:"name"`
	Revenue int64  `json:"revenue"`
}

type NamedCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type DashboardStats struct {
	LaundryItems        int            `json:"laundryItems"`
	Outlets             int            `json:"outlets"`
	Products            int            `json:"products"`
	Transactions        int            `json:"transactions"`
	Revenue             int64          `json:"revenue"`
	PendingLaundry      int            `json:"pendingLaundry"`
	UnpaidLaundry       int            `json:"unpaidLaundry"`
	RevenueByMonth      []MonthRevenue `json:"revenueByMonth"`
	LaundryByStatus     []NamedCount   `json:"laundryByStatus"`
	ServiceDistribution []NamedCount   `json:"serviceDistribution"`
}

type reportService struct {
	txRepo      repository.TransactionRepository
	laundryRepo repository.LaundryRepository
	outletRepo  repository.OutletRepository
	productRepo repository.ProductRepository
}

func NewReportService(
	txRepo repository.TransactionRepository,
	laundryRepo repository.LaundryRepository,
	outletRepo repository.OutletRepository,
	productRepo repository.ProductRepository,
) ReportService {
	return &reportService{
		txRepo:      txRepo,
		laundryRepo: laundryRepo,
		outletRepo:  outletRepo,
		productRepo: productRepo,
	}
}

func (s *reportService) Summary(filter ReportFilter) (*ReportSummary, error) {
	txs, err := s.txRepo.FindAll()
	if err != nil {
		return nil, err
	}
	items, err := s.laundryRepo.FindAll()
	if err != nil {
		return nil, err
	}

	byCode := make(map[string]model.LaundryItem, len(items))
	for _, item := range items {
		byCode[item.Code] = item
	}

	summary := &ReportSummary{}
	for _, tx := range txs {
		date, err := time.Parse("2006-01-02", tx.Date)
		if err != nil {
			continue
		}
		if !filter.Start.IsZero() && date.Before(filter.Start) {
			continue
		}
		if !filter.End.IsZero() && date.After(filter.End) {
			continue
		}

		item, linked := byCode[tx.LaundryCode]
		if filter.OutletID != 0 && (!linked || item.OutletID != filter.OutletID) {
			continue
		}
		if filter.Status != "" && (!linked || item.ProcessStatus != filter.Status) {
			continue
		}

		summary.TotalTransactions++
		summary.TotalRevenue += tx.Amount
		if linked {
			switch item.ProcessStatus {
			case model.ProcessDone:
				summary.Completed++
			case model.ProcessOngoing:
				summary.Processing++
			case model.ProcessCancelled:
				summary.Cancelled++
			}
		}
	}

	if summary.TotalTransactions > 0 {
		summary.AverageTransaction = float64(summary.TotalRevenue) / float64(summary.TotalTransactions)
	}
	return summary, nil
}

func (s *reportService) DashboardStats() (*DashboardStats, error) {
	items, err := s.laundryRepo.FindAll()
	if err != nil {
		return nil, err
	}
	outlets, err := s.outletRepo.FindAll()
	if err != nil {
		return nil, err
	}
	products, err := s.productRepo.FindAll()
	if err != nil {
		return nil, err
	}
	txs, err := s.txRepo.FindAll()
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		LaundryItems: len(items),
		Outlets:      len(outlets),
		Products:     len(products),
		Transactions: len(txs),
	}

	for _, tx := range txs {
		stats.Revenue += tx.Amount
	}

	pending, unpaid := 0, 0
	statusCounts := map[model.ProcessStatus]int{}
	for _, item := range items {
		if item.ProcessStatus == model.ProcessOngoing {
			pending++
		}
		if item.PaymentStatus == model.PaymentUnpaid {
			unpaid++
		}
		statusCounts[item.ProcessStatus]++
	}
	stats.PendingLaundry = pending
	stats.UnpaidLaundry = unpaid
	stats.LaundryByStatus = []NamedCount{
		{Name: "Proses", Value: statusCounts[model.ProcessOngoing]},
		{Name: "Selesai", Value: statusCounts[model.ProcessDone]},
		{Name: "Batal", Value: statusCounts[model.ProcessCancelled]},
	}

	stats.RevenueByMonth = revenueByMonth(txs)
	stats.ServiceDistribution = serviceDistribution(items, products)
	return stats, nil
}

// revenueByMonth buckets the current year's transaction amounts per month,
// with every month present even when empty.
func revenueByMonth(txs []model.Transaction) []MonthRevenue {
	months := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	currentYear := time.Now().Year()

	monthly := make([]MonthRevenue, len(months))
	for i, name := range months {
		monthly[i] = MonthRevenue{Name: name}
	}

	for _, tx := range txs {
		date, err := time.Parse("2006-01-02", tx.Date)
		if err != nil || date.Year() != currentYear {
			continue
		}
		monthly[int(date.Month())-1].Revenue += tx.Amount
	}
	return monthly
}

// serviceDistribution counts intake per service and keeps the top five.
func serviceDistribution(items []model.LaundryItem, products []model.Product) []NamedCount {
	names := make(map[int64]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}

	counts := map[int64]int{}
	for _, item := range items {
		counts[item.ServiceID]++
	}

	dist := make([]NamedCount, 0, len(counts))
	for serviceID, count := range counts {
		name, ok := names[serviceID]
		if !ok {
			name = "Unknown"
		}
		dist = append(dist, NamedCount{Name: name, Value: count})
	}

	sort.Slice(dist, func(i, j int) bool {
		if dist[i].Value != dist[j].Value {
			return dist[i].Value > dist[j].Value
		}
		return dist[i].Name < dist[j].Name
	})
	if len(dist) > 5 {
		dist = dist[:5]
	}
	return dist
}
