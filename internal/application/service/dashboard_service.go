package service

import (
	"context"
	"sort"
	"time"

	"github.com/billerone/billerone-web/internal/domain/entity"
	"github.com/shopspring/decimal"
)

const topClientsLimit = 5

// DashboardService aggregates the cached lists of a workspace
type DashboardService struct {
	now func() time.Time
}

// NewDashboardService creates a new dashboard service
func NewDashboardService() *DashboardService {
	return &DashboardService{now: time.Now}
}

// DashboardStats represents dashboard statistics
type DashboardStats struct {
	TotalClients   int                `json:"total_clients"`
	TotalSellers   int                `json:"total_sellers"`
	TotalArticles  int                `json:"total_articles"`
	ActiveArticles int                `json:"active_articles"`
	TotalInvoices  int                `json:"total_invoices"`
	TotalRevenue   decimal.Decimal    `json:"total_revenue"`
	MonthlyRevenue decimal.Decimal    `json:"monthly_revenue"`
	SalesBySeller  []SellerSalesPoint `json:"sales_by_seller"`
	DailySalesData []DailySalesPoint  `json:"daily_sales_data"`
}

// SellerSalesPoint represents the invoiced total of one seller
type SellerSalesPoint struct {
	SellerID     int             `json:"seller_id"`
	Seller       string          `json:"seller"`
	Total        decimal.Decimal `json:"total"`
	InvoiceCount int             `json:"invoice_count"`
}

// DailySalesPoint represents a daily sales data point
type DailySalesPoint struct {
	Date    string          `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
}

// MonthlySalesPoint represents the invoiced total of one month
type MonthlySalesPoint struct {
	Month        string          `json:"month"`
	Total        decimal.Decimal `json:"total"`
	InvoiceCount int             `json:"invoice_count"`
}

// ClientSalesPoint represents the invoiced total of one client
type ClientSalesPoint struct {
	ClientID     int             `json:"client_id"`
	Client       string          `json:"client"`
	Total        decimal.Decimal `json:"total"`
	InvoiceCount int             `json:"invoice_count"`
}

// SalesReport represents sales within a date range
type SalesReport struct {
	From       *time.Time          `json:"from,omitempty"`
	To         *time.Time          `json:"to,omitempty"`
	Total      decimal.Decimal     `json:"total"`
	Months     []MonthlySalesPoint `json:"months"`
	TopClients []ClientSalesPoint  `json:"top_clients"`
}

// GetDashboardStats returns dashboard statistics
func (s *DashboardService) GetDashboardStats(ctx context.Context, ws *Workspace) (*DashboardStats, error) {
	for _, load := range []func(context.Context) error{
		ws.Clients.EnsureLoaded,
		ws.Sellers.EnsureLoaded,
		ws.Articles.EnsureLoaded,
		ws.Invoices.EnsureLoaded,
	} {
		if err := load(ctx); err != nil {
			return nil, err
		}
	}

	articles := ws.Articles.Items()
	invoices := ws.Invoices.Items()

	stats := &DashboardStats{
		TotalClients:   len(ws.Clients.Items()),
		TotalSellers:   len(ws.Sellers.Items()),
		TotalArticles:  len(articles),
		ActiveArticles: len(entity.ActiveArticles(articles)),
		TotalInvoices:  len(invoices),
		TotalRevenue:   decimal.Zero,
		MonthlyRevenue: decimal.Zero,
	}

	now := s.now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	bySeller := make(map[int]*SellerSalesPoint)
	daily := make(map[string]decimal.Decimal)

	for _, inv := range invoices {
		stats.TotalRevenue = stats.TotalRevenue.Add(inv.Total)

		if issued, ok := inv.IssuedAt(); ok {
			if !issued.Before(startOfMonth) {
				stats.MonthlyRevenue = stats.MonthlyRevenue.Add(inv.Total)
			}
			key := issued.Format("2006-01-02")
			daily[key] = daily[key].Add(inv.Total)
		}

		p, ok := bySeller[inv.SellerID]
		if !ok {
			p = &SellerSalesPoint{SellerID: inv.SellerID, Seller: inv.Seller, Total: decimal.Zero}
			bySeller[inv.SellerID] = p
		}
		p.Total = p.Total.Add(inv.Total)
		p.InvoiceCount++
	}

	stats.SalesBySeller = make([]SellerSalesPoint, 0, len(bySeller))
	for _, p := range bySeller {
		stats.SalesBySeller = append(stats.SalesBySeller, *p)
	}
	sort.Slice(stats.SalesBySeller, func(i, j int) bool {
		a, b := stats.SalesBySeller[i], stats.SalesBySeller[j]
		if !a.Total.Equal(b.Total) {
			return a.Total.GreaterThan(b.Total)
		}
		return a.SellerID < b.SellerID
	})

	// Last 7 days
	stats.DailySalesData = make([]DailySalesPoint, 0, 7)
	for i := 6; i >= 0; i-- {
		date := now.AddDate(0, 0, -i)
		stats.DailySalesData = append(stats.DailySalesData, DailySalesPoint{
			Date:    date.Format("Jan 02"),
			Revenue: daily[date.Format("2006-01-02")],
		})
	}

	return stats, nil
}

// GetSalesReport aggregates invoices issued within [from, to] per month and
// ranks the top clients. Nil bounds are open. Invoices with an unreadable
// date are left out.
func (s *DashboardService) GetSalesReport(ctx context.Context, ws *Workspace, from, to *time.Time) (*SalesReport, error) {
	if err := ws.Invoices.EnsureLoaded(ctx); err != nil {
		return nil, err
	}

	report := &SalesReport{From: from, To: to, Total: decimal.Zero}
	byMonth := make(map[string]*MonthlySalesPoint)
	byClient := make(map[int]*ClientSalesPoint)

	for _, inv := range ws.Invoices.Items() {
		issued, ok := inv.IssuedAt()
		if !ok {
			continue
		}
		if from != nil && issued.Before(*from) {
			continue
		}
		if to != nil && issued.After(*to) {
			continue
		}

		report.Total = report.Total.Add(inv.Total)

		month := issued.Format("2006-01")
		m, ok := byMonth[month]
		if !ok {
			m = &MonthlySalesPoint{Month: month, Total: decimal.Zero}
			byMonth[month] = m
		}
		m.Total = m.Total.Add(inv.Total)
		m.InvoiceCount++

		c, ok := byClient[inv.ClientID]
		if !ok {
			c = &ClientSalesPoint{ClientID: inv.ClientID, Client: inv.Client, Total: decimal.Zero}
			byClient[inv.ClientID] = c
		}
		c.Total = c.Total.Add(inv.Total)
		c.InvoiceCount++
	}

	report.Months = make([]MonthlySalesPoint, 0, len(byMonth))
	for _, m := range byMonth {
		report.Months = append(report.Months, *m)
	}
	sort.Slice(report.Months, func(i, j int) bool {
		return report.Months[i].Month < report.Months[j].Month
	})

	report.TopClients = make([]ClientSalesPoint, 0, len(byClient))
	for _, c := range byClient {
		report.TopClients = append(report.TopClients, *c)
	}
	sort.Slice(report.TopClients, func(i, j int) bool {
		a, b := report.TopClients[i], report.TopClients[j]
		if !a.Total.Equal(b.Total) {
			return a.Total.GreaterThan(b.Total)
		}
		return a.ClientID < b.ClientID
	})
	if len(report.TopClients) > topClientsLimit {
		report.TopClients = report.TopClients[:topClientsLimit]
	}

	return report, nil
}
