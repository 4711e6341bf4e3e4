package producer

import (
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/harlowd/shopgen/internal/sampler"
)

// Row is a single CSV record with every field already formatted.
type Row []string

// Column headers, in file order. These must stay aligned with the table
// DDL in internal/database.
var (
	ProductColumns   = []string{"product_id", "category", "subcategory", "brand", "price", "cost", "created_at", "is_active"}
	CustomerColumns  = []string{"customer_id", "first_name", "last_name", "email", "signup_date", "country", "city", "marketing_opt_in", "acquisition_source"}
	OrderColumns     = []string{"order_id", "customer_id", "order_date", "status", "currency", "payment_method", "shipping_country", "discount", "total_amount"}
	OrderItemColumns = []string{"order_item_id", "order_id", "product_id", "quantity", "unit_price", "line_total"}
)

const (
	dateLayout     = "2006-01-02"
	datetimeLayout = "2006-01-02 15:04:05"
)

// Products yields n product rows with ids 1..n.
// Product creation dates fall within the last five years.
func Products(s *sampler.Sampler, n int) iter.Seq[Row] {
	return func(yield func(Row) bool) {
		for id := 1; id <= n; id++ {
			cat, sub, brand := s.Category()
			price := s.Price()
			cost := s.Cost(price)
			row := Row{
				strconv.Itoa(id),
				cat, sub, brand,
				amount(price),
				amount(cost),
				s.DateWithinYears(5).Format(dateLayout),
				flag(s.IsActive()),
			}
			if !yield(row) {
				return
			}
		}
	}
}

// Customers yields n customer rows with ids 1..n. The email embeds the
// surrogate key, which keeps it unique without any bookkeeping.
func Customers(s *sampler.Sampler, n int) iter.Seq[Row] {
	return func(yield func(Row) bool) {
		for id := 1; id <= n; id++ {
			first := s.FirstName()
			last := s.LastName()
			email := strings.ToLower(fmt.Sprintf("%s.%s.%d@example.com", first, last, id))
			row := Row{
				strconv.Itoa(id),
				first, last, email,
				s.DateWithinYears(3).Format(dateLayout),
				s.Country(),
				s.City(),
				flag(s.MarketingOptIn()),
				s.AcquisitionSource(),
			}
			if !yield(row) {
				return
			}
		}
	}
}

// Orders yields n order rows with ids 1..n, each referencing a random
// customer in [1, nCustomers]. Order timestamps fall within the last two
// years. The total is sampled, not summed from items.
func Orders(s *sampler.Sampler, n, nCustomers int) iter.Seq[Row] {
	return func(yield func(Row) bool) {
		for id := 1; id <= n; id++ {
			status := s.OrderStatus()
			row := Row{
				strconv.Itoa(id),
				strconv.Itoa(s.CustomerID(nCustomers)),
				s.TimeWithinDays(730).Format(datetimeLayout),
				status,
				s.Currency(),
				s.PaymentMethod(),
				s.ShippingCountry(),
				amount(s.Discount()),
				amount(s.OrderTotal(status)),
			}
			if !yield(row) {
				return
			}
		}
	}
}

// OrderItems walks order ids 1..nOrders and emits a sampled number of items
// for each, so every order is covered by at least one item. Item ids are a
// single monotonically increasing sequence across all orders. Product
// references are sampled independently of the products actually generated.
func OrderItems(s *sampler.Sampler, nOrders, nProducts int) iter.Seq[Row] {
	return func(yield func(Row) bool) {
		itemID := 1
		for oid := 1; oid <= nOrders; oid++ {
			for range s.ItemsPerOrder() {
				qty := s.Quantity()
				unit := s.UnitPrice()
				row := Row{
					strconv.Itoa(itemID),
					strconv.Itoa(oid),
					strconv.Itoa(s.ProductID(nProducts)),
					strconv.Itoa(qty),
					amount(unit),
					amount(unit * float64(qty)),
				}
				if !yield(row) {
					return
				}
				itemID++
			}
		}
	}
}

func amount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
