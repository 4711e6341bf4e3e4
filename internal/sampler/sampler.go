package sampler

import (
	"math"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// category holds a three-level weighted pool: every category carries its own
// subcategories and brands, and a draw picks one of each.
type category struct {
	name          string
	subcategories []string
	brands        []string
}

var categories = []category{
	{"Electronics", []string{"Phones", "Laptops", "Headphones", "Monitors", "Cameras"}, []string{"Acme", "Zebra", "Lux", "Nova", "Kite"}},
	{"Home", []string{"Kitchen", "Bedding", "Furniture", "Decor"}, []string{"Homely", "Casa", "Nido", "Oak&Co"}},
	{"Outdoors", []string{"Camping", "Cycling", "Hiking", "Fishing"}, []string{"Trail", "Peak", "Rivera"}},
	{"Beauty", []string{"Skincare", "Haircare", "Fragrance"}, []string{"Aura", "Bloom", "Velvet"}},
	{"Toys", []string{"Blocks", "RC", "Puzzles", "Plush"}, []string{"PlayCo", "Kiddo", "FunLab"}},
}

// Repeated entries weight the draw towards the common outcomes.
var (
	orderStatuses      = []string{"paid", "paid", "paid", "shipped", "shipped", "cancelled", "refunded"}
	paymentMethods     = []string{"card", "card", "card", "paypal", "cod", "applepay", "googlepay"}
	currencies         = []string{"USD", "EUR", "PLN", "GBP"}
	countries          = []string{"UA", "PL", "DE", "FR", "GB", "US", "CA", "ES", "IT", "NL", "SE", "NO"}
	acquisitionSources = []string{"seo", "sem", "email", "social", "direct", "referral", "marketplace"}
)

// Sampler draws one plausible attribute value per call. All randomness comes
// from a single seeded source, so a fixed seed and reference time replay the
// exact same value sequence.
type Sampler struct {
	rng   *rand.Rand
	faker *gofakeit.Faker
	now   time.Time

	discountDist distuv.Normal
	totalDist    distuv.Normal
	unitDist     distuv.Normal
}

// New returns a sampler anchored at the current time.
// The seed must be non-zero for reproducible name/city draws.
func New(seed uint64) *Sampler {
	return NewAt(seed, time.Now().UTC())
}

// NewAt anchors all date windows at now, which makes full output
// reproducible for tests.
func NewAt(seed uint64, now time.Time) *Sampler {
	src := rand.NewSource(seed)
	return &Sampler{
		rng:          rand.New(src),
		faker:        gofakeit.New(int64(seed)),
		now:          now,
		discountDist: distuv.Normal{Mu: 3, Sigma: 7, Src: src},
		totalDist:    distuv.Normal{Mu: 80, Sigma: 70, Src: src},
		unitDist:     distuv.Normal{Mu: 60, Sigma: 50, Src: src},
	}
}

// Category draws a category with a matching subcategory and brand.
func (s *Sampler) Category() (cat, sub, brand string) {
	c := categories[s.rng.Intn(len(categories))]
	return c.name, c.subcategories[s.rng.Intn(len(c.subcategories))], c.brands[s.rng.Intn(len(c.brands))]
}

// Price draws a uniform list price in [5, 900).
func (s *Sampler) Price() float64 {
	return round2(5 + s.rng.Float64()*895)
}

// Cost derives a unit cost as a 50-85% fraction of price, so cost <= price
// holds by construction.
func (s *Sampler) Cost(price float64) float64 {
	return round2(price * (0.5 + s.rng.Float64()*0.35))
}

func (s *Sampler) IsActive() bool {
	return s.rng.Float64() > 0.15
}

func (s *Sampler) FirstName() string { return s.faker.FirstName() }
func (s *Sampler) LastName() string  { return s.faker.LastName() }
func (s *Sampler) City() string      { return s.faker.City() }

func (s *Sampler) Country() string {
	return countries[s.rng.Intn(len(countries))]
}

func (s *Sampler) MarketingOptIn() bool {
	return s.rng.Float64() < 0.35
}

func (s *Sampler) AcquisitionSource() string {
	return acquisitionSources[s.rng.Intn(len(acquisitionSources))]
}

// DateWithinYears draws a uniform timestamp between years ago and now.
func (s *Sampler) DateWithinYears(years int) time.Time {
	return s.between(s.now.AddDate(-years, 0, 0))
}

// TimeWithinDays draws a uniform timestamp between days ago and now.
func (s *Sampler) TimeWithinDays(days int) time.Time {
	return s.between(s.now.AddDate(0, 0, -days))
}

func (s *Sampler) between(start time.Time) time.Time {
	span := int64(s.now.Sub(start) / time.Second)
	if span <= 0 {
		return start
	}
	return start.Add(time.Duration(s.rng.Int63n(span+1)) * time.Second)
}

func (s *Sampler) OrderStatus() string {
	return orderStatuses[s.rng.Intn(len(orderStatuses))]
}

func (s *Sampler) Currency() string {
	return currencies[s.rng.Intn(len(currencies))]
}

func (s *Sampler) PaymentMethod() string {
	return paymentMethods[s.rng.Intn(len(paymentMethods))]
}

func (s *Sampler) ShippingCountry() string {
	return s.Country()
}

// CustomerID references a customer key in [1, n]. Returns 0 when there are
// no customers to reference; the value is not validated downstream.
func (s *Sampler) CustomerID(n int) int {
	if n <= 0 {
		return 0
	}
	return 1 + s.rng.Intn(n)
}

// ProductID references a product key in [1, n] with the same caveats as
// CustomerID.
func (s *Sampler) ProductID(n int) int {
	if n <= 0 {
		return 0
	}
	return 1 + s.rng.Intn(n)
}

// Discount gives 25% of orders a non-negative Gaussian(3, 7) discount and
// the rest 0.00.
func (s *Sampler) Discount() float64 {
	if s.rng.Float64() < 0.25 {
		return round2(math.Max(0, s.discountDist.Rand()))
	}
	return 0
}

// OrderTotal draws abs(Gaussian(80, 70)) plus a flat 5 for paid/shipped
// orders. Totals are deliberately not derived from the order's line items;
// summing items at generation time would force buffering every order.
func (s *Sampler) OrderTotal(status string) float64 {
	total := math.Abs(s.totalDist.Rand())
	if status == "paid" || status == "shipped" {
		total += 5
	}
	return round2(total)
}

// ItemsPerOrder approximates a right-skewed count in 1..6 via cumulative
// thresholds (40/30/18/7/3.5/1.5%).
func (s *Sampler) ItemsPerOrder() int {
	r := s.rng.Float64()
	switch {
	case r < 0.40:
		return 1
	case r < 0.70:
		return 2
	case r < 0.88:
		return 3
	case r < 0.95:
		return 4
	case r < 0.985:
		return 5
	default:
		return 6
	}
}

// Quantity is 1 with 70% probability, otherwise uniform in [2, 5].
func (s *Sampler) Quantity() int {
	if s.rng.Float64() < 0.7 {
		return 1
	}
	return 2 + s.rng.Intn(4)
}

// UnitPrice draws max(1, Gaussian(60, 50)), independent of the referenced
// product's list price.
func (s *Sampler) UnitPrice() float64 {
	return round2(math.Max(1.0, s.unitDist.Rand()))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
