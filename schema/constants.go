package schema

// Custom string types for type safety.
type (
	// ChartKind identifies one of the supported chart specifications.
	ChartKind string

	// OutputMode represents the format of the output.
	OutputMode string

	// OrderPolicy controls how rate-by-category groups are ordered.
	OrderPolicy string

	// LTVBasis selects the numeric field used for lifetime-value curves.
	LTVBasis string

	// SourceBackend represents the dataset source backend.
	SourceBackend string
)

// All chart kinds supported.
const (
	RateInternetChart    ChartKind = "rate-internet"    // Churn rate by internet service
	RateContractChart    ChartKind = "rate-contract"    // Churn rate by contract type
	RatePaymentChart     ChartKind = "rate-payment"     // Churn rate by payment method
	TenureHistogramChart ChartKind = "tenure-histogram" // Tenure distribution, churned vs stayed
	LTVInternetChart     ChartKind = "ltv-internet"     // Mean LTV per year-bin per internet service
	LTVContractChart     ChartKind = "ltv-contract"     // Mean LTV per year-bin per contract type
	BundleValueChart     ChartKind = "bundle-value"     // Diverging actual vs lost potential per bundle
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All ordering policies supported by rate charts.
const (
	RateOrder   OrderPolicy = "rate"   // descending churn rate (default)
	DomainOrder OrderPolicy = "domain" // fixed domain-specific category order
)

// All lifetime-value bases supported by LTV curves.
const (
	TotalBasis LTVBasis = "total" // observed cumulative TotalCharges (default)
	ProxyBasis LTVBasis = "proxy" // tenure x monthly charges estimate
)

// All dataset source backends supported.
const (
	CSVBackend        SourceBackend = "csv" // default
	SQLiteBackend     SourceBackend = "sqlite"
	MySQLBackend      SourceBackend = "mysql"
	PostgreSQLBackend SourceBackend = "postgresql"
)

// AllChartKinds lists every chart kind in presentation order.
var AllChartKinds = []ChartKind{
	RateInternetChart,
	RateContractChart,
	RatePaymentChart,
	TenureHistogramChart,
	LTVInternetChart,
	LTVContractChart,
	BundleValueChart,
}

// ValidChartKinds lists all valid chart kinds.
var ValidChartKinds = map[ChartKind]struct{}{
	RateInternetChart:    {},
	RateContractChart:    {},
	RatePaymentChart:     {},
	TenureHistogramChart: {},
	LTVInternetChart:     {},
	LTVContractChart:     {},
	BundleValueChart:     {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidOrderPolicies lists all valid ordering policies.
var ValidOrderPolicies = map[OrderPolicy]struct{}{
	RateOrder:   {},
	DomainOrder: {},
}

// ValidLTVBases lists all valid lifetime-value bases.
var ValidLTVBases = map[LTVBasis]struct{}{
	TotalBasis: {},
	ProxyBasis: {},
}

// ValidSourceBackends lists all valid dataset source backends.
var ValidSourceBackends = map[SourceBackend]struct{}{
	CSVBackend:        {},
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
}

// Tenure domain boundaries in months.
const (
	MinTenureMonths = 0
	MaxTenureMonths = 72

	// ProjectionMonths is the horizon used for the lost-potential estimate
	// in the bundle-value chart: projected value = ProjectionMonths x monthly.
	ProjectionMonths = 72
)

// SegmentSeparator joins contract and internet service into a bundle key.
const SegmentSeparator = " | "

// Tenure band buckets for the derived TenureBand column. The lowest boundary
// is inclusive of 0; every other bucket is half-open on the left.
var (
	TenureBandBounds = []int{0, 3, 6, 12, 24, 48, 72}
	TenureBandLabels = []string{"0-3", "3-6", "6-12", "12-24", "24-48", "48-72"}
)

// Histogram buckets for the tenure distribution chart.
var (
	HistogramBounds = []float64{0, 15, 30, 45, 60, 100}
	HistogramLabels = []string{"1-15", "15-30", "30-45", "45-60", ">60"}
)

// Year bins for the LTV tenure curves, labelled by upper bound.
var (
	LTVBinBounds = []float64{0, 12, 24, 36, 48, 60, 72}
	LTVBinLabels = []string{"12", "24", "36", "48", "60", "72"}
)

// Fixed domain orders. Rate charts use these when OrderPolicy is DomainOrder;
// LTV curves always emit one series per value in this declared order.
var (
	InternetServiceOrder = []string{"Fiber optic", "DSL", "No"}
	ContractOrder        = []string{"Month-to-month", "One year", "Two year"}
	PaymentMethodOrder   = []string{
		"Electronic check",
		"Mailed check",
		"Bank transfer (automatic)",
		"Credit card (automatic)",
	}
)

// PaymentMethodShortNames maps payment methods to their display names.
var PaymentMethodShortNames = map[string]string{
	"Electronic check":          "Electronic",
	"Mailed check":              "Mailed",
	"Bank transfer (automatic)": "Bank Transfer",
	"Credit card (automatic)":   "Credit Card",
}

// Chart color constants. These are part of each chart spec's contract, not
// presentation styling: the same kind always yields the same colors.
const (
	RateBarColor     = "#87CEEB" // sky blue, all rate-by-category bars
	ChurnedBarColor  = "#e74c3c" // churned series
	RetainedBarColor = "#0072B2" // stayed series
	LostValueColor   = "#e74c3c" // negative (lost potential) bundle series
)

// LTVInternetColors assigns a fixed line color per internet service tier.
var LTVInternetColors = map[string]string{
	"Fiber optic": "#e74c3c",
	"DSL":         "#f39c12",
	"No":          "#00B894",
}

// LTVContractColors assigns a fixed line color per contract type.
var LTVContractColors = map[string]string{
	"Month-to-month": "#3498db",
	"One year":       "#9b59b6",
	"Two year":       "#1abc9c",
}

// LTVAxisMax is the fixed y-axis ceiling for LTV tenure curves.
const LTVAxisMax = 8000.0

// Required input columns, by exact header name.
const (
	ColGender           = "gender"
	ColDependents       = "Dependents"
	ColPhoneService     = "PhoneService"
	ColPaperlessBilling = "PaperlessBilling"
	ColInternetService  = "InternetService"
	ColContract         = "Contract"
	ColPaymentMethod    = "PaymentMethod"
	ColTenure           = "tenure"
	ColMonthlyCharges   = "MonthlyCharges"
	ColTotalCharges     = "TotalCharges"
	ColChurn            = "Churn"
)

// RequiredColumns lists every column the loader must find in the source.
// A missing column is a fatal configuration error.
var RequiredColumns = []string{
	ColGender,
	ColDependents,
	ColPhoneService,
	ColPaperlessBilling,
	ColInternetService,
	ColContract,
	ColPaymentMethod,
	ColTenure,
	ColMonthlyCharges,
	ColTotalCharges,
	ColChurn,
}

// ChurnYes is the literal raw value that marks a churned customer.
// The match is exact: no trimming, no case folding.
const ChurnYes = "Yes"
