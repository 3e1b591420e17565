// Package model defines the core domain models used throughout the application.
package model

// ReportType identifies the category of report a request is asking for.
type ReportType string

// Report type constants, in fixed priority order. Scoring ties between
// types are broken by this enumeration order.
const (
	ReportTypeSales       ReportType = "sales"
	ReportTypeMyPurchases ReportType = "my_purchases"
	ReportTypeProducts    ReportType = "products"
	ReportTypeCustomers   ReportType = "customers"
	ReportTypeInventory   ReportType = "inventory"
	ReportTypeFinancial   ReportType = "financial"
	ReportTypeGeneral     ReportType = "general"
)

// ReportTypes lists every report type in enumeration order.
func ReportTypes() []ReportType {
	return []ReportType{
		ReportTypeSales,
		ReportTypeMyPurchases,
		ReportTypeProducts,
		ReportTypeCustomers,
		ReportTypeInventory,
		ReportTypeFinancial,
		ReportTypeGeneral,
	}
}

// Metric identifies an aggregation the caller wants computed.
type Metric string

// Metric constants.
const (
	MetricTotal   Metric = "total"
	MetricAverage Metric = "average"
	MetricCount   Metric = "count"
	MetricMax     Metric = "max"
	MetricMin     Metric = "min"
	MetricMedian  Metric = "median"
)

// Grouping identifies a dimension report rows should be aggregated by.
type Grouping string

// Grouping constants. GroupingSalesVolume is the implicit ordering signal
// produced by "top selling" phrasing rather than explicit "by X" phrasing.
const (
	GroupingDay         Grouping = "day"
	GroupingWeek        Grouping = "week"
	GroupingMonth       Grouping = "month"
	GroupingYear        Grouping = "year"
	GroupingCategory    Grouping = "category"
	GroupingProduct     Grouping = "product"
	GroupingClient      Grouping = "client"
	GroupingSalesVolume Grouping = "sales_volume"
)

// OutputFormat identifies how the caller wants the report rendered.
type OutputFormat string

// Output format constants.
const (
	FormatScreen OutputFormat = "screen"
	FormatPDF    OutputFormat = "pdf"
	FormatExcel  OutputFormat = "excel"
	FormatJSON   OutputFormat = "json"
)

// Valid reports whether f is a known output format.
func (f OutputFormat) Valid() bool {
	switch f {
	case FormatScreen, FormatPDF, FormatExcel, FormatJSON:
		return true
	}
	return false
}

// Intent identifies what the caller wants done with the data. Informational
// only; it does not change extraction.
type Intent string

// Intent constants.
const (
	IntentQuery     Intent = "query"
	IntentAnalyze   Intent = "analyze"
	IntentCompare   Intent = "compare"
	IntentSummarize Intent = "summarize"
)

// OrderState is the normalized value of the state filter.
type OrderState string

// Order state constants.
const (
	StateCompleted OrderState = "completed"
	StatePending   OrderState = "pending"
	StateCancelled OrderState = "cancelled"
)

// Filters holds constraints extracted from the request text. A zero field
// means "no constraint", never "zero value". Values are whatever the text
// said; validating them against the catalog is the report generator's job.
type Filters struct {
	MinAmount     *float64   `json:"min_amount,omitempty"`
	MaxAmount     *float64   `json:"max_amount,omitempty"`
	Category      string     `json:"category,omitempty"`
	State         OrderState `json:"state,omitempty"`
	PaymentMethod string     `json:"payment_method,omitempty"`
	Product       string     `json:"product,omitempty"`
	Client        string     `json:"client,omitempty"`
}

// IsZero reports whether no filter was extracted.
func (f Filters) IsZero() bool {
	return f.Category == "" && f.State == "" && f.PaymentMethod == "" &&
		f.Product == "" && f.Client == "" && f.MinAmount == nil && f.MaxAmount == nil
}

// DateRange is an inclusive pair of calendar dates. Both ends are ISO-8601
// date strings (YYYY-MM-DD), never timestamps; the result crosses a
// serialization boundary and must not carry native time values.
type DateRange struct {
	From  string `json:"from"`
	Until string `json:"until"`
}

// ContextFlags carries secondary signals about how the request was phrased.
type ContextFlags struct {
	DetailLevel   string `json:"detail_level"`
	IsQuestion    bool   `json:"is_question"`
	IsComparison  bool   `json:"is_comparison"`
	IsTrend       bool   `json:"is_trend"`
	IsProductList bool   `json:"is_product_list,omitempty"`
	// FinancialAngle marks a request the interpreter read as financial but
	// the authorization gate downgraded to my_purchases.
	FinancialAngle bool `json:"financial_angle,omitempty"`
}

// Detail level values for ContextFlags.DetailLevel.
const (
	DetailSummary  = "summary"
	DetailDetailed = "detailed"
)

// Interpretation is the structured reading of one report request. It is
// produced fresh per call and immutable once returned.
type Interpretation struct {
	DateRange      *DateRange   `json:"date_range,omitempty"`
	ReportType     ReportType   `json:"report_type"`
	OutputFormat   OutputFormat `json:"output_format"`
	Intent         Intent       `json:"intent"`
	OriginalText   string       `json:"original_text"`
	NormalizedText string       `json:"normalized_text"`
	Metrics        []Metric     `json:"metrics"`
	Grouping       []Grouping   `json:"grouping"`
	Filters        Filters      `json:"filters"`
	Context        ContextFlags `json:"context"`
	Confidence     float64      `json:"confidence"`
}

// HasGrouping reports whether g is among the extracted groupings.
func (in Interpretation) HasGrouping(g Grouping) bool {
	for _, got := range in.Grouping {
		if got == g {
			return true
		}
	}
	return false
}

// HasMetric reports whether m is among the extracted metrics.
func (in Interpretation) HasMetric(m Metric) bool {
	for _, got := range in.Metrics {
		if got == m {
			return true
		}
	}
	return false
}
