package faraid

// Heir is a single member of the estate roster as supplied by the caller.
// Relationship, Gender, and HeirGroup are free-form labels; normalization
// rewrites them into a canonical Relationship before any rule runs.
type Heir struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Gender       string `json:"gender,omitempty"`
	HeirGroup    string `json:"heirGroup"`
	// Portions is a legacy per-heir weight carried by older rosters. It is
	// not part of Fara'id arithmetic and is echoed back untouched.
	Portions float64 `json:"portions,omitempty"`
}

// EstateInput is everything the engine needs: the net distributable amount
// and the heir roster. The roster may be empty.
type EstateInput struct {
	Amount float64 `json:"estateAmount"`
	Heirs  []Heir  `json:"heirs"`
}

// ShareResult is the per-heir outcome. Parts are expressed against the
// result's BaseNumber; Amount is rounded to the estate's currency unit.
type ShareResult struct {
	HeirID       string       `json:"heirId"`
	Name         string       `json:"name"`
	Relationship Relationship `json:"relationship"`
	HeirGroup    string       `json:"heirGroup"`
	Fraction     string       `json:"fraction"`
	Parts        float64      `json:"parts"`
	Percentage   float64      `json:"percentage"`
	Amount       float64      `json:"shareAmount"`
	Excluded     bool         `json:"excluded"`
}

// CalculationCase tags which corrective regime applied to the roster.
type CalculationCase string

const (
	CaseStandard CalculationCase = "standard"
	CaseAwl      CalculationCase = "awl"
	CaseRadd     CalculationCase = "radd"
)

// GroupSummary aggregates shares per heir-group label.
type GroupSummary struct {
	Count       int     `json:"count"`
	TotalShare  float64 `json:"totalShare"`
	TotalAmount float64 `json:"totalAmount"`
}

// CalculationResult is the aggregate outcome for one roster.
type CalculationResult struct {
	BaseNumber   int                     `json:"baseNumber"`
	TotalParts   float64                 `json:"totalParts"`
	Case         CalculationCase         `json:"case"`
	Notes        []string                `json:"notes"`
	Heirs        []ShareResult           `json:"heirs"`
	GroupSummary map[string]GroupSummary `json:"groupSummary"`
}
