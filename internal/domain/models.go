// Package domain defines the core record types of the land registry analytics layer.
// All records are immutable value types: collections are loaded once from the
// fixture dataset and never mutated afterwards.
package domain

// Dispute types
const (
	DisputeTypeOwnership   = "ownership"
	DisputeTypeBoundary    = "boundary"
	DisputeTypeInheritance = "inheritance"
	DisputeTypeEncumbrance = "encumbrance"
)

// Dispute statuses
const (
	DisputeStatusOpen          = "open"
	DisputeStatusInvestigation = "investigation"
	DisputeStatusResolved      = "resolved"
	DisputeStatusCourt         = "court"
)

// Transfer types
const (
	TransferTypeSale        = "sale"
	TransferTypeInheritance = "inheritance"
	TransferTypeSubdivision = "subdivision"
	TransferTypeDonation    = "donation"
)

// Transfer statuses
const (
	TransferStatusPending   = "pending"
	TransferStatusApproved  = "approved"
	TransferStatusRejected  = "rejected"
	TransferStatusCompleted = "completed"
)

// Mortgage statuses
const (
	MortgageStatusActive      = "active"
	MortgageStatusPaid        = "paid"
	MortgageStatusDefaulted   = "defaulted"
	MortgageStatusForeclosure = "foreclosure"
)

// Legal verification statuses
const (
	LegalStatusVerified   = "verified"
	LegalStatusPending    = "pending"
	LegalStatusDisputed   = "disputed"
	LegalStatusLitigation = "litigation"
)

// DisputeStatuses is the expected dispute status enumeration, in display order.
// Used by count-by-status aggregations to zero-fill categories for pie charts.
var DisputeStatuses = []string{
	DisputeStatusOpen, DisputeStatusInvestigation, DisputeStatusCourt, DisputeStatusResolved,
}

// DisputeTypes is the expected dispute type enumeration, in display order.
var DisputeTypes = []string{
	DisputeTypeOwnership, DisputeTypeBoundary, DisputeTypeInheritance, DisputeTypeEncumbrance,
}

// TransferStatuses is the expected transfer status enumeration, in display order.
var TransferStatuses = []string{
	TransferStatusPending, TransferStatusApproved, TransferStatusRejected, TransferStatusCompleted,
}

// TransferTypes is the expected transfer type enumeration, in display order.
var TransferTypes = []string{
	TransferTypeSale, TransferTypeInheritance, TransferTypeSubdivision, TransferTypeDonation,
}

// MortgageStatuses is the expected mortgage status enumeration, in display order.
var MortgageStatuses = []string{
	MortgageStatusActive, MortgageStatusPaid, MortgageStatusDefaulted, MortgageStatusForeclosure,
}

// LegalStatuses is the expected legal status enumeration, in display order.
var LegalStatuses = []string{
	LegalStatusVerified, LegalStatusPending, LegalStatusDisputed, LegalStatusLitigation,
}

// Coordinates positions a region on the heat map (both axes 0-100)
type Coordinates struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Region holds per-region registry totals.
// DisputeRate is a hand-set display value, not derived from ActiveDisputes/TotalParcels.
type Region struct {
	ID                string      `json:"id"`
	DisplayName       string      `json:"display_name"`
	TotalParcels      int         `json:"total_parcels"`
	ActiveDisputes    int         `json:"active_disputes"`
	PendingTransfers  int         `json:"pending_transfers"`
	ActiveMortgages   int         `json:"active_mortgages"`
	AvgProcessingDays float64     `json:"avg_processing_days"`
	FraudAttempts     int         `json:"fraud_attempts"`
	DisputeRate       float64     `json:"dispute_rate"`
	Coordinates       Coordinates `json:"coordinates"`
}

// DisputeRecord is a single land dispute case.
// DaysOpen of 0 conventionally marks a resolved/closed case, not a zero-day dispute.
type DisputeRecord struct {
	ID             string   `json:"id"`
	ParcelID       string   `json:"parcel_id"`
	Region         string   `json:"region"`
	Type           string   `json:"type"`
	Status         string   `json:"status"`
	FiledDate      string   `json:"filed_date"` // YYYY-MM-DD
	Parties        []string `json:"parties"`    // first entry is the claimant by convention
	EstimatedValue float64  `json:"estimated_value"`
	DaysOpen       int      `json:"days_open"`
}

// TransferRecord is a single ownership transfer.
// CompletedDate must be set if and only if the status is "completed";
// the registry loader rejects records violating this.
type TransferRecord struct {
	ID             string  `json:"id"`
	ParcelID       string  `json:"parcel_id"`
	Region         string  `json:"region"`
	Type           string  `json:"type"`
	Status         string  `json:"status"`
	SubmittedDate  string  `json:"submitted_date"`
	CompletedDate  *string `json:"completed_date"`
	Value          float64 `json:"value"` // 0 by convention for donations
	ProcessingDays int     `json:"processing_days"`
	Buyer          string  `json:"buyer"`
	Seller         string  `json:"seller"`
}

// MortgageRecord is a registered mortgage on a parcel.
type MortgageRecord struct {
	ID               string  `json:"id"`
	ParcelID         string  `json:"parcel_id"`
	Region           string  `json:"region"`
	Bank             string  `json:"bank"`
	Amount           float64 `json:"amount"`
	Status           string  `json:"status"`
	StartDate        string  `json:"start_date"`
	EndDate          *string `json:"end_date"`
	RemainingBalance float64 `json:"remaining_balance"`
	MonthlyPayment   float64 `json:"monthly_payment"`
}

// PropertyLegalStatus is the legal verification state of a registered property.
type PropertyLegalStatus struct {
	ID                     string   `json:"id"`
	ParcelID               string   `json:"parcel_id"`
	Address                string   `json:"address"`
	City                   string   `json:"city"`
	Status                 string   `json:"status"`
	OwnershipLineage       int      `json:"ownership_lineage"` // count of prior transfers on record
	ZoningApproval         bool     `json:"zoning_approval"`
	EnvironmentalClearance bool     `json:"environmental_clearance"`
	OccupancyCertificate   bool     `json:"occupancy_certificate"`
	MortgageStatus         string   `json:"mortgage_status"` // clear, active, defaulted
	LienStatus             bool     `json:"lien_status"`
	BlockchainHash         string   `json:"blockchain_hash"`
	LastVerified           string   `json:"last_verified"`
	RiskFlags              []string `json:"risk_flags"`
}

// AffordabilityRecord holds per-city housing affordability figures.
// PriceToIncomeRatio is a stored display value; the metric calculator can
// recompute it from the price and income primitives as a cross-check.
type AffordabilityRecord struct {
	CityID                string  `json:"city_id"`
	CityName              string  `json:"city_name"`
	MedianHousePrice      float64 `json:"median_house_price"`      // EUR
	MedianHouseholdIncome float64 `json:"median_household_income"` // annual, EUR
	PriceToIncomeRatio    float64 `json:"price_to_income_ratio"`
	EligibleHouseholds    float64 `json:"eligible_households"` // percentage
	NewAffordableUnits    int     `json:"new_affordable_units"`
	AffordabilityStatus   string  `json:"affordability_status"` // affordable, stressed, critical
}

// SubsidyBracket holds subsidy allocation figures for one income bracket.
type SubsidyBracket struct {
	Bracket       string  `json:"bracket"`
	Allocated     float64 `json:"allocated"`
	Utilized      float64 `json:"utilized"`
	Beneficiaries int     `json:"beneficiaries"`
	Leakage       float64 `json:"leakage"` // percentage
}

// SubsidyRedFlag is an anomaly category detected across subsidy disbursements.
type SubsidyRedFlag struct {
	Type   string  `json:"type"`
	Count  int     `json:"count"`
	Amount float64 `json:"amount"`
}

// SubsidyOutcomes holds program-level outcome figures.
type SubsidyOutcomes struct {
	UnitsDelivered    int     `json:"units_delivered"`
	UnitsSubsidized   int     `json:"units_subsidized"`
	AvgPriceReduction float64 `json:"avg_price_reduction"` // percentage
	TotalDisbursed    float64 `json:"total_disbursed"`     // EUR
}

// BubbleCityRisk holds per-city bubble risk figures.
// Status is a banding of RiskScore, not derived from the growth figures.
type BubbleCityRisk struct {
	City         string  `json:"city"`
	RiskScore    float64 `json:"risk_score"`
	PriceGrowth  float64 `json:"price_growth"`  // YoY %
	IncomeGrowth float64 `json:"income_growth"` // YoY %
	Status       string  `json:"status"`        // low, medium, high
}

// MarketStressSignal is one speculative-activity indicator with a case count.
type MarketStressSignal struct {
	Signal   string  `json:"signal"`
	Count    int     `json:"count"`
	Trend    float64 `json:"trend"` // % change YoY
	Severity string  `json:"severity"`
}

// GrowthPoint is one month of price-growth vs income-growth observations.
type GrowthPoint struct {
	Month        string  `json:"month"`
	PriceGrowth  float64 `json:"price_growth"`
	IncomeGrowth float64 `json:"income_growth"`
}

// MonthlyTrend is one month of registry activity totals.
type MonthlyTrend struct {
	Month        string `json:"month"`
	Transfers    int    `json:"transfers"`
	Disputes     int    `json:"disputes"`
	Mortgages    int    `json:"mortgages"`
	FraudBlocked int    `json:"fraud_blocked"`
}
