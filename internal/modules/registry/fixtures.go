package registry

import "github.com/Shalini630/serbian-land-trust/internal/domain"

// FixtureDataset returns the hand-authored demo dataset standing in for a
// real registry backend. The figures are illustrative and internally
// consistent with the validation rules enforced at load time.
func FixtureDataset() Dataset {
	return Dataset{
		Regions:       fixtureRegions(),
		Disputes:      fixtureDisputes(),
		Transfers:     fixtureTransfers(),
		Mortgages:     fixtureMortgages(),
		LegalStatuses: fixtureLegalStatuses(),
		Affordability: fixtureAffordability(),
		Subsidies:     fixtureSubsidies(),
		SubsidyFlags:  fixtureSubsidyFlags(),
		Outcomes: domain.SubsidyOutcomes{
			UnitsDelivered:    8920,
			UnitsSubsidized:   12450,
			AvgPriceReduction: 18.4,
			TotalDisbursed:    76_200_000,
		},
		BubbleRisks:   fixtureBubbleRisks(),
		StressSignals: fixtureStressSignals(),
		GrowthTrend:   fixtureGrowthTrend(),
		MonthlyTrends: fixtureMonthlyTrends(),
	}
}

func strptr(s string) *string { return &s }

func fixtureRegions() []domain.Region {
	return []domain.Region{
		{ID: "belgrade", DisplayName: "Belgrade", TotalParcels: 245000, ActiveDisputes: 342, PendingTransfers: 1250, ActiveMortgages: 8500, AvgProcessingDays: 3.2, FraudAttempts: 12, DisputeRate: 0.14, Coordinates: domain.Coordinates{X: 55, Y: 35}},
		{ID: "vojvodina", DisplayName: "Vojvodina", TotalParcels: 520000, ActiveDisputes: 456, PendingTransfers: 2100, ActiveMortgages: 12000, AvgProcessingDays: 4.1, FraudAttempts: 8, DisputeRate: 0.09, Coordinates: domain.Coordinates{X: 50, Y: 15}},
		{ID: "sumadija", DisplayName: "Šumadija", TotalParcels: 180000, ActiveDisputes: 198, PendingTransfers: 890, ActiveMortgages: 4200, AvgProcessingDays: 3.8, FraudAttempts: 5, DisputeRate: 0.11, Coordinates: domain.Coordinates{X: 45, Y: 45}},
		{ID: "nisava", DisplayName: "Nišava", TotalParcels: 165000, ActiveDisputes: 234, PendingTransfers: 720, ActiveMortgages: 3800, AvgProcessingDays: 4.5, FraudAttempts: 7, DisputeRate: 0.14, Coordinates: domain.Coordinates{X: 70, Y: 55}},
		{ID: "zlatibor", DisplayName: "Zlatibor", TotalParcels: 145000, ActiveDisputes: 156, PendingTransfers: 580, ActiveMortgages: 2900, AvgProcessingDays: 5.2, FraudAttempts: 3, DisputeRate: 0.11, Coordinates: domain.Coordinates{X: 30, Y: 50}},
		{ID: "podunavlje", DisplayName: "Podunavlje", TotalParcels: 98000, ActiveDisputes: 87, PendingTransfers: 340, ActiveMortgages: 1800, AvgProcessingDays: 3.5, FraudAttempts: 2, DisputeRate: 0.09, Coordinates: domain.Coordinates{X: 65, Y: 40}},
		{ID: "branicevo", DisplayName: "Braničevo", TotalParcels: 125000, ActiveDisputes: 145, PendingTransfers: 490, ActiveMortgages: 2400, AvgProcessingDays: 4.8, FraudAttempts: 4, DisputeRate: 0.12, Coordinates: domain.Coordinates{X: 75, Y: 35}},
		{ID: "jablanica", DisplayName: "Jablanica", TotalParcels: 78000, ActiveDisputes: 112, PendingTransfers: 280, ActiveMortgages: 1200, AvgProcessingDays: 5.5, FraudAttempts: 6, DisputeRate: 0.14, Coordinates: domain.Coordinates{X: 60, Y: 70}},
		{ID: "pcinja", DisplayName: "Pčinja", TotalParcels: 92000, ActiveDisputes: 134, PendingTransfers: 310, ActiveMortgages: 1500, AvgProcessingDays: 5.8, FraudAttempts: 5, DisputeRate: 0.15, Coordinates: domain.Coordinates{X: 75, Y: 75}},
		{ID: "kolubara", DisplayName: "Kolubara", TotalParcels: 110000, ActiveDisputes: 98, PendingTransfers: 420, ActiveMortgages: 2100, AvgProcessingDays: 4.2, FraudAttempts: 2, DisputeRate: 0.09, Coordinates: domain.Coordinates{X: 35, Y: 40}},
	}
}

func fixtureDisputes() []domain.DisputeRecord {
	return []domain.DisputeRecord{
		{ID: "DSP-2024-001", ParcelID: "BEL-45892", Region: "belgrade", Type: domain.DisputeTypeOwnership, Status: domain.DisputeStatusOpen, FiledDate: "2024-01-15", Parties: []string{"Petrović M.", "Jovanović S."}, EstimatedValue: 125000, DaysOpen: 45},
		{ID: "DSP-2024-002", ParcelID: "VOJ-12456", Region: "vojvodina", Type: domain.DisputeTypeBoundary, Status: domain.DisputeStatusInvestigation, FiledDate: "2024-01-20", Parties: []string{"Nikolić D.", "Marković T."}, EstimatedValue: 45000, DaysOpen: 40},
		{ID: "DSP-2024-003", ParcelID: "BEL-78234", Region: "belgrade", Type: domain.DisputeTypeInheritance, Status: domain.DisputeStatusCourt, FiledDate: "2023-11-08", Parties: []string{"Estate of Kovačević", "Kovačević A.", "Kovačević B."}, EstimatedValue: 320000, DaysOpen: 112},
		{ID: "DSP-2024-004", ParcelID: "SUM-34521", Region: "sumadija", Type: domain.DisputeTypeEncumbrance, Status: domain.DisputeStatusOpen, FiledDate: "2024-02-01", Parties: []string{"Stojanović R.", "Bank of Serbia"}, EstimatedValue: 89000, DaysOpen: 28},
		{ID: "DSP-2024-005", ParcelID: "NIS-67890", Region: "nisava", Type: domain.DisputeTypeOwnership, Status: domain.DisputeStatusResolved, FiledDate: "2023-10-15", Parties: []string{"Ilić P.", "Đorđević M."}, EstimatedValue: 156000, DaysOpen: 0},
		{ID: "DSP-2024-006", ParcelID: "ZLA-23456", Region: "zlatibor", Type: domain.DisputeTypeBoundary, Status: domain.DisputeStatusInvestigation, FiledDate: "2024-01-28", Parties: []string{"Municipality", "Popović J."}, EstimatedValue: 67000, DaysOpen: 32},
		{ID: "DSP-2024-007", ParcelID: "VOJ-89012", Region: "vojvodina", Type: domain.DisputeTypeInheritance, Status: domain.DisputeStatusOpen, FiledDate: "2024-02-05", Parties: []string{"Estate of Mitrović", "Mitrović Family"}, EstimatedValue: 210000, DaysOpen: 24},
		{ID: "DSP-2024-008", ParcelID: "BEL-34567", Region: "belgrade", Type: domain.DisputeTypeOwnership, Status: domain.DisputeStatusCourt, FiledDate: "2023-09-20", Parties: []string{"Development Corp", "Residents Assoc."}, EstimatedValue: 890000, DaysOpen: 156},
		{ID: "DSP-2024-009", ParcelID: "POD-11223", Region: "podunavlje", Type: domain.DisputeTypeEncumbrance, Status: domain.DisputeStatusResolved, FiledDate: "2023-12-10", Parties: []string{"Janković L.", "Credit Union"}, EstimatedValue: 34000, DaysOpen: 0},
		{ID: "DSP-2024-010", ParcelID: "BRA-44556", Region: "branicevo", Type: domain.DisputeTypeBoundary, Status: domain.DisputeStatusOpen, FiledDate: "2024-02-10", Parties: []string{"Todorović V.", "Stanković M."}, EstimatedValue: 28000, DaysOpen: 19},
		{ID: "DSP-2024-011", ParcelID: "JAB-77889", Region: "jablanica", Type: domain.DisputeTypeInheritance, Status: domain.DisputeStatusInvestigation, FiledDate: "2024-01-05", Parties: []string{"Estate of Ristić", "Ristić Heirs"}, EstimatedValue: 145000, DaysOpen: 55},
		{ID: "DSP-2024-012", ParcelID: "PCI-99001", Region: "pcinja", Type: domain.DisputeTypeOwnership, Status: domain.DisputeStatusOpen, FiledDate: "2024-02-08", Parties: []string{"Savić N.", "Unknown Claimant"}, EstimatedValue: 78000, DaysOpen: 21},
	}
}

func fixtureTransfers() []domain.TransferRecord {
	return []domain.TransferRecord{
		{ID: "TRF-2024-001", ParcelID: "BEL-45678", Region: "belgrade", Type: domain.TransferTypeSale, Status: domain.TransferStatusCompleted, SubmittedDate: "2024-01-10", CompletedDate: strptr("2024-01-13"), Value: 185000, ProcessingDays: 3, Buyer: "Stanković M.", Seller: "Petrović J."},
		{ID: "TRF-2024-002", ParcelID: "VOJ-78901", Region: "vojvodina", Type: domain.TransferTypeInheritance, Status: domain.TransferStatusPending, SubmittedDate: "2024-02-15", Value: 120000, ProcessingDays: 0, Buyer: "Nikolić Family Trust", Seller: "Estate of Nikolić"},
		{ID: "TRF-2024-003", ParcelID: "BEL-23456", Region: "belgrade", Type: domain.TransferTypeSale, Status: domain.TransferStatusApproved, SubmittedDate: "2024-02-18", Value: 340000, ProcessingDays: 2, Buyer: "Investment LLC", Seller: "Jovanović D."},
		{ID: "TRF-2024-004", ParcelID: "SUM-56789", Region: "sumadija", Type: domain.TransferTypeSubdivision, Status: domain.TransferStatusPending, SubmittedDate: "2024-02-20", Value: 95000, ProcessingDays: 0, Buyer: "Marković Bros.", Seller: "Marković Estate"},
		{ID: "TRF-2024-005", ParcelID: "NIS-12345", Region: "nisava", Type: domain.TransferTypeSale, Status: domain.TransferStatusCompleted, SubmittedDate: "2024-02-01", CompletedDate: strptr("2024-02-05"), Value: 67000, ProcessingDays: 4, Buyer: "Ilić R.", Seller: "Pavlović S."},
		{ID: "TRF-2024-006", ParcelID: "ZLA-67890", Region: "zlatibor", Type: domain.TransferTypeDonation, Status: domain.TransferStatusCompleted, SubmittedDate: "2024-01-25", CompletedDate: strptr("2024-01-30"), Value: 0, ProcessingDays: 5, Buyer: "Popović A. (Family)", Seller: "Popović P."},
		{ID: "TRF-2024-007", ParcelID: "VOJ-34567", Region: "vojvodina", Type: domain.TransferTypeSale, Status: domain.TransferStatusRejected, SubmittedDate: "2024-02-10", Value: 890000, ProcessingDays: 2, Buyer: "Foreign Investment Co.", Seller: "Agricultural Coop"},
		{ID: "TRF-2024-008", ParcelID: "BEL-89012", Region: "belgrade", Type: domain.TransferTypeSale, Status: domain.TransferStatusPending, SubmittedDate: "2024-02-22", Value: 520000, ProcessingDays: 0, Buyer: "Tech Holdings", Seller: "Manufacturing Ltd."},
		{ID: "TRF-2024-009", ParcelID: "KOL-45678", Region: "kolubara", Type: domain.TransferTypeInheritance, Status: domain.TransferStatusApproved, SubmittedDate: "2024-02-12", Value: 78000, ProcessingDays: 8, Buyer: "Janković Heirs", Seller: "Estate of Janković"},
		{ID: "TRF-2024-010", ParcelID: "BRA-90123", Region: "branicevo", Type: domain.TransferTypeSale, Status: domain.TransferStatusCompleted, SubmittedDate: "2024-02-08", CompletedDate: strptr("2024-02-11"), Value: 45000, ProcessingDays: 3, Buyer: "Todorović M.", Seller: "Simić J."},
	}
}

func fixtureMortgages() []domain.MortgageRecord {
	return []domain.MortgageRecord{
		{ID: "MTG-2024-001", ParcelID: "BEL-11111", Region: "belgrade", Bank: "Banca Intesa", Amount: 150000, Status: domain.MortgageStatusActive, StartDate: "2022-03-15", RemainingBalance: 125000, MonthlyPayment: 1250},
		{ID: "MTG-2024-002", ParcelID: "VOJ-22222", Region: "vojvodina", Bank: "Erste Bank", Amount: 85000, Status: domain.MortgageStatusActive, StartDate: "2021-06-20", RemainingBalance: 62000, MonthlyPayment: 780},
		{ID: "MTG-2024-003", ParcelID: "BEL-33333", Region: "belgrade", Bank: "UniCredit", Amount: 320000, Status: domain.MortgageStatusActive, StartDate: "2023-01-10", RemainingBalance: 305000, MonthlyPayment: 2800},
		{ID: "MTG-2024-004", ParcelID: "SUM-44444", Region: "sumadija", Bank: "Komercijalna Banka", Amount: 95000, Status: domain.MortgageStatusPaid, StartDate: "2018-05-12", EndDate: strptr("2024-01-15"), RemainingBalance: 0, MonthlyPayment: 0},
		{ID: "MTG-2024-005", ParcelID: "NIS-55555", Region: "nisava", Bank: "AIK Banka", Amount: 45000, Status: domain.MortgageStatusDefaulted, StartDate: "2020-09-01", RemainingBalance: 38000, MonthlyPayment: 520},
		{ID: "MTG-2024-006", ParcelID: "ZLA-66666", Region: "zlatibor", Bank: "Raiffeisen", Amount: 180000, Status: domain.MortgageStatusActive, StartDate: "2022-11-20", RemainingBalance: 165000, MonthlyPayment: 1650},
		{ID: "MTG-2024-007", ParcelID: "VOJ-77777", Region: "vojvodina", Bank: "OTP Banka", Amount: 220000, Status: domain.MortgageStatusActive, StartDate: "2023-04-05", RemainingBalance: 215000, MonthlyPayment: 1980},
		{ID: "MTG-2024-008", ParcelID: "BEL-88888", Region: "belgrade", Bank: "Banca Intesa", Amount: 450000, Status: domain.MortgageStatusForeclosure, StartDate: "2019-08-15", RemainingBalance: 380000, MonthlyPayment: 4200},
		{ID: "MTG-2024-009", ParcelID: "POD-99999", Region: "podunavlje", Bank: "Erste Bank", Amount: 65000, Status: domain.MortgageStatusActive, StartDate: "2022-07-01", RemainingBalance: 52000, MonthlyPayment: 680},
		{ID: "MTG-2024-010", ParcelID: "KOL-10101", Region: "kolubara", Bank: "UniCredit", Amount: 110000, Status: domain.MortgageStatusActive, StartDate: "2021-12-10", RemainingBalance: 85000, MonthlyPayment: 1100},
	}
}

func fixtureLegalStatuses() []domain.PropertyLegalStatus {
	return []domain.PropertyLegalStatus{
		{ID: "P001", ParcelID: "BG-2024-45892", Address: "Knez Mihailova 22", City: "Belgrade", Status: domain.LegalStatusVerified, OwnershipLineage: 4, ZoningApproval: true, EnvironmentalClearance: true, OccupancyCertificate: true, MortgageStatus: "clear", LienStatus: false, BlockchainHash: "0x7a8b9c...3d4e5f", LastVerified: "2024-01-15", RiskFlags: []string{}},
		{ID: "P002", ParcelID: "BG-2024-45893", Address: "Terazije 15", City: "Belgrade", Status: domain.LegalStatusPending, OwnershipLineage: 2, ZoningApproval: true, EnvironmentalClearance: false, OccupancyCertificate: true, MortgageStatus: "active", LienStatus: false, BlockchainHash: "0x1f2e3d...6a7b8c", LastVerified: "2024-01-10", RiskFlags: []string{"Environmental clearance missing"}},
		{ID: "P003", ParcelID: "NS-2024-12456", Address: "Zmaj Jovina 8", City: "Novi Sad", Status: domain.LegalStatusDisputed, OwnershipLineage: 6, ZoningApproval: true, EnvironmentalClearance: true, OccupancyCertificate: false, MortgageStatus: "clear", LienStatus: true, BlockchainHash: "0x9c8b7a...4e3d2c", LastVerified: "2024-01-08", RiskFlags: []string{"Title conflict", "Missing occupancy certificate"}},
		{ID: "P004", ParcelID: "NI-2024-78234", Address: "Obrenovićeva 42", City: "Niš", Status: domain.LegalStatusVerified, OwnershipLineage: 3, ZoningApproval: true, EnvironmentalClearance: true, OccupancyCertificate: true, MortgageStatus: "active", LienStatus: false, BlockchainHash: "0x5d6e7f...2a1b0c", LastVerified: "2024-01-14", RiskFlags: []string{}},
		{ID: "P005", ParcelID: "KG-2024-34567", Address: "Kralja Petra I 18", City: "Kragujevac", Status: domain.LegalStatusLitigation, OwnershipLineage: 8, ZoningApproval: false, EnvironmentalClearance: true, OccupancyCertificate: false, MortgageStatus: "defaulted", LienStatus: true, BlockchainHash: "0x3c4d5e...8f9g0h", LastVerified: "2024-01-05", RiskFlags: []string{"Under court stay", "Title conflict", "Zoning violation", "Defaulted mortgage"}},
		{ID: "P006", ParcelID: "SU-2024-56789", Address: "Korzo 25", City: "Subotica", Status: domain.LegalStatusVerified, OwnershipLineage: 2, ZoningApproval: true, EnvironmentalClearance: true, OccupancyCertificate: true, MortgageStatus: "clear", LienStatus: false, BlockchainHash: "0x2b3c4d...7e8f9g", LastVerified: "2024-01-16", RiskFlags: []string{}},
		{ID: "P007", ParcelID: "ZR-2024-23456", Address: "Glavna 12", City: "Zrenjanin", Status: domain.LegalStatusPending, OwnershipLineage: 5, ZoningApproval: true, EnvironmentalClearance: true, OccupancyCertificate: false, MortgageStatus: "active", LienStatus: false, BlockchainHash: "0x8e9f0g...3a4b5c", LastVerified: "2024-01-12", RiskFlags: []string{"Pending occupancy verification"}},
		{ID: "P008", ParcelID: "PA-2024-67890", Address: "Vojvode Radomira 5", City: "Pančevo", Status: domain.LegalStatusVerified, OwnershipLineage: 3, ZoningApproval: true, EnvironmentalClearance: true, OccupancyCertificate: true, MortgageStatus: "clear", LienStatus: false, BlockchainHash: "0x4d5e6f...9g0h1i", LastVerified: "2024-01-15", RiskFlags: []string{}},
	}
}

func fixtureAffordability() []domain.AffordabilityRecord {
	return []domain.AffordabilityRecord{
		{CityID: "belgrade", CityName: "Belgrade", MedianHousePrice: 185000, MedianHouseholdIncome: 14500, PriceToIncomeRatio: 12.8, EligibleHouseholds: 18, NewAffordableUnits: 342, AffordabilityStatus: "critical"},
		{CityID: "novisad", CityName: "Novi Sad", MedianHousePrice: 145000, MedianHouseholdIncome: 14200, PriceToIncomeRatio: 10.2, EligibleHouseholds: 24, NewAffordableUnits: 187, AffordabilityStatus: "critical"},
		{CityID: "nis", CityName: "Niš", MedianHousePrice: 78000, MedianHouseholdIncome: 10500, PriceToIncomeRatio: 7.4, EligibleHouseholds: 38, NewAffordableUnits: 124, AffordabilityStatus: "stressed"},
		{CityID: "kragujevac", CityName: "Kragujevac", MedianHousePrice: 68000, MedianHouseholdIncome: 10000, PriceToIncomeRatio: 6.8, EligibleHouseholds: 42, NewAffordableUnits: 98, AffordabilityStatus: "affordable"},
		{CityID: "subotica", CityName: "Subotica", MedianHousePrice: 72000, MedianHouseholdIncome: 10100, PriceToIncomeRatio: 7.1, EligibleHouseholds: 40, NewAffordableUnits: 76, AffordabilityStatus: "stressed"},
		{CityID: "zrenjanin", CityName: "Zrenjanin", MedianHousePrice: 55000, MedianHouseholdIncome: 9300, PriceToIncomeRatio: 5.9, EligibleHouseholds: 48, NewAffordableUnits: 54, AffordabilityStatus: "affordable"},
		{CityID: "pancevo", CityName: "Pančevo", MedianHousePrice: 95000, MedianHouseholdIncome: 11600, PriceToIncomeRatio: 8.2, EligibleHouseholds: 35, NewAffordableUnits: 67, AffordabilityStatus: "stressed"},
		{CityID: "cacak", CityName: "Čačak", MedianHousePrice: 48000, MedianHouseholdIncome: 8700, PriceToIncomeRatio: 5.5, EligibleHouseholds: 52, NewAffordableUnits: 43, AffordabilityStatus: "affordable"},
		{CityID: "leskovac", CityName: "Leskovac", MedianHousePrice: 42000, MedianHouseholdIncome: 8100, PriceToIncomeRatio: 5.2, EligibleHouseholds: 55, NewAffordableUnits: 38, AffordabilityStatus: "affordable"},
		{CityID: "kraljevo", CityName: "Kraljevo", MedianHousePrice: 52000, MedianHouseholdIncome: 9000, PriceToIncomeRatio: 5.8, EligibleHouseholds: 50, NewAffordableUnits: 45, AffordabilityStatus: "affordable"},
	}
}

func fixtureSubsidies() []domain.SubsidyBracket {
	return []domain.SubsidyBracket{
		{Bracket: "< €5,000", Allocated: 28_500_000, Utilized: 24_800_000, Beneficiaries: 4850, Leakage: 1.8},
		{Bracket: "€5,000 - €10,000", Allocated: 35_200_000, Utilized: 28_100_000, Beneficiaries: 4200, Leakage: 2.4},
		{Bracket: "€10,000 - €15,000", Allocated: 22_800_000, Utilized: 16_200_000, Beneficiaries: 2400, Leakage: 4.2},
		{Bracket: "€15,000 - €20,000", Allocated: 8_500_000, Utilized: 5_100_000, Beneficiaries: 780, Leakage: 5.8},
		{Bracket: "> €20,000", Allocated: 3_500_000, Utilized: 2_000_000, Beneficiaries: 220, Leakage: 8.1},
	}
}

func fixtureSubsidyFlags() []domain.SubsidyRedFlag {
	return []domain.SubsidyRedFlag{
		{Type: "Premium property subsidy", Count: 45, Amount: 890_000},
		{Type: "Repeated beneficiary", Count: 23, Amount: 456_000},
		{Type: "Income mismatch", Count: 67, Amount: 1_230_000},
		{Type: "Construction delay", Count: 89, Amount: 2_150_000},
		{Type: "False documentation", Count: 12, Amount: 340_000},
	}
}

func fixtureBubbleRisks() []domain.BubbleCityRisk {
	return []domain.BubbleCityRisk{
		{City: "Belgrade", RiskScore: 78, PriceGrowth: 18.4, IncomeGrowth: 4.2, Status: "high"},
		{City: "Novi Sad", RiskScore: 72, PriceGrowth: 22.1, IncomeGrowth: 5.1, Status: "high"},
		{City: "Niš", RiskScore: 45, PriceGrowth: 8.2, IncomeGrowth: 4.8, Status: "medium"},
		{City: "Kragujevac", RiskScore: 38, PriceGrowth: 6.5, IncomeGrowth: 3.9, Status: "low"},
		{City: "Subotica", RiskScore: 52, PriceGrowth: 12.4, IncomeGrowth: 4.5, Status: "medium"},
		{City: "Pančevo", RiskScore: 61, PriceGrowth: 15.8, IncomeGrowth: 5.2, Status: "medium"},
	}
}

func fixtureStressSignals() []domain.MarketStressSignal {
	return []domain.MarketStressSignal{
		{Signal: "Rapid resales (<12mo)", Count: 2340, Trend: 18.5, Severity: "high"},
		{Signal: "Multiple properties/entity", Count: 456, Trend: 12.3, Severity: "medium"},
		{Signal: "Debt-backed purchases", Count: 8920, Trend: 24.1, Severity: "high"},
		{Signal: "Construction vs occupancy gap", Count: 3200, Trend: 8.4, Severity: "medium"},
		{Signal: "Foreign investment spike", Count: 1890, Trend: 42.5, Severity: "high"},
	}
}

func fixtureGrowthTrend() []domain.GrowthPoint {
	return []domain.GrowthPoint{
		{Month: "Jul 23", PriceGrowth: 8.2, IncomeGrowth: 3.8},
		{Month: "Aug 23", PriceGrowth: 9.1, IncomeGrowth: 3.9},
		{Month: "Sep 23", PriceGrowth: 10.4, IncomeGrowth: 4.0},
		{Month: "Oct 23", PriceGrowth: 11.8, IncomeGrowth: 4.1},
		{Month: "Nov 23", PriceGrowth: 13.2, IncomeGrowth: 4.2},
		{Month: "Dec 23", PriceGrowth: 14.5, IncomeGrowth: 4.3},
		{Month: "Jan 24", PriceGrowth: 15.8, IncomeGrowth: 4.4},
		{Month: "Feb 24", PriceGrowth: 16.2, IncomeGrowth: 4.5},
		{Month: "Mar 24", PriceGrowth: 17.1, IncomeGrowth: 4.6},
		{Month: "Apr 24", PriceGrowth: 18.4, IncomeGrowth: 4.7},
	}
}

func fixtureMonthlyTrends() []domain.MonthlyTrend {
	return []domain.MonthlyTrend{
		{Month: "Jul", Transfers: 2100, Disputes: 180, Mortgages: 890, FraudBlocked: 8},
		{Month: "Aug", Transfers: 2350, Disputes: 165, Mortgages: 920, FraudBlocked: 12},
		{Month: "Sep", Transfers: 2480, Disputes: 195, Mortgages: 1050, FraudBlocked: 6},
		{Month: "Oct", Transfers: 2890, Disputes: 142, Mortgages: 980, FraudBlocked: 15},
		{Month: "Nov", Transfers: 2650, Disputes: 158, Mortgages: 1120, FraudBlocked: 9},
		{Month: "Dec", Transfers: 1980, Disputes: 134, Mortgages: 750, FraudBlocked: 4},
		{Month: "Jan", Transfers: 2780, Disputes: 189, Mortgages: 1280, FraudBlocked: 11},
		{Month: "Feb", Transfers: 3120, Disputes: 167, Mortgages: 1350, FraudBlocked: 7},
	}
}
