package registry

import (
	"github.com/Shalini630/serbian-land-trust/internal/domain"
	"github.com/Shalini630/serbian-land-trust/internal/modules/filtering"
)

// Filter field bindings for each record collection. The date binding decides
// which field the range bucket cuts on: filed date for disputes, submission
// date for transfers, start date for mortgages.

// DisputeFields binds dispute records to the filter engine.
func DisputeFields() filtering.Fields[domain.DisputeRecord] {
	return filtering.Fields[domain.DisputeRecord]{
		ID:       func(d domain.DisputeRecord) string { return d.ID },
		ParcelID: func(d domain.DisputeRecord) string { return d.ParcelID },
		Region:   func(d domain.DisputeRecord) string { return d.Region },
		Status:   func(d domain.DisputeRecord) string { return d.Status },
		Date:     func(d domain.DisputeRecord) string { return d.FiledDate },
	}
}

// TransferFields binds transfer records to the filter engine.
func TransferFields() filtering.Fields[domain.TransferRecord] {
	return filtering.Fields[domain.TransferRecord]{
		ID:       func(t domain.TransferRecord) string { return t.ID },
		ParcelID: func(t domain.TransferRecord) string { return t.ParcelID },
		Region:   func(t domain.TransferRecord) string { return t.Region },
		Status:   func(t domain.TransferRecord) string { return t.Status },
		Date:     func(t domain.TransferRecord) string { return t.SubmittedDate },
	}
}

// MortgageFields binds mortgage records to the filter engine.
func MortgageFields() filtering.Fields[domain.MortgageRecord] {
	return filtering.Fields[domain.MortgageRecord]{
		ID:       func(m domain.MortgageRecord) string { return m.ID },
		ParcelID: func(m domain.MortgageRecord) string { return m.ParcelID },
		Region:   func(m domain.MortgageRecord) string { return m.Region },
		Status:   func(m domain.MortgageRecord) string { return m.Status },
		Date:     func(m domain.MortgageRecord) string { return m.StartDate },
	}
}

// LegalStatusFields binds legal status records to the filter engine.
// Legal statuses carry no meaningful date for range bucketing.
func LegalStatusFields() filtering.Fields[domain.PropertyLegalStatus] {
	return filtering.Fields[domain.PropertyLegalStatus]{
		ID:       func(p domain.PropertyLegalStatus) string { return p.ID },
		ParcelID: func(p domain.PropertyLegalStatus) string { return p.ParcelID },
		Status:   func(p domain.PropertyLegalStatus) string { return p.Status },
	}
}
