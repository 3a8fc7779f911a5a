package registry

import (
	"fmt"
	"time"
)

// Validate checks the ingestion invariants on a dataset before it is
// accepted into the repository. A dataset that fails validation is rejected
// whole; there is no partial load.
func Validate(d *Dataset) error {
	regionIDs := make(map[string]bool, len(d.Regions))
	for _, r := range d.Regions {
		if r.ID == "" {
			return fmt.Errorf("region with empty id (%s)", r.DisplayName)
		}
		if regionIDs[r.ID] {
			return fmt.Errorf("duplicate region id %s", r.ID)
		}
		regionIDs[r.ID] = true
	}

	seen := make(map[string]bool)
	for _, dp := range d.Disputes {
		if err := checkRecord(seen, dp.ID, dp.Region, regionIDs); err != nil {
			return fmt.Errorf("dispute: %w", err)
		}
		if err := checkDate(dp.FiledDate); err != nil {
			return fmt.Errorf("dispute %s: filed_date: %w", dp.ID, err)
		}
		if dp.DaysOpen < 0 {
			return fmt.Errorf("dispute %s: negative days_open", dp.ID)
		}
	}

	for _, tr := range d.Transfers {
		if err := checkRecord(seen, tr.ID, tr.Region, regionIDs); err != nil {
			return fmt.Errorf("transfer: %w", err)
		}
		if err := checkDate(tr.SubmittedDate); err != nil {
			return fmt.Errorf("transfer %s: submitted_date: %w", tr.ID, err)
		}
		// completed_date is set exactly when the transfer is completed
		completed := tr.Status == "completed"
		if completed && tr.CompletedDate == nil {
			return fmt.Errorf("transfer %s: completed without completed_date", tr.ID)
		}
		if !completed && tr.CompletedDate != nil {
			return fmt.Errorf("transfer %s: completed_date set on %s transfer", tr.ID, tr.Status)
		}
		if tr.CompletedDate != nil {
			if err := checkDate(*tr.CompletedDate); err != nil {
				return fmt.Errorf("transfer %s: completed_date: %w", tr.ID, err)
			}
		}
		if tr.Value < 0 {
			return fmt.Errorf("transfer %s: negative value", tr.ID)
		}
	}

	for _, m := range d.Mortgages {
		if err := checkRecord(seen, m.ID, m.Region, regionIDs); err != nil {
			return fmt.Errorf("mortgage: %w", err)
		}
		if m.RemainingBalance > m.Amount {
			return fmt.Errorf("mortgage %s: remaining balance %.2f exceeds amount %.2f", m.ID, m.RemainingBalance, m.Amount)
		}
		if m.Status == "paid" && m.RemainingBalance != 0 {
			return fmt.Errorf("mortgage %s: paid with remaining balance %.2f", m.ID, m.RemainingBalance)
		}
		if err := checkDate(m.StartDate); err != nil {
			return fmt.Errorf("mortgage %s: start_date: %w", m.ID, err)
		}
	}

	for _, ls := range d.LegalStatuses {
		if ls.ID == "" {
			return fmt.Errorf("legal status with empty id (parcel %s)", ls.ParcelID)
		}
		if seen[ls.ID] {
			return fmt.Errorf("legal status: duplicate record id %s", ls.ID)
		}
		seen[ls.ID] = true
	}

	for _, a := range d.Affordability {
		if a.MedianHousePrice < 0 || a.MedianHouseholdIncome < 0 {
			return fmt.Errorf("affordability %s: negative price or income", a.CityID)
		}
	}

	for _, b := range d.Subsidies {
		if b.Utilized > b.Allocated {
			return fmt.Errorf("subsidy bracket %q: utilized %.2f exceeds allocated %.2f", b.Bracket, b.Utilized, b.Allocated)
		}
	}

	return nil
}

func checkRecord(seen map[string]bool, id, region string, regionIDs map[string]bool) error {
	if id == "" {
		return fmt.Errorf("record with empty id")
	}
	if seen[id] {
		return fmt.Errorf("duplicate record id %s", id)
	}
	seen[id] = true
	if !regionIDs[region] {
		return fmt.Errorf("record %s references unknown region %q", id, region)
	}
	return nil
}

func checkDate(s string) error {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("invalid date %q", s)
	}
	return nil
}
