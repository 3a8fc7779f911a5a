package registry

import (
	"testing"

	"github.com/Shalini630/serbian-land-trust/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_FixtureDatasetIsValid(t *testing.T) {
	ds := FixtureDataset()
	require.NoError(t, Validate(&ds))
}

func TestValidate_CompletedTransferRequiresCompletedDate(t *testing.T) {
	ds := FixtureDataset()
	for i := range ds.Transfers {
		if ds.Transfers[i].Status == domain.TransferStatusCompleted {
			ds.Transfers[i].CompletedDate = nil
			break
		}
	}

	err := Validate(&ds)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "completed without completed_date")
}

func TestValidate_PendingTransferRejectsCompletedDate(t *testing.T) {
	ds := FixtureDataset()
	for i := range ds.Transfers {
		if ds.Transfers[i].Status == domain.TransferStatusPending {
			ds.Transfers[i].CompletedDate = strptr("2024-03-01")
			break
		}
	}

	err := Validate(&ds)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "completed_date set on pending transfer")
}

func TestValidate_PaidMortgageMustHaveZeroBalance(t *testing.T) {
	ds := FixtureDataset()
	for i := range ds.Mortgages {
		if ds.Mortgages[i].Status == domain.MortgageStatusPaid {
			ds.Mortgages[i].RemainingBalance = 1500
			break
		}
	}

	err := Validate(&ds)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "paid with remaining balance")
}

func TestValidate_BalanceCannotExceedAmount(t *testing.T) {
	ds := FixtureDataset()
	ds.Mortgages[0].RemainingBalance = ds.Mortgages[0].Amount + 1

	err := Validate(&ds)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds amount")
}

func TestValidate_UnknownRegionRejected(t *testing.T) {
	ds := FixtureDataset()
	ds.Disputes[0].Region = "atlantis"

	err := Validate(&ds)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown region")
}

func TestValidate_DuplicateIDsRejected(t *testing.T) {
	ds := FixtureDataset()
	ds.Disputes[1].ID = ds.Disputes[0].ID

	err := Validate(&ds)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate record id")
}

func TestValidate_BadDateRejected(t *testing.T) {
	ds := FixtureDataset()
	ds.Disputes[0].FiledDate = "15-01-2024"

	err := Validate(&ds)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid date")
}

func TestValidate_OverUtilizedBracketRejected(t *testing.T) {
	ds := FixtureDataset()
	ds.Subsidies[0].Utilized = ds.Subsidies[0].Allocated + 1

	err := Validate(&ds)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds allocated")
}
