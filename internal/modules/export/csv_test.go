package export

import (
	"strings"
	"testing"

	"github.com/Shalini630/serbian-land-trust/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV(t *testing.T) {
	table := Table{
		Columns: []Column{
			{Field: "id", Header: "Case ID", Kind: KindText},
			{Field: "value", Header: "Est. Value", Kind: KindCurrency},
		},
		Rows: [][]string{
			{"DSP-001", "€450,000"},
			{"DSP-002", "say \"hello\", world"},
		},
	}

	var buf strings.Builder
	require.NoError(t, WriteCSV(&buf, table))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Case ID,Est. Value", lines[0])
	assert.Equal(t, "DSP-001,\"€450,000\"", lines[1])
	assert.Equal(t, "DSP-002,\"say \"\"hello\"\", world\"", lines[2])
}

func TestWriteCSV_RowWidthMismatch(t *testing.T) {
	table := Table{
		Columns: []Column{{Field: "id", Header: "ID", Kind: KindText}},
		Rows:    [][]string{{"a", "extra"}},
	}

	err := WriteCSV(&strings.Builder{}, table)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 0")
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "€1,250,000", FormatCurrency(1250000))
	assert.Equal(t, "€450", FormatCurrency(450))
	assert.Equal(t, "€0", FormatCurrency(0))
	assert.Equal(t, "€-12,500", FormatCurrency(-12500))
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "20,350", FormatNumber(20350))
	assert.Equal(t, "999", FormatNumber(999))
	assert.Equal(t, "1,000", FormatNumber(1000))
	assert.Equal(t, "-4,200", FormatNumber(-4200))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "18.4%", FormatPercent(18.4))
	assert.Equal(t, "0.0%", FormatPercent(0))
	assert.Equal(t, "100.0%", FormatPercent(100))
}

func TestTransferTable_PendingCompletedDateEmpty(t *testing.T) {
	completed := "2024-01-15"
	table := TransferTable([]domain.TransferRecord{
		{ID: "TRF-001", ParcelID: "BG-1001", Region: "belgrade", Type: "sale",
			Status: "completed", SubmittedDate: "2023-12-01", CompletedDate: &completed,
			Value: 185000, Buyer: "M. Petrović", Seller: "J. Jovanović"},
		{ID: "TRF-002", ParcelID: "NS-2040", Region: "vojvodina", Type: "inheritance",
			Status: "pending", SubmittedDate: "2024-02-10", Value: 92000,
			Buyer: "A. Nikolić", Seller: "Estate of D. Nikolić"},
	})

	require.Len(t, table.Rows, 2)
	assert.Equal(t, "2024-01-15", table.Rows[0][6])
	assert.Equal(t, "", table.Rows[1][6])
	assert.Equal(t, "€185,000", table.Rows[0][7])
	assert.Len(t, table.Rows[0], len(TransferColumns))
}

func TestDisputeTable(t *testing.T) {
	table := DisputeTable([]domain.DisputeRecord{
		{ID: "DSP-001", ParcelID: "BG-1001", Region: "belgrade", Type: "boundary",
			Status: "open", FiledDate: "2024-01-05", EstimatedValue: 450000, DaysOpen: 47},
	})

	require.Len(t, table.Rows, 1)
	assert.Equal(t, []string{
		"DSP-001", "BG-1001", "belgrade", "boundary", "open",
		"2024-01-05", "€450,000", "47",
	}, table.Rows[0])
	assert.Equal(t, DisputeColumns, table.Columns)
}

func TestMortgageTable(t *testing.T) {
	table := MortgageTable([]domain.MortgageRecord{
		{ID: "MTG-001", ParcelID: "BG-1001", Region: "belgrade", Bank: "Banca Intesa",
			Status: "active", StartDate: "2022-06-01", Amount: 120000,
			RemainingBalance: 98500, MonthlyPayment: 620},
	})

	require.Len(t, table.Rows, 1)
	assert.Equal(t, "€98,500", table.Rows[0][7])
	assert.Equal(t, "€620", table.Rows[0][8])
}
