package export

import (
	"strconv"

	"github.com/Shalini630/serbian-land-trust/internal/domain"
)

// DisputeColumns is the dispute table layout.
var DisputeColumns = []Column{
	{Field: "id", Header: "Case ID", Kind: KindText},
	{Field: "parcel_id", Header: "Parcel", Kind: KindText},
	{Field: "region", Header: "Region", Kind: KindText},
	{Field: "type", Header: "Type", Kind: KindBadge},
	{Field: "status", Header: "Status", Kind: KindBadge},
	{Field: "filed_date", Header: "Filed", Kind: KindDate},
	{Field: "estimated_value", Header: "Est. Value", Kind: KindCurrency},
	{Field: "days_open", Header: "Days Open", Kind: KindNumber},
}

// TransferColumns is the transfer table layout.
var TransferColumns = []Column{
	{Field: "id", Header: "Transfer ID", Kind: KindText},
	{Field: "parcel_id", Header: "Parcel", Kind: KindText},
	{Field: "region", Header: "Region", Kind: KindText},
	{Field: "type", Header: "Type", Kind: KindBadge},
	{Field: "status", Header: "Status", Kind: KindBadge},
	{Field: "submitted_date", Header: "Submitted", Kind: KindDate},
	{Field: "completed_date", Header: "Completed", Kind: KindDate},
	{Field: "value", Header: "Value", Kind: KindCurrency},
	{Field: "buyer", Header: "Buyer", Kind: KindText},
	{Field: "seller", Header: "Seller", Kind: KindText},
}

// MortgageColumns is the mortgage table layout.
var MortgageColumns = []Column{
	{Field: "id", Header: "Mortgage ID", Kind: KindText},
	{Field: "parcel_id", Header: "Parcel", Kind: KindText},
	{Field: "region", Header: "Region", Kind: KindText},
	{Field: "bank", Header: "Bank", Kind: KindText},
	{Field: "status", Header: "Status", Kind: KindBadge},
	{Field: "start_date", Header: "Start", Kind: KindDate},
	{Field: "amount", Header: "Amount", Kind: KindCurrency},
	{Field: "remaining_balance", Header: "Remaining", Kind: KindCurrency},
	{Field: "monthly_payment", Header: "Monthly", Kind: KindCurrency},
}

// DisputeTable materializes dispute records, preserving input order.
func DisputeTable(records []domain.DisputeRecord) Table {
	rows := make([][]string, 0, len(records))
	for _, d := range records {
		rows = append(rows, []string{
			d.ID,
			d.ParcelID,
			d.Region,
			d.Type,
			d.Status,
			d.FiledDate,
			FormatCurrency(d.EstimatedValue),
			strconv.Itoa(d.DaysOpen),
		})
	}
	return Table{Columns: DisputeColumns, Rows: rows}
}

// TransferTable materializes transfer records, preserving input order.
// A pending transfer's completed date renders as an empty cell.
func TransferTable(records []domain.TransferRecord) Table {
	rows := make([][]string, 0, len(records))
	for _, t := range records {
		completed := ""
		if t.CompletedDate != nil {
			completed = *t.CompletedDate
		}
		rows = append(rows, []string{
			t.ID,
			t.ParcelID,
			t.Region,
			t.Type,
			t.Status,
			t.SubmittedDate,
			completed,
			FormatCurrency(t.Value),
			t.Buyer,
			t.Seller,
		})
	}
	return Table{Columns: TransferColumns, Rows: rows}
}

// MortgageTable materializes mortgage records, preserving input order.
func MortgageTable(records []domain.MortgageRecord) Table {
	rows := make([][]string, 0, len(records))
	for _, m := range records {
		rows = append(rows, []string{
			m.ID,
			m.ParcelID,
			m.Region,
			m.Bank,
			m.Status,
			m.StartDate,
			FormatCurrency(m.Amount),
			FormatCurrency(m.RemainingBalance),
			FormatCurrency(m.MonthlyPayment),
		})
	}
	return Table{Columns: MortgageColumns, Rows: rows}
}
