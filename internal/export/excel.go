// Package export writes the sales report to an .xlsx workbook, matching the
// layout the app has always exported.
package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/ciripa6pa-alt/penjualan-vocer-wf/internal/voucher"
)

// SheetName is the single worksheet the report is written to.
const SheetName = "Laporan Penjualan"

var headers = []string{
	"Tanggal",
	"Nama Pelanggan",
	"Paket",
	"Harga",
	"Kode Voucher",
	"Fee Penjual",
	"Setoran Bersih",
}

// FileName returns the download name for a report exported on the given day,
// e.g. Laporan_Penjualan_2026-08-30.xlsx.
func FileName(at time.Time) string {
	return fmt.Sprintf("Laporan_Penjualan_%s.xlsx", at.Format("2006-01-02"))
}

// SalesReport builds the workbook: one header row, one row per sale, and a
// trailing TOTAL row carrying the report's aggregates. The caller owns
// closing the returned file.
func SalesReport(report voucher.SalesReport) (*excelize.File, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(SheetName)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}

	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(SheetName, cell, h); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
	}

	for i, sale := range report.Sales {
		row := i + 2
		values := []interface{}{
			sale.Tanggal,
			sale.NamaPelanggan,
			string(sale.Paket),
			sale.Harga,
			sale.KodeVoucher,
			sale.FeePenjual,
			sale.SetoranBersih,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(SheetName, cell, v); err != nil {
				return nil, fmt.Errorf("write sale row %d: %w", row, err)
			}
		}
	}

	totalRow := len(report.Sales) + 2
	totals := []interface{}{
		"",
		"",
		"TOTAL",
		report.TotalPenjualan,
		"",
		report.TotalFee,
		report.TotalSetoran,
	}
	for col, v := range totals {
		cell, _ := excelize.CoordinatesToCellName(col+1, totalRow)
		if err := f.SetCellValue(SheetName, cell, v); err != nil {
			return nil, fmt.Errorf("write total row: %w", err)
		}
	}

	return f, nil
}
