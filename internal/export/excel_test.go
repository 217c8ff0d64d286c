package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ciripa6pa-alt/penjualan-vocer-wf/internal/voucher"
)

func TestFileName(t *testing.T) {
	at := time.Date(2026, 8, 30, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "Laporan_Penjualan_2026-08-30.xlsx", FileName(at))
}

func TestSalesReportWorkbook(t *testing.T) {
	report := voucher.SalesReport{
		Sales: []voucher.Sale{
			{
				ID:            "s1",
				Tanggal:       "2026-08-30",
				NamaPelanggan: "Budi",
				Paket:         voucher.Paket24Jam,
				Harga:         5000,
				KodeVoucher:   "WF-001",
				FeePenjual:    1000,
				SetoranBersih: 4000,
			},
			{
				ID:            "s2",
				Tanggal:       "2026-08-29",
				NamaPelanggan: "Siti",
				Paket:         voucher.Paket7Hari,
				Harga:         20000,
				KodeVoucher:   "WF-002",
				FeePenjual:    2000,
				SetoranBersih: 18000,
			},
		},
		TotalPenjualan:  25000,
		TotalFee:        3000,
		TotalSetoran:    22000,
		JumlahTransaksi: 2,
	}

	f, err := SalesReport(report)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetName}, f.GetSheetList())

	header, err := f.GetCellValue(SheetName, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Tanggal", header)

	nama, _ := f.GetCellValue(SheetName, "B2")
	assert.Equal(t, "Budi", nama)
	paket, _ := f.GetCellValue(SheetName, "C3")
	assert.Equal(t, "7 Hari", paket)
	harga, _ := f.GetCellValue(SheetName, "D3")
	assert.Equal(t, "20000", harga)

	// TOTAL row sits right under the last sale.
	label, _ := f.GetCellValue(SheetName, "C4")
	assert.Equal(t, "TOTAL", label)
	totalHarga, _ := f.GetCellValue(SheetName, "D4")
	assert.Equal(t, "25000", totalHarga)
	totalFee, _ := f.GetCellValue(SheetName, "F4")
	assert.Equal(t, "3000", totalFee)
	totalSetoran, _ := f.GetCellValue(SheetName, "G4")
	assert.Equal(t, "22000", totalSetoran)
}

func TestSalesReportEmptyStillHasTotalRow(t *testing.T) {
	f, err := SalesReport(voucher.SalesReport{})
	require.NoError(t, err)
	defer f.Close()

	label, _ := f.GetCellValue(SheetName, "C2")
	assert.Equal(t, "TOTAL", label)
	total, _ := f.GetCellValue(SheetName, "D2")
	assert.Equal(t, "0", total)
}
