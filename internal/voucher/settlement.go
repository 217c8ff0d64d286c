package voucher

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/ciripa6pa-alt/penjualan-vocer-wf/internal/store"
)

// ErrNothingToSettle is returned by Settle when there are no current sales.
// It is informational, not a storage failure.
var ErrNothingToSettle = errors.New("no sales to settle")

// SalesReport is the current working set with its running totals, as shown on
// the report page and written to the spreadsheet export.
type SalesReport struct {
	Sales           []Sale `json:"sales"`
	TotalPenjualan  int64  `json:"totalPenjualan"`
	TotalFee        int64  `json:"totalFee"`
	TotalSetoran    int64  `json:"totalSetoran"`
	JumlahTransaksi int    `json:"jumlahTransaksi"`
}

// Report aggregates the current sales without touching them.
func (s *Service) Report(ctx context.Context) (SalesReport, error) {
	sales, err := s.ListSales(ctx)
	if err != nil {
		return SalesReport{}, err
	}

	report := SalesReport{Sales: sales, JumlahTransaksi: len(sales)}
	for _, sale := range sales {
		report.TotalPenjualan += sale.Harga
		report.TotalFee += sale.FeePenjual
		report.TotalSetoran += sale.SetoranBersih
	}
	return report, nil
}

// Settle archives the current sales as one immutable settlement record and
// clears the working set. With zero current sales it returns
// ErrNothingToSettle and writes nothing.
//
// The archive and the clear are two writes. When the medium supports
// transactions they run in one, so a failure cannot leave a settlement record
// behind with the sales still in place; on a plain medium the two writes run
// in order and that window exists, as it did in every earlier version of this
// app. Either way the observable outcome is the same: one new record, one
// empty working set.
func (s *Service) Settle(ctx context.Context) (SettlementRecord, error) {
	report, err := s.Report(ctx)
	if err != nil {
		return SettlementRecord{}, err
	}
	if report.JumlahTransaksi == 0 {
		return SettlementRecord{}, ErrNothingToSettle
	}

	record := SettlementRecord{
		ID:              store.NewID(),
		Tanggal:         s.now(),
		TotalPenjualan:  report.TotalPenjualan,
		TotalFee:        report.TotalFee,
		TotalSetoran:    report.TotalSetoran,
		JumlahTransaksi: report.JumlahTransaksi,
	}

	archiveAndClear := func(kv store.KV) error {
		if err := s.history.WithKV(kv).Insert(ctx, record); err != nil {
			return fmt.Errorf("archive settlement: %w", err)
		}
		if err := s.sales.WithKV(kv).Clear(ctx); err != nil {
			return fmt.Errorf("clear sales: %w", err)
		}
		return nil
	}

	if tx, ok := s.kv.(store.Transactional); ok {
		err = tx.RunInTransaction(ctx, archiveAndClear)
	} else {
		err = archiveAndClear(s.kv)
	}
	if err != nil {
		s.logger.Error("settlement failed", zap.Error(err))
		return SettlementRecord{}, err
	}

	s.logger.Info("sales settled",
		zap.Int("transactions", record.JumlahTransaksi),
		zap.Int64("total_setoran", record.TotalSetoran),
	)
	return record, nil
}
