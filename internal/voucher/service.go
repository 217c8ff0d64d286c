package voucher

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/ciripa6pa-alt/penjualan-vocer-wf/internal/store"
)

// Service provides the record-keeping operations over the three collections.
// Collections are bound once at construction; there are no ambient store
// singletons.
type Service struct {
	kv       store.KV
	sales    *store.Collection[Sale]
	notes    *store.Collection[Note]
	history  *store.Collection[SettlementRecord]
	logger   *zap.Logger
	notifier Notifier
	now      func() time.Time
}

// NewService creates a new Service over the given storage medium.
func NewService(kv store.KV, logger *zap.Logger) *Service {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}

	return &Service{
		kv:       kv,
		sales:    store.NewCollection[Sale](kv, SalesCollection),
		notes:    store.NewCollection[Note](kv, NotesCollection),
		history:  store.NewCollection[SettlementRecord](kv, HistoryCollection),
		logger:   logger,
		notifier: LogNotifier{Logger: logger},
		now:      time.Now,
	}
}

// SetNotifier replaces the default change notifier.
func (s *Service) SetNotifier(n Notifier) {
	if n != nil {
		s.notifier = n
	}
}

// NewSale carries the UI-supplied fields of a sale to be created. Price and
// fee are never supplied; they come from the pricing table.
type NewSale struct {
	Tanggal       string
	NamaPelanggan string
	Paket         Package
	KodeVoucher   string
}

// CreateSale resolves the package rate, derives the net deposit, and persists
// a new sale under a fresh id.
func (s *Service) CreateSale(ctx context.Context, in NewSale) (Sale, error) {
	rate, ok := RateFor(in.Paket)
	if !ok {
		return Sale{}, fmt.Errorf("%w: %q", ErrUnknownPackage, in.Paket)
	}

	sale := Sale{
		ID:            store.NewID(),
		Tanggal:       in.Tanggal,
		NamaPelanggan: in.NamaPelanggan,
		Paket:         in.Paket,
		Harga:         rate.Harga,
		KodeVoucher:   in.KodeVoucher,
		FeePenjual:    rate.FeePenjual,
		SetoranBersih: rate.SetoranBersih(),
	}

	if err := s.sales.Insert(ctx, sale); err != nil {
		s.logger.Error("failed to save sale", zap.String("sale_id", sale.ID), zap.Error(err))
		return Sale{}, fmt.Errorf("failed to save sale: %w", err)
	}

	s.logger.Info("sale created", zap.String("sale_id", sale.ID), zap.String("paket", string(sale.Paket)))
	s.notifier.DataChanged(ActionTambah, EntityPenjualan)
	return sale, nil
}

// UpdateSale merges the patch onto an existing sale. Returns
// store.ErrNotFound (and creates nothing) if id does not exist. A package
// change recomputes price, fee and net deposit.
func (s *Service) UpdateSale(ctx context.Context, id string, patch SalePatch) (Sale, error) {
	var rate Rate
	if patch.Paket != nil {
		var ok bool
		if rate, ok = RateFor(*patch.Paket); !ok {
			return Sale{}, fmt.Errorf("%w: %q", ErrUnknownPackage, *patch.Paket)
		}
	}

	updated, err := s.sales.Update(ctx, id, func(sale *Sale) {
		if patch.Tanggal != nil {
			sale.Tanggal = *patch.Tanggal
		}
		if patch.NamaPelanggan != nil {
			sale.NamaPelanggan = *patch.NamaPelanggan
		}
		if patch.KodeVoucher != nil {
			sale.KodeVoucher = *patch.KodeVoucher
		}
		if patch.Paket != nil {
			sale.Paket = *patch.Paket
			sale.Harga = rate.Harga
			sale.FeePenjual = rate.FeePenjual
			sale.SetoranBersih = rate.SetoranBersih()
		}
	})
	if err != nil {
		return Sale{}, err
	}

	s.logger.Info("sale updated", zap.String("sale_id", id))
	s.notifier.DataChanged(ActionEdit, EntityPenjualan)
	return updated, nil
}

// DeleteSale removes a sale. Deleting an absent id is a no-op, not an error.
func (s *Service) DeleteSale(ctx context.Context, id string) error {
	if err := s.sales.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete sale", zap.String("sale_id", id), zap.Error(err))
		return err
	}
	s.notifier.DataChanged(ActionHapus, EntityPenjualan)
	return nil
}

// GetSale looks a sale up by id. Returns store.ErrNotFound if absent.
func (s *Service) GetSale(ctx context.Context, id string) (Sale, error) {
	return s.sales.GetOne(ctx, id)
}

// ListSales returns every current sale, newest first.
func (s *Service) ListSales(ctx context.Context) ([]Sale, error) {
	sales, err := s.sales.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	// Tanggal is YYYY-MM-DD so lexical order is date order.
	sort.Slice(sales, func(i, j int) bool { return sales[i].Tanggal > sales[j].Tanggal })
	return sales, nil
}

// CreateNote persists a new note timestamped now.
func (s *Service) CreateNote(ctx context.Context, judul, isi string) (Note, error) {
	note := Note{
		ID:      store.NewID(),
		Tanggal: s.now(),
		Judul:   judul,
		Isi:     isi,
	}

	if err := s.notes.Insert(ctx, note); err != nil {
		s.logger.Error("failed to save note", zap.String("note_id", note.ID), zap.Error(err))
		return Note{}, fmt.Errorf("failed to save note: %w", err)
	}

	s.notifier.DataChanged(ActionTambah, EntityCatatan)
	return note, nil
}

// UpdateNote merges the patch onto an existing note and refreshes its
// timestamp. Returns store.ErrNotFound if id does not exist.
func (s *Service) UpdateNote(ctx context.Context, id string, patch NotePatch) (Note, error) {
	updated, err := s.notes.Update(ctx, id, func(note *Note) {
		if patch.Judul != nil {
			note.Judul = *patch.Judul
		}
		if patch.Isi != nil {
			note.Isi = *patch.Isi
		}
		note.Tanggal = s.now()
	})
	if err != nil {
		return Note{}, err
	}

	s.notifier.DataChanged(ActionEdit, EntityCatatan)
	return updated, nil
}

// DeleteNote removes a note. Idempotent like DeleteSale.
func (s *Service) DeleteNote(ctx context.Context, id string) error {
	if err := s.notes.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete note", zap.String("note_id", id), zap.Error(err))
		return err
	}
	s.notifier.DataChanged(ActionHapus, EntityCatatan)
	return nil
}

// GetNote looks a note up by id. Returns store.ErrNotFound if absent.
func (s *Service) GetNote(ctx context.Context, id string) (Note, error) {
	return s.notes.GetOne(ctx, id)
}

// ListNotes returns every note, newest first.
func (s *Service) ListNotes(ctx context.Context) ([]Note, error) {
	notes, err := s.notes.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(notes, func(i, j int) bool { return notes[i].Tanggal.After(notes[j].Tanggal) })
	return notes, nil
}

// ListHistory returns every settlement record, newest first. History is
// read-only: there is no update or delete for settlement records.
func (s *Service) ListHistory(ctx context.Context) ([]SettlementRecord, error) {
	history, err := s.history.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(history, func(i, j int) bool { return history[i].Tanggal.After(history[j].Tanggal) })
	return history, nil
}
