package voucher

import "time"

// Collection namespaces under the application storage area. Existing data
// written by earlier versions of the app lives under these names, so they are
// part of the storage layout, not free to change.
const (
	SalesCollection   = "sales"
	NotesCollection   = "notes"
	HistoryCollection = "history"
)

// Sale is one voucher sold to a customer. Harga and FeePenjual always carry
// the pricing table's values for Paket; SetoranBersih = Harga - FeePenjual.
type Sale struct {
	ID            string  `json:"id"`
	Tanggal       string  `json:"tanggal"` // calendar date, YYYY-MM-DD, supplied by the UI
	NamaPelanggan string  `json:"namaPelanggan"`
	Paket         Package `json:"paket"`
	Harga         int64   `json:"harga"`
	KodeVoucher   string  `json:"kodeVoucher"`
	FeePenjual    int64   `json:"feePenjual"`
	SetoranBersih int64   `json:"setoranBersih"`
}

func (s Sale) Key() string { return s.ID }

// SalePatch enumerates the sale fields an edit may change. Nil means "leave
// as is". Changing Paket recomputes Harga, FeePenjual and SetoranBersih from
// the pricing table.
type SalePatch struct {
	Tanggal       *string  `json:"tanggal"`
	NamaPelanggan *string  `json:"namaPelanggan"`
	Paket         *Package `json:"paket"`
	KodeVoucher   *string  `json:"kodeVoucher"`
}

// Note is a free-form note. Tanggal is the last-write timestamp and is
// refreshed on every edit.
type Note struct {
	ID      string    `json:"id"`
	Tanggal time.Time `json:"tanggal"`
	Judul   string    `json:"judul"`
	Isi     string    `json:"isi"`
}

func (n Note) Key() string { return n.ID }

// NotePatch enumerates the note fields an edit may change.
type NotePatch struct {
	Judul *string `json:"judul"`
	Isi   *string `json:"isi"`
}

// SettlementRecord summarizes one settlement: the totals over every sale that
// was in the working set when it was created. TotalSetoran = TotalPenjualan -
// TotalFee by construction. Records are write-once; no update or delete
// exists for them.
type SettlementRecord struct {
	ID              string    `json:"id"`
	Tanggal         time.Time `json:"tanggal"`
	TotalPenjualan  int64     `json:"totalPenjualan"`
	TotalFee        int64     `json:"totalFee"`
	TotalSetoran    int64     `json:"totalSetoran"`
	JumlahTransaksi int       `json:"jumlahTransaksi"`
}

func (r SettlementRecord) Key() string { return r.ID }
