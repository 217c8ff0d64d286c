package voucher

import "errors"

// ErrUnknownPackage is returned when a sale names a package outside the
// pricing table.
var ErrUnknownPackage = errors.New("unknown voucher package")

// Package is one of the fixed duration tiers a voucher is sold as.
type Package string

const (
	Paket24Jam  Package = "24 Jam"
	Paket7Hari  Package = "7 Hari"
	Paket15Hari Package = "15 Hari"
	Paket30Hari Package = "30 Hari"
)

// Rate is the fixed price and seller fee of one package, in rupiah.
type Rate struct {
	Harga      int64 `json:"harga"`
	FeePenjual int64 `json:"feePenjual"`
}

// SetoranBersih is the portion of the price owed to the principal.
func (r Rate) SetoranBersih() int64 { return r.Harga - r.FeePenjual }

var paketConfig = map[Package]Rate{
	Paket24Jam:  {Harga: 5000, FeePenjual: 1000},
	Paket7Hari:  {Harga: 20000, FeePenjual: 2000},
	Paket15Hari: {Harga: 35000, FeePenjual: 5000},
	Paket30Hari: {Harga: 60000, FeePenjual: 5000},
}

// RateFor looks a package's rate up. The second return reports whether the
// package exists.
func RateFor(p Package) (Rate, bool) {
	r, ok := paketConfig[p]
	return r, ok
}

// Packages lists every sellable package in menu order.
func Packages() []Package {
	return []Package{Paket24Jam, Paket7Hari, Paket15Hari, Paket30Hari}
}
