package voucher

import "go.uber.org/zap"

// Action is what happened to a record, in the wording the notifications use.
type Action string

const (
	ActionTambah Action = "tambah"
	ActionEdit   Action = "edit"
	ActionHapus  Action = "hapus"
)

// Entity is which kind of record the action touched.
type Entity string

const (
	EntityPenjualan Entity = "penjualan"
	EntityCatatan   Entity = "catatan"
)

// Notifier is invoked after every successful sale or note mutation so the
// caller can surface a local notification. Best-effort and fire-and-forget:
// nothing in the core depends on it running or succeeding.
type Notifier interface {
	DataChanged(action Action, entity Entity)
}

// LogNotifier is the default Notifier: it just logs the change.
type LogNotifier struct {
	Logger *zap.Logger
}

func (n LogNotifier) DataChanged(action Action, entity Entity) {
	n.Logger.Info("data changed",
		zap.String("action", string(action)),
		zap.String("entity", string(entity)),
	)
}
