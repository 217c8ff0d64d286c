package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/ciripa6pa-alt/penjualan-vocer-wf/api"
	"github.com/ciripa6pa-alt/penjualan-vocer-wf/internal/store"
	"github.com/ciripa6pa-alt/penjualan-vocer-wf/internal/voucher"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	service := voucher.NewService(store.NewMemory(), zaptest.NewLogger(t))
	api.InitRoutes(router, service, zaptest.NewLogger(t), "http://localhost:3000")
	return router
}

func doJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// TestVoucherHappyPath_FullFlow walks the app's main flow: record sales, read
// the report, settle, and find the settlement in history with the working set
// reset.
func TestVoucherHappyPath_FullFlow(t *testing.T) {
	router := newTestRouter(t)

	var saleID string

	t.Run("POST_CreateSales", func(t *testing.T) {
		for _, paket := range []string{"24 Jam", "7 Hari"} {
			w := doJSON(router, http.MethodPost, "/api/sales", map[string]interface{}{
				"tanggal":       "2026-08-30",
				"namaPelanggan": "Budi",
				"paket":         paket,
				"kodeVoucher":   "WF-" + paket,
			})
			require.Equal(t, http.StatusCreated, w.Code, "expected HTTP 201 for sale creation")

			var created voucher.Sale
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
			assert.NotEmpty(t, created.ID, "expected sale ID to be generated")
			assert.Equal(t, created.Harga-created.FeePenjual, created.SetoranBersih)
			saleID = created.ID
		}
	})

	t.Run("GET_Report", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/api/laporan", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var response struct {
			Report  voucher.SalesReport `json:"report"`
			Display map[string]string   `json:"display"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, 2, response.Report.JumlahTransaksi)
		assert.Equal(t, int64(25000), response.Report.TotalPenjualan)
		assert.Equal(t, int64(3000), response.Report.TotalFee)
		assert.Equal(t, int64(22000), response.Report.TotalSetoran)
		assert.Equal(t, "Rp 22.000", response.Display["totalSetoran"])
	})

	t.Run("PATCH_UpdateSale", func(t *testing.T) {
		w := doJSON(router, http.MethodPatch, fmt.Sprintf("/api/sales/%s", saleID), map[string]string{
			"namaPelanggan": "Budi Santoso",
		})
		require.Equal(t, http.StatusOK, w.Code)

		var updated voucher.Sale
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
		assert.Equal(t, "Budi Santoso", updated.NamaPelanggan)
		// A name-only patch leaves the money fields alone.
		assert.Equal(t, int64(20000), updated.Harga)
	})

	t.Run("GET_Export", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/api/laporan/export", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), "Laporan_Penjualan_")
		assert.NotZero(t, w.Body.Len())
	})

	t.Run("POST_Settle", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/laporan/setor", nil)
		require.Equal(t, http.StatusCreated, w.Code)

		var record voucher.SettlementRecord
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &record))
		assert.Equal(t, int64(25000), record.TotalPenjualan)
		assert.Equal(t, int64(3000), record.TotalFee)
		assert.Equal(t, int64(22000), record.TotalSetoran)
		assert.Equal(t, 2, record.JumlahTransaksi)
	})

	t.Run("GET_SalesEmptyAfterSettle", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/api/sales", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var sales []voucher.Sale
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sales))
		assert.Empty(t, sales)
	})

	t.Run("GET_History", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/api/history", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var history []voucher.SettlementRecord
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &history))
		require.Len(t, history, 1)
		assert.Equal(t, int64(22000), history[0].TotalSetoran)
	})

	t.Run("POST_SettleAgainIsInformational", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/laporan/setor", nil)
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "tidak ada data penjualan")
	})
}

func TestNotesFlow(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/api/notes", map[string]string{
		"judul": "Stok voucher",
		"isi":   "Beli 50 voucher 24 jam",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var note voucher.Note
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &note))
	require.NotEmpty(t, note.ID)

	w = doJSON(router, http.MethodPatch, fmt.Sprintf("/api/notes/%s", note.ID), map[string]string{
		"isi": "Beli 100 voucher 24 jam",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated voucher.Note
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "Stok voucher", updated.Judul)
	assert.Equal(t, "Beli 100 voucher 24 jam", updated.Isi)
	assert.False(t, updated.Tanggal.Before(note.Tanggal), "edit must refresh tanggal")

	w = doJSON(router, http.MethodDelete, fmt.Sprintf("/api/notes/%s", note.ID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(router, http.MethodGet, "/api/notes", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var notes []voucher.Note
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &notes))
	assert.Empty(t, notes)
}

func TestValidationAndNotFound(t *testing.T) {
	router := newTestRouter(t)

	t.Run("POST_SaleUnknownPackage", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/sales", map[string]string{
			"tanggal":       "2026-08-30",
			"namaPelanggan": "Budi",
			"paket":         "2 Menit",
			"kodeVoucher":   "WF-X",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("POST_SaleBadDate", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/sales", map[string]string{
			"tanggal":       "30/08/2026",
			"namaPelanggan": "Budi",
			"paket":         "24 Jam",
			"kodeVoucher":   "WF-X",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("GET_SaleMissing", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/api/sales/nope", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("PATCH_SaleMissing", func(t *testing.T) {
		w := doJSON(router, http.MethodPatch, "/api/sales/nope", map[string]string{"namaPelanggan": "x"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("DELETE_SaleMissingIsNoOp", func(t *testing.T) {
		w := doJSON(router, http.MethodDelete, "/api/sales/nope", nil)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("GET_Packages", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/api/packages", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var packages []struct {
			Paket      string `json:"paket"`
			Harga      int64  `json:"harga"`
			FeePenjual int64  `json:"feePenjual"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &packages))
		require.Len(t, packages, 4)
		assert.Equal(t, "24 Jam", packages[0].Paket)
		assert.Equal(t, int64(5000), packages[0].Harga)
		assert.Equal(t, int64(1000), packages[0].FeePenjual)
	})
}
