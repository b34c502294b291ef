package v1

import (
	"errors"
	"net/http"

	"github.com/duit-app/backend/internal/models"
)

// Messages returned to callers are part of the API contract consumed by the
// web front end and are kept in Indonesian.
var (
	errAccessDenied = errors.New("Akses ditolak.")
	errIDRequired   = errors.New("ID tidak ditemukan.")

	errNameEmpty = errors.New("Nama tidak boleh kosong.")

	errSelectAccounts     = errors.New("Pilih setidaknya satu akun untuk dihapus.")
	errSelectCategories   = errors.New("Pilih setidaknya satu kategori untuk dihapus.")
	errSelectTransactions = errors.New("Pilih setidaknya satu transaksi untuk dihapus.")

	errPayeeEmpty      = errors.New("Penerima tidak boleh kosong.")
	errAmountZero      = errors.New("Jumlah tidak boleh nol.")
	errDateInvalid     = errors.New("Tanggal tidak valid.")
	errAccountRequired = errors.New("Akun harus dipilih.")
)

// status returns the appropriate HTTP status for a persistence error.
func status(err error) int {
	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	return http.StatusBadRequest
}
