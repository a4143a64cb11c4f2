package intern

import "errors"

var (
	ErrInternNotFound       = errors.New("peserta tidak ditemukan")
	ErrHasAttendanceHistory = errors.New("peserta masih memiliki riwayat presensi")
)
