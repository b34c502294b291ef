package httputil

import "errors"

var (
	ErrInvalidBody      = errors.New("Permintaan tidak valid.")
	ErrRequestBodyEmpty = errors.New("Permintaan tidak boleh kosong.")
)
