package impl_pix

import "errors"

var ErrNoConnection = errors.New("connection provider returned no connection")
