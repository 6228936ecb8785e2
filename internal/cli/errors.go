package cli

import (
	"errors"

	"github.com/MKhiriev/warehouse-keeper/internal/app"
)

// ErrInvalidCredentials is returned by "user validate" when the credentials
// do not match.
var ErrInvalidCredentials = errors.New(app.MsgInvalidLoginPassword)
