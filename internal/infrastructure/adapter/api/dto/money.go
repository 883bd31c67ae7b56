package dto

import (
	"fmt"
	"strings"

	"github.com/mytestspam8-prog/africash/internal/domain/entity"
	errs "github.com/mytestspam8-prog/africash/internal/domain/error"
)

// Money is a JSON money amount decoded straight from the raw token into
// cents. Clients send amounts either as a quoted string ("1.80") or as a
// bare number (1.8); both go through the textual parser so no binary
// floating point touches the value.
type Money int64

// UnmarshalJSON implements json.Unmarshaler
func (m *Money) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" || raw == "" {
		return fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	if strings.HasPrefix(raw, `"`) && strings.HasSuffix(raw, `"`) && len(raw) >= 2 {
		raw = raw[1 : len(raw)-1]
	}

	cents, err := entity.ParseAmount(raw)
	if err != nil {
		return err
	}

	*m = Money(cents)
	return nil
}

// MarshalJSON implements json.Marshaler, emitting the decimal string form
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + entity.FormatCents(int64(m)) + `"`), nil
}

// Cents returns the amount in cents
func (m Money) Cents() int64 {
	return int64(m)
}
