package apperr

import (
	"errors"
	"testing"
)

func TestCustomErrors(t *testing.T) {
	cause := errors.New("i/o timeout")

	tests := []struct {
		name      string
		err       error
		wantMsg   string
		wantIs    []error
		wantNotIs []error
	}{
		{
			name:      "validation",
			err:       NewValidationError("Calling-Station-Id", "not a MAC address"),
			wantMsg:   "malformed event: Calling-Station-Id: not a MAC address",
			wantIs:    []error{ErrMalformedEvent},
			wantNotIs: []error{ErrDirectoryUnavailable},
		},
		{
			name:    "directory with cause",
			err:     NewDirectoryError("rest", "ResolvePort", cause),
			wantMsg: "directory unavailable: rest ResolvePort: i/o timeout",
			wantIs:  []error{ErrDirectoryUnavailable, cause},
		},
		{
			name:      "directory without cause",
			err:       NewDirectoryError("valkey", "ResolveNAS", nil),
			wantMsg:   "directory unavailable: valkey ResolveNAS",
			wantIs:    []error{ErrDirectoryUnavailable},
			wantNotIs: []error{ErrMalformedEvent},
		},
		{
			name:      "valkey",
			err:       NewValkeyError("HGETALL", "nas:sw-01", cause),
			wantMsg:   "valkey HGETALL nas:sw-01: i/o timeout",
			wantIs:    []error{cause},
			wantNotIs: []error{ErrDirectoryUnavailable},
		},
		{
			name:    "valkey without cause",
			err:     NewValkeyError("SPOP", "pool:10.0.0.1", nil),
			wantMsg: "valkey SPOP pool:10.0.0.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			for _, target := range tt.wantIs {
				if !errors.Is(tt.err, target) {
					t.Errorf("errors.Is(%v) = false", target)
				}
			}
			for _, target := range tt.wantNotIs {
				if errors.Is(tt.err, target) {
					t.Errorf("errors.Is(%v) = true", target)
				}
			}
		})
	}
}
