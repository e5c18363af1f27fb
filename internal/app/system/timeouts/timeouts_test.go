package timeouts

import (
	"testing"
	"time"
)

func restoreDefaults() {
	Configure(Config{
		Ping:   DefaultPing,
		Short:  DefaultShort,
		Medium: DefaultMedium,
		Long:   DefaultLong,
	})
}

func TestDefaults(t *testing.T) {
	restoreDefaults()
	if Ping() != DefaultPing || Short() != DefaultShort || Medium() != DefaultMedium || Long() != DefaultLong {
		t.Error("defaults not in effect")
	}
}

func TestConfigure_ZeroValuesIgnored(t *testing.T) {
	restoreDefaults()
	defer restoreDefaults()

	Configure(Config{Short: 7 * time.Second})
	if Short() != 7*time.Second {
		t.Errorf("Short: got %v", Short())
	}
	if Medium() != DefaultMedium {
		t.Errorf("Medium changed unexpectedly: %v", Medium())
	}
	if Ping() != DefaultPing {
		t.Errorf("Ping changed unexpectedly: %v", Ping())
	}
}
