package app

import (
	"bytes"
	"os"
	"sync"
	"testing"

	"github.com/vk/bconv/internal/config"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// SetupAppTest validates appConfig and builds an App that writes results and
// debug logs into separate buffers.
func SetupAppTest(t *testing.T, appConfig Config) (*App, *SafeBuffer, *SafeBuffer) {
	t.Helper()

	appConfig.Overrides.LogLevel = config.String("debug")
	appConfig.Overrides.LogFormat = config.String("text")
	cfg, err := NewConfig(appConfig)
	if err != nil {
		t.Fatalf("invalid test config: %v", err)
	}

	outBuffer := &SafeBuffer{}
	logBuffer := &SafeBuffer{}
	testApp, err := NewApp(outBuffer, logBuffer, cfg)
	if err != nil {
		t.Fatalf("failed to create app: %v", err)
	}

	t.Cleanup(func() {
		if os.Getenv("BCONV_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, outBuffer, logBuffer
}
