package observability

import (
	"context"
	"testing"

	"github.com/pitchside/league-stats/internal/config"
	"github.com/pitchside/league-stats/internal/platform/logging"
)

func TestInitUptrace_Disabled(t *testing.T) {
	cfg := config.Config{
		UptraceEnabled: false,
		ServiceName:    "league-stats-api",
		ServiceVersion: "dev",
		AppEnv:         config.EnvDev,
	}

	shutdown, err := InitUptrace(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("init uptrace: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown uptrace: %v", err)
	}
}

func TestInitUptrace_EnabledWithoutDSNIsNoop(t *testing.T) {
	cfg := config.Config{
		UptraceEnabled: true,
		UptraceDSN:     "   ",
		ServiceName:    "league-stats-api",
		ServiceVersion: "dev",
		AppEnv:         config.EnvDev,
	}

	shutdown, err := InitUptrace(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("init uptrace: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown uptrace: %v", err)
	}
}

func TestInitPyroscope_Disabled(t *testing.T) {
	cfg := config.Config{PyroscopeEnabled: false}

	stop, err := InitPyroscope(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("init pyroscope: %v", err)
	}
	if err := stop(); err != nil {
		t.Fatalf("stop pyroscope: %v", err)
	}
}

func TestStartPprofServer_Disabled(t *testing.T) {
	cfg := config.Config{PprofEnabled: false}

	srv, err := StartPprofServer(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("start pprof server: %v", err)
	}
	if srv != nil {
		t.Fatalf("expected nil server when pprof disabled")
	}
}
