package app

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/journal/pkg/journalsdk"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, "journal", cfg.Issuer)
	require.Equal(t, DriverJSONFile, cfg.StoreDriver)
	require.Equal(t, "users.json", cfg.StoreFile)
	require.Equal(t, 5*time.Second, cfg.StorageTimeout)
	require.Equal(t, 5555, cfg.Port)
	require.Equal(t, "us-east-1", cfg.S3.Region)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("JOURNAL_STORE_DRIVER", "s3")
	t.Setenv("JOURNAL_S3_BUCKET", "papers")
	t.Setenv("JOURNAL_S3_ENDPOINT", "http://minio:9000")
	t.Setenv("JOURNAL_STORAGE_TIMEOUT", "250ms")
	t.Setenv("PORT", "8081")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, DriverS3, cfg.StoreDriver)
	require.Equal(t, "papers", cfg.S3.Bucket)
	require.Equal(t, "http://minio:9000", cfg.S3.Endpoint)
	require.Equal(t, 250*time.Millisecond, cfg.StorageTimeout)
	require.Equal(t, 8081, cfg.Port)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown driver", map[string]string{"JOURNAL_STORE_DRIVER": "postgres"}},
		{"s3 without bucket", map[string]string{"JOURNAL_STORE_DRIVER": "s3"}},
		{"zero timeout", map[string]string{"JOURNAL_STORAGE_TIMEOUT": "0s"}},
		{"bad port", map[string]string{"PORT": "70000"}},
		{"unparseable duration", map[string]string{"SHUTDOWN_GRACE_PERIOD": "soon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig()
			require.Error(t, err)
		})
	}
}

func TestNew_JSONFileEndToEnd(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("JOURNAL_STORE_FILE", filepath.Join(dir, "data", "users.json"))
	t.Setenv("JOURNAL_PEPPER_FILE", filepath.Join(dir, "pepper"))
	t.Setenv("LOG_LEVEL", "error")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	application, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.repo.Close() })

	srv := httptest.NewServer(application.Handler())
	t.Cleanup(srv.Close)

	ctx := context.Background()
	client := journalsdk.NewClient(srv.URL)

	session, _, err := client.Register(ctx, journalsdk.RegisterRequest{Email: "a@x.com", Password: "pw1"})
	require.NoError(t, err)

	paper, err := session.SubmitPaper(ctx, journalsdk.SubmitPaperRequest{Title: "T"})
	require.NoError(t, err)
	require.Equal(t, 1, paper.ID)

	require.FileExists(t, cfg.StoreFile)
	require.FileExists(t, cfg.PepperFile)

	ready, err := client.GetReadiness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)
}

func TestNew_RejectsShortSecret(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("JOURNAL_STORE_FILE", filepath.Join(dir, "users.json"))
	t.Setenv("JOURNAL_PEPPER_FILE", filepath.Join(dir, "pepper"))
	t.Setenv("JOURNAL_JWT_SECRET", "too-short")
	t.Setenv("LOG_LEVEL", "error")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	_, err = New(cfg)
	require.Error(t, err)
}
