package database

import (
	"testing"

	"github.com/Ananth-NQI/eduguide-backend/internal/config"
)

func TestDSN(t *testing.T) {
	cfg := config.Config{DBUser: "postgres", DBPass: "pw", DBName: "eduguide", DBHost: "db", DBPort: "6543"}
	want := "host=db user=postgres password=pw dbname=eduguide port=6543 sslmode=disable"
	if got := DSN(cfg); got != want {
		t.Fatalf("DSN = %q, want %q", got, want)
	}

	cfg.InstanceConnectionName = "proj:asia-south1:edu"
	want = "host=/cloudsql/proj:asia-south1:edu user=postgres password=pw dbname=eduguide sslmode=disable"
	if got := DSN(cfg); got != want {
		t.Fatalf("DSN = %q, want %q", got, want)
	}
}
