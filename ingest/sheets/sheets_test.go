package sheets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"tripventura-pricing/config"
	"tripventura-pricing/utils"
)

func newTestLoader(url string) *Loader {
	cfg := &config.Config{SheetCSVURL: url, FetchTimeoutMs: 2000}
	return New(cfg, utils.NewLogger())
}

func TestLoadLiveSheet(t *testing.T) {
	body := "Name,Code,X,Y,Net,Sell,Profit,Median,Final\n" +
		"\"City Walk\",TV-10,,,\"$100\",\"$160\",38,\"$150\",\"$170\"\n" +
		"\"River Raft\",TV-11,,,\"$200\",\"$310\",35,\"$320\",\"$330\"\n"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		w.Write([]byte(body))
	}))
	defer srv.Close()

	res := newTestLoader(srv.URL).Load(context.Background())
	if !res.SourceLive {
		t.Fatal("expected SourceLive=true for a successful fetch")
	}
	if len(res.Records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(res.Records))
	}
	if res.Records[0].TourName != "City Walk" || res.Records[0].SellingPrice != 160 {
		t.Errorf("unexpected first record: %+v", res.Records[0])
	}
}

func TestLoadFallsBackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream broken", http.StatusInternalServerError)
	}))
	defer srv.Close()

	loader := newTestLoader(srv.URL)

	// A failed load is not retried; every call serves the same embedded set.
	for i := 0; i < 2; i++ {
		res := loader.Load(context.Background())
		if res.SourceLive {
			t.Fatalf("load %d: expected SourceLive=false", i)
		}
		if len(res.Records) != 5 {
			t.Fatalf("load %d: expected 5 fallback records, got %d", i, len(res.Records))
		}
		if res.Records[0].TourName != "Everest Base Camp Trek" {
			t.Errorf("load %d: unexpected first fallback record %q", i, res.Records[0].TourName)
		}
	}
}

func TestLoadFallsBackOnUnreachableHost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	res := newTestLoader(srv.URL).Load(context.Background())
	if res.SourceLive {
		t.Fatal("expected SourceLive=false for an unreachable host")
	}
	if len(res.Records) != 5 {
		t.Fatalf("expected 5 fallback records, got %d", len(res.Records))
	}
}

func TestFallbackRecords(t *testing.T) {
	records := FallbackRecords()
	if len(records) != 5 {
		t.Fatalf("expected 5 records, got %d", len(records))
	}

	wantCodes := []string{"TV-001", "TV-002", "TV-003", "TV-004", "TV-005"}
	for i, code := range wantCodes {
		if records[i].ProductCode != code {
			t.Errorf("records[%d].ProductCode = %q; want %q", i, records[i].ProductCode, code)
		}
	}

	// Callers mutate their copy freely; the embedded set must stay intact.
	records[0].TourName = "mutated"
	if FallbackRecords()[0].TourName != "Everest Base Camp Trek" {
		t.Error("FallbackRecords shares state between calls")
	}
}
